package api_test

import (
	"net"
	"net/netip"
	"testing"
	"unsafe"

	"github.com/momentics/hioload-net/api"
	"gotest.tools/v3/assert"
	"pgregory.net/rapid"
)

func TestEndpointFixedSize(t *testing.T) {
	v4 := api.NewIPv4Endpoint([4]byte{127, 0, 0, 1}, 80)
	v6 := api.NewIPv6Endpoint([16]byte{15: 1}, 80, 0, 0)
	assert.Equal(t, unsafe.Sizeof(v4), unsafe.Sizeof(v6))
	assert.Equal(t, v4.SockaddrSize(), api.SockaddrInet4Size)
	assert.Equal(t, v6.SockaddrSize(), api.SockaddrInet6Size)
}

func TestEndpointLoopbackText(t *testing.T) {
	ep, err := api.EndpointFromAddrPort(netip.MustParseAddrPort("127.0.0.1:4242"))
	assert.NilError(t, err)
	assert.Equal(t, ep.Family(), api.FamilyIPv4)
	assert.Equal(t, ep.IP(), "127.0.0.1")
	assert.Equal(t, ep.Port(), uint16(4242))
	assert.Equal(t, ep.String(), "127.0.0.1:4242")

	buf := make([]byte, api.IPv4StringLength)
	n, err := ep.FormatIP(buf)
	assert.NilError(t, err)
	assert.Equal(t, string(buf[:n]), "127.0.0.1")

	_, ok := ep.IPv6()
	assert.Assert(t, !ok)
}

func TestEndpointIPv6Text(t *testing.T) {
	ep := api.NewIPv6Endpoint([16]byte{0: 0xfe, 1: 0x80, 15: 1}, 9, 0, 3)
	assert.Equal(t, ep.String(), "[fe80::1%3]:9")
	p, ok := ep.IPv6()
	assert.Assert(t, ok)
	assert.Equal(t, p.ScopeID, uint32(3))
}

func TestEndpointNumericZone(t *testing.T) {
	ep, err := api.EndpointFromAddrPort(netip.MustParseAddrPort("[fe80::1%3]:80"))
	assert.NilError(t, err)
	p, ok := ep.IPv6()
	assert.Assert(t, ok)
	assert.Equal(t, p.ScopeID, uint32(3))
	assert.Equal(t, ep.String(), "[fe80::1%3]:80")
}

func TestEndpointNamedZone(t *testing.T) {
	ifs, err := net.Interfaces()
	assert.NilError(t, err)
	var lo *net.Interface
	for i := range ifs {
		if ifs[i].Flags&net.FlagLoopback != 0 {
			lo = &ifs[i]
			break
		}
	}
	if lo == nil {
		t.Skip("no loopback interface")
	}

	addr := netip.MustParseAddr("fe80::1").WithZone(lo.Name)
	ep, err := api.EndpointFromAddrPort(netip.AddrPortFrom(addr, 80))
	assert.NilError(t, err)
	p, ok := ep.IPv6()
	assert.Assert(t, ok)
	assert.Equal(t, p.ScopeID, uint32(lo.Index))
}

func TestEndpointUnknownZone(t *testing.T) {
	addr := netip.MustParseAddr("fe80::1").WithZone("nosuchif0")
	_, err := api.EndpointFromAddrPort(netip.AddrPortFrom(addr, 80))
	assert.ErrorIs(t, err, api.ResultInvalidAddress)
}

func TestFormatIPBufferTooSmall(t *testing.T) {
	v4 := api.NewIPv4Endpoint([4]byte{10, 0, 0, 1}, 1)
	buf := []byte("untouched-buffer")
	_, err := v4.FormatIP(buf[:api.IPv4StringLength-1])
	assert.ErrorIs(t, err, api.ResultBufferTooSmall)
	assert.Equal(t, string(buf), "untouched-buffer")

	v6 := api.NewIPv6Endpoint([16]byte{15: 1}, 1, 0, 0)
	_, err = v6.FormatIP(make([]byte, api.IPv4StringLength))
	assert.ErrorIs(t, err, api.ResultBufferTooSmall)
	n, err := v6.FormatIP(make([]byte, api.IPAnyStringLength))
	assert.NilError(t, err)
	assert.Equal(t, n, 3)
}

func TestInvalidEndpoint(t *testing.T) {
	var ep api.Endpoint
	assert.Assert(t, !ep.IsValid())
	assert.Equal(t, ep.String(), "<invalid endpoint>")
	assert.Assert(t, panics(func() { ep.Port() }))
	assert.Assert(t, panics(func() { ep.Addr() }))

	_, err := api.WildcardEndpoint(api.FamilyUnspecified, 0)
	assert.ErrorIs(t, err, api.ResultNotValidAddressFamily)
}

func TestCheckCapacity(t *testing.T) {
	assert.NilError(t, api.CheckCapacity(api.FamilyIPv4, api.SockaddrInet4Size))
	assert.NilError(t, api.CheckCapacity(api.FamilyIPv6, api.SockaddrInet4Size))
	assert.ErrorIs(t, api.CheckCapacity(api.FamilyIPv4, api.SockaddrInet6Size), api.ResultBufferTooSmall)
	assert.ErrorIs(t, api.CheckCapacity(api.FamilyUnspecified, 0), api.ResultNotValidAddressFamily)
}

func TestEndpointAddrPortRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		port := rapid.Uint16().Draw(t, "port")
		var ap netip.AddrPort
		if rapid.Bool().Draw(t, "v6") {
			var a [16]byte
			copy(a[:], rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, "addr"))
			ap = netip.AddrPortFrom(netip.AddrFrom16(a), port)
		} else {
			var a [4]byte
			copy(a[:], rapid.SliceOfN(rapid.Byte(), 4, 4).Draw(t, "addr"))
			ap = netip.AddrPortFrom(netip.AddrFrom4(a), port)
		}
		ep, err := api.EndpointFromAddrPort(ap)
		if err != nil {
			t.Fatalf("convert %v: %v", ap, err)
		}
		if ep.AddrPort() != ap {
			t.Fatalf("round trip %v became %v", ap, ep.AddrPort())
		}
		buf := make([]byte, api.IPAnyStringLength)
		n, err := ep.FormatIP(buf)
		if err != nil || string(buf[:n]) != ap.Addr().String() {
			t.Fatalf("FormatIP(%v) = %q, %v", ap, buf[:n], err)
		}
	})
}

func panics(fn func()) (did bool) {
	defer func() { did = recover() != nil }()
	fn()
	return false
}
