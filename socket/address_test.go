package socket_test

import (
	"testing"

	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/socket"
	"gotest.tools/v3/assert"
)

func TestCreateAddress(t *testing.T) {
	ep, err := socket.CreateAddress("127.0.0.1", "8080", api.FamilyIPv4, api.ProtocolTCP)
	assert.NilError(t, err)
	assert.Equal(t, ep.Family(), api.FamilyIPv4)
	assert.Equal(t, ep.IP(), "127.0.0.1")
	assert.Equal(t, ep.Port(), uint16(8080))

	ep, err = socket.CreateAddress(api.AnyAddress, api.AnyPort, api.FamilyIPv6, api.ProtocolUDP)
	assert.NilError(t, err)
	assert.Equal(t, ep.IP(), "::")
	assert.Equal(t, ep.Port(), api.UnusedPort)

	ep, err = socket.CreateAddress("::ffff:10.1.2.3", "1", api.FamilyIPv4, api.ProtocolUDP)
	assert.NilError(t, err)
	assert.Equal(t, ep.IP(), "10.1.2.3")

	ep, err = socket.CreateAddress("fe80::1%3", "80", api.FamilyIPv6, api.ProtocolUDP)
	assert.NilError(t, err)
	assert.Equal(t, ep.String(), "[fe80::1%3]:80")

	ep, err = socket.CreateAddress(api.AnyAddress, "http", api.FamilyIPv4, api.ProtocolTCP)
	assert.NilError(t, err)
	assert.Equal(t, ep.Port(), uint16(80))
}

func TestCreateAddressFailures(t *testing.T) {
	cases := []struct {
		name    string
		host    string
		service string
		family  api.Family
		proto   api.Protocol
		want    api.Result
	}{
		{"nothing", "", "", api.FamilyIPv4, api.ProtocolTCP, api.ResultNoName},
		{"port range", "127.0.0.1", "70000", api.FamilyIPv4, api.ProtocolTCP, api.ResultInvalidInputParam},
		{"v6 for v4", "::1", "80", api.FamilyIPv4, api.ProtocolTCP, api.ResultAddressFamilyUnsupported},
		{"v4 for v6", "127.0.0.1", "80", api.FamilyIPv6, api.ProtocolTCP, api.ResultAddressFamilyUnsupported},
		{"family", "127.0.0.1", "80", api.FamilyUnspecified, api.ProtocolTCP, api.ResultNotValidAddressFamily},
		{"unknown zone", "fe80::1%nosuchif0", "80", api.FamilyIPv6, api.ProtocolUDP, api.ResultInvalidAddress},
		{"protocol", "127.0.0.1", "80", api.FamilyIPv4, api.ProtocolUnspecified, api.ResultInvalidProtocol},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := socket.CreateAddress(c.host, c.service, c.family, c.proto)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestPeerAddressOfConnectedSocket(t *testing.T) {
	client, server := tcpPair(t, api.FamilyIPv4)

	peer, err := socket.PeerAddressFromSocket(*client, api.FamilyIPv4)
	assert.NilError(t, err)
	assert.Equal(t, peer, localAddr(t, *server, api.FamilyIPv4))
}

func TestPeerAddressOfUnconnectedSocket(t *testing.T) {
	h := openBound(t, api.ProtocolUDP, api.FamilyIPv4, "127.0.0.1")
	_, err := socket.PeerAddressFromSocket(h, api.FamilyIPv4)
	assert.ErrorIs(t, err, api.ResultConnectionClosed)
}
