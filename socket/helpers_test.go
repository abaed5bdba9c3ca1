package socket_test

import (
	"strconv"
	"testing"

	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/socket"
	"golang.org/x/net/nettest"
	"gotest.tools/v3/assert"
)

var families = []api.Family{api.FamilyIPv4, api.FamilyIPv6}

func skipWithoutFamily(t *testing.T, family api.Family) {
	t.Helper()
	if family == api.FamilyIPv6 && !nettest.SupportsIPv6() {
		t.Skip("ipv6 is not available")
	}
}

func loopback(family api.Family) string {
	if family == api.FamilyIPv6 {
		return "::1"
	}
	return "127.0.0.1"
}

// openBound opens a socket bound to host with an OS-chosen port. The socket
// is closed when the test ends.
func openBound(t *testing.T, proto api.Protocol, family api.Family, host string) api.Handle {
	t.Helper()
	h, err := socket.Open(proto, family)
	assert.NilError(t, err)
	t.Cleanup(func() { socket.Close(&h) })
	ep, err := socket.CreateAddress(host, api.AnyPort, family, proto)
	assert.NilError(t, err)
	assert.NilError(t, socket.Bind(h, ep))
	return h
}

func localAddr(t *testing.T, h api.Handle, family api.Family) api.Endpoint {
	t.Helper()
	ep, err := socket.AddressFromSocket(h, family)
	assert.NilError(t, err)
	return ep
}

// tcpPair returns a connected client and the accepted server side. Both are
// closed through the returned pointers when the test ends.
func tcpPair(t *testing.T, family api.Family) (client, server *api.Handle) {
	t.Helper()
	ln := openBound(t, api.ProtocolTCP, family, loopback(family))
	assert.NilError(t, socket.Listen(ln, api.DefaultBacklog))

	c, err := socket.Open(api.ProtocolTCP, family)
	assert.NilError(t, err)
	client = &c
	t.Cleanup(func() { socket.Close(client) })
	assert.NilError(t, socket.Connect(c, localAddr(t, ln, family)))

	srv, peer, err := socket.Accept(ln, family)
	assert.NilError(t, err)
	server = &srv
	t.Cleanup(func() { socket.Close(server) })
	assert.Equal(t, peer, localAddr(t, c, family))
	return client, server
}

func itoa(port uint16) string {
	return strconv.Itoa(int(port))
}
