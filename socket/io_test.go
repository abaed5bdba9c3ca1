package socket_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/socket"
	"golang.org/x/sync/errgroup"
	"gotest.tools/v3/assert"
)

func TestTCPLoopbackTransfer(t *testing.T) {
	for _, family := range families {
		t.Run(family.String(), func(t *testing.T) {
			skipWithoutFamily(t, family)
			client, server := tcpPair(t, family)

			payload := make([]byte, 256<<10)
			rand.New(rand.NewSource(1)).Read(payload)

			var g errgroup.Group
			got := make([]byte, 0, len(payload))
			g.Go(func() error {
				buf := make([]byte, 4096)
				for len(got) < len(payload) {
					n, err := socket.Read(*server, buf)
					if err != nil {
						return err
					}
					got = append(got, buf[:n]...)
				}
				return nil
			})
			n, err := socket.WriteAll(*client, payload)
			assert.NilError(t, err)
			assert.Equal(t, n, len(payload))
			assert.NilError(t, g.Wait())
			assert.Assert(t, bytes.Equal(got, payload))
		})
	}
}

func TestReadAfterPeerCloseReportsClosed(t *testing.T) {
	client, server := tcpPair(t, api.FamilyIPv4)
	assert.NilError(t, socket.Close(client))

	_, err := socket.Read(*server, make([]byte, 16))
	assert.ErrorIs(t, err, api.ResultConnectionClosed)
}

func TestUDPWriteToReadFrom(t *testing.T) {
	for _, family := range families {
		t.Run(family.String(), func(t *testing.T) {
			skipWithoutFamily(t, family)
			a := openBound(t, api.ProtocolUDP, family, loopback(family))
			b := openBound(t, api.ProtocolUDP, family, loopback(family))

			msg := []byte("datagram payload")
			n, err := socket.WriteTo(a, msg, localAddr(t, b, family))
			assert.NilError(t, err)
			assert.Equal(t, n, len(msg))

			ok, err := socket.CanRead(b, 1000)
			assert.NilError(t, err)
			assert.Assert(t, ok)

			buf := make([]byte, 64)
			n, src, err := socket.ReadFrom(b, buf, family)
			assert.NilError(t, err)
			assert.DeepEqual(t, buf[:n], msg)
			assert.Equal(t, src, localAddr(t, a, family))
			assert.Equal(t, src.IP(), loopback(family))
		})
	}
}

func TestEmptyDatagramIsNotClosure(t *testing.T) {
	a := openBound(t, api.ProtocolUDP, api.FamilyIPv4, "127.0.0.1")
	b := openBound(t, api.ProtocolUDP, api.FamilyIPv4, "127.0.0.1")

	_, err := socket.WriteTo(a, nil, localAddr(t, b, api.FamilyIPv4))
	assert.NilError(t, err)
	ok, err := socket.CanRead(b, 1000)
	assert.NilError(t, err)
	assert.Assert(t, ok)

	n, err := socket.Read(b, make([]byte, 16))
	assert.NilError(t, err)
	assert.Equal(t, n, 0)
}

func TestWriteToFamilyMismatch(t *testing.T) {
	h := openBound(t, api.ProtocolUDP, api.FamilyIPv4, "127.0.0.1")
	dst := api.NewIPv6Endpoint([16]byte{15: 1}, 9, 0, 0)

	_, err := socket.WriteTo(h, []byte("x"), dst)
	assert.ErrorIs(t, err, api.ResultNotValidAddressFamily)
}

func TestNonblockingReadWouldBlock(t *testing.T) {
	h := openBound(t, api.ProtocolUDP, api.FamilyIPv4, "127.0.0.1")
	assert.NilError(t, socket.SetBlocking(h, false))

	_, err := socket.Read(h, make([]byte, 16))
	assert.ErrorIs(t, err, api.ResultWouldBlock)
	assert.Assert(t, api.ResultOf(err).Temporary())
}

func TestRecvTimeoutExpires(t *testing.T) {
	h := openBound(t, api.ProtocolUDP, api.FamilyIPv4, "127.0.0.1")
	assert.NilError(t, socket.SetRecvTimeout(h, 50))

	_, err := socket.Read(h, make([]byte, 16))
	assert.Assert(t, err != nil)
	assert.Assert(t, api.ResultOf(err).Temporary(), "read: %v", err)
}

func TestReadEmptyBufferSkipsSocket(t *testing.T) {
	h := openBound(t, api.ProtocolUDP, api.FamilyIPv4, "127.0.0.1")
	n, err := socket.Read(h, nil)
	assert.NilError(t, err)
	assert.Equal(t, n, 0)
}
