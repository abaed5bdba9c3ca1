// File: api/interfaces.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform capability interfaces. One Backend implementation exists per target
// platform; shared validation lives above it in package socket.

package api

// Backend is the native socket layer of one platform. Implementations receive
// pre-validated arguments (valid handles, families, protocols and option
// values) and return nil or an api.Result.
type Backend interface {
	Poller

	// Startup and Shutdown enter and leave the process-wide network subsystem.
	Startup() error
	Shutdown() error

	Socket(proto Protocol, family Family) (Handle, error)
	Close(h Handle) error
	Connect(h Handle, remote Endpoint) error
	Bind(h Handle, local Endpoint) error
	Listen(h Handle, backlog int) error
	// Accept returns the new handle and the peer address. The peer address
	// must fit the declared family or the call fails with ResultBufferTooSmall.
	Accept(h Handle, declared Family) (Handle, Endpoint, error)

	Recv(h Handle, buf []byte) (int, error)
	RecvFrom(h Handle, buf []byte, declared Family) (int, Endpoint, error)
	Send(h Handle, buf []byte) (int, error)
	SendTo(h Handle, buf []byte, remote Endpoint) (int, error)

	LocalAddress(h Handle, declared Family) (Endpoint, error)
	PeerAddress(h Handle, declared Family) (Endpoint, error)
	// SocketProtocol reports the transport of an open handle.
	SocketProtocol(h Handle) (Protocol, error)
	// SocketFamily reports the address family of an open handle.
	SocketFamily(h Handle) (Family, error)

	BytesAvailable(h Handle) (int, error)
	SetNonblocking(h Handle, nonblocking bool) error
	// SetOption encodes value into the platform representation of opt.
	// Options the platform lacks return ResultPlatformNotSupported.
	SetOption(h Handle, opt Option, value int) error
}

// Poller performs one batch readiness check. Every entry carries a valid
// handle and a Requested mask limited to EventRequestMask; the poller sets
// Returned on each entry and reports how many have a non-zero Returned.
type Poller interface {
	Poll(checks []Check, timeoutMs int) (int, error)
}

// Observer is told the outcome of every socket operation.
type Observer interface {
	Observe(op string, r Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(op string, r Result)

// Observe implements Observer.
func (f ObserverFunc) Observe(op string, r Result) {
	f(op, r)
}
