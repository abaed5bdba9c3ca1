// File: socket/socket.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lifecycle operations and the package-level backend, logger and observer.

package socket

import (
	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/internal/platform"
	"github.com/rs/zerolog"
)

var (
	backend  = platform.Native()
	logger   = zerolog.Nop()
	observer api.Observer
)

// SetBackend replaces the platform backend, typically with a fake in tests.
// nil restores the native one.
func SetBackend(b api.Backend) {
	if b == nil {
		b = platform.Native()
	}
	backend = b
}

// ActiveBackend returns the backend operations are dispatched to.
func ActiveBackend() api.Backend {
	return backend
}

// SetLogger sets the logger failed operations are reported to. The default
// discards everything.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// SetObserver installs o to see the outcome of every operation. nil removes it.
func SetObserver(o api.Observer) {
	observer = o
}

// done normalizes err to a Result, reports it and returns it as an error.
func done(op string, err error) error {
	r := api.ResultOf(err)
	if observer != nil {
		observer.Observe(op, r)
	}
	switch {
	case r == api.ResultSuccess:
		return nil
	case r.Pending():
		logger.Trace().Str("op", op).Stringer("result", r).Msg("socket operation pending")
	default:
		logger.Debug().Str("op", op).Stringer("result", r).Msg("socket operation failed")
	}
	return r
}

// Startup initializes the network subsystem. It is required on windows and
// a no-op elsewhere.
func Startup() error {
	return done("startup", backend.Startup())
}

// Shutdown releases what Startup acquired.
func Shutdown() error {
	return done("shutdown", backend.Shutdown())
}

// Open creates a socket: a stream socket for TCP, a datagram socket for UDP.
func Open(proto api.Protocol, family api.Family) (api.Handle, error) {
	const op = "open"
	if !proto.Valid() {
		return api.InvalidHandle, done(op, api.ResultInvalidProtocol)
	}
	if !family.Valid() {
		return api.InvalidHandle, done(op, api.ResultNotValidAddressFamily)
	}
	h, err := backend.Socket(proto, family)
	if err != nil {
		return api.InvalidHandle, done(op, err)
	}
	return h, done(op, nil)
}

// Close releases *h and overwrites it with api.InvalidHandle, also when the
// native close fails. Closing an invalid handle does nothing.
func Close(h *api.Handle) error {
	if h == nil || !h.Valid() {
		return nil
	}
	err := backend.Close(*h)
	*h = api.InvalidHandle
	return done("close", err)
}

// Connect connects h to remote. On a non-blocking handle ResultInProgress or
// ResultWouldBlock means the attempt continues; CanWrite reports completion.
func Connect(h api.Handle, remote api.Endpoint) error {
	const op = "connect"
	if !h.Valid() {
		return done(op, api.ResultNotASocket)
	}
	if !remote.IsValid() {
		return done(op, api.ResultNotValidAddressFamily)
	}
	return done(op, backend.Connect(h, remote))
}

// Bind assigns local to h. Port api.UnusedPort lets the OS choose.
func Bind(h api.Handle, local api.Endpoint) error {
	const op = "bind"
	if !h.Valid() {
		return done(op, api.ResultNotASocket)
	}
	if !local.IsValid() {
		return done(op, api.ResultNotValidAddressFamily)
	}
	return done(op, backend.Bind(h, local))
}

// Listen marks a bound TCP socket as accepting connections.
func Listen(h api.Handle, backlog int) error {
	const op = "listen"
	if !h.Valid() {
		return done(op, api.ResultNotASocket)
	}
	if backlog < 0 {
		return done(op, api.ResultInvalidInputParam)
	}
	return done(op, backend.Listen(h, backlog))
}

// Accept takes one pending connection from listener h. family declares the
// address capacity the caller expects: an IPv4 declaration cannot receive an
// IPv6 peer, which fails with ResultBufferTooSmall and the accepted socket is
// closed.
func Accept(h api.Handle, family api.Family) (api.Handle, api.Endpoint, error) {
	const op = "accept"
	if !h.Valid() {
		return api.InvalidHandle, api.Endpoint{}, done(op, api.ResultNotASocket)
	}
	if !family.Valid() {
		return api.InvalidHandle, api.Endpoint{}, done(op, api.ResultNotValidAddressFamily)
	}
	nh, peer, err := backend.Accept(h, family)
	if err != nil {
		return api.InvalidHandle, api.Endpoint{}, done(op, err)
	}
	return nh, peer, done(op, nil)
}

// SetBlocking switches h between blocking and non-blocking mode.
func SetBlocking(h api.Handle, blocking bool) error {
	const op = "set_blocking"
	if !h.Valid() {
		return done(op, api.ResultNotASocket)
	}
	return done(op, backend.SetNonblocking(h, !blocking))
}

// BytesAvailable returns how many bytes a read would return without blocking.
func BytesAvailable(h api.Handle) (int, error) {
	const op = "bytes_available"
	if !h.Valid() {
		return 0, done(op, api.ResultNotASocket)
	}
	n, err := backend.BytesAvailable(h)
	if err != nil {
		return 0, done(op, err)
	}
	return n, done(op, nil)
}
