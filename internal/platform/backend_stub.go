//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || windows)

// File: internal/platform/backend_stub.go
// Author: momentics <momentics@gmail.com>
//
// Backend for platforms without a socket implementation. Every call fails
// with ResultPlatformNotSupported.

package platform

import (
	"syscall"

	"github.com/momentics/hioload-net/api"
)

var errnoTable = map[syscall.Errno]api.Result{}

type stubBackend struct{}

// Native returns the backend of the running platform.
func Native() api.Backend {
	return stubBackend{}
}

const unsupported = api.ResultPlatformNotSupported

func (stubBackend) Startup() error  { return unsupported }
func (stubBackend) Shutdown() error { return nil }

func (stubBackend) Socket(api.Protocol, api.Family) (api.Handle, error) {
	return api.InvalidHandle, unsupported
}

func (stubBackend) Close(api.Handle) error                      { return unsupported }
func (stubBackend) Connect(api.Handle, api.Endpoint) error      { return unsupported }
func (stubBackend) Bind(api.Handle, api.Endpoint) error         { return unsupported }
func (stubBackend) Listen(api.Handle, int) error                { return unsupported }
func (stubBackend) SetNonblocking(api.Handle, bool) error       { return unsupported }
func (stubBackend) SetOption(api.Handle, api.Option, int) error { return unsupported }

func (stubBackend) Accept(api.Handle, api.Family) (api.Handle, api.Endpoint, error) {
	return api.InvalidHandle, api.Endpoint{}, unsupported
}

func (stubBackend) Recv(api.Handle, []byte) (int, error) { return 0, unsupported }
func (stubBackend) Send(api.Handle, []byte) (int, error) { return 0, unsupported }

func (stubBackend) RecvFrom(api.Handle, []byte, api.Family) (int, api.Endpoint, error) {
	return 0, api.Endpoint{}, unsupported
}

func (stubBackend) SendTo(api.Handle, []byte, api.Endpoint) (int, error) {
	return 0, unsupported
}

func (stubBackend) LocalAddress(api.Handle, api.Family) (api.Endpoint, error) {
	return api.Endpoint{}, unsupported
}

func (stubBackend) PeerAddress(api.Handle, api.Family) (api.Endpoint, error) {
	return api.Endpoint{}, unsupported
}

func (stubBackend) SocketProtocol(api.Handle) (api.Protocol, error) {
	return api.ProtocolUnspecified, unsupported
}

func (stubBackend) SocketFamily(api.Handle) (api.Family, error) {
	return api.FamilyUnspecified, unsupported
}

func (stubBackend) BytesAvailable(api.Handle) (int, error) { return 0, unsupported }

func (stubBackend) Poll([]api.Check, int) (int, error) { return 0, unsupported }
