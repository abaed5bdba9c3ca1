//go:build windows

// File: internal/platform/poll_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import (
	"time"
	"unsafe"

	"github.com/momentics/hioload-net/api"
	"golang.org/x/sys/windows"
)

const (
	pollRdNorm = 0x0100
	pollWrNorm = 0x0010
	pollErr    = 0x0001
	pollHup    = 0x0002
	pollNval   = 0x0004
)

// wsaPollFd mirrors WSAPOLLFD.
type wsaPollFd struct {
	fd      windows.Handle
	events  int16
	revents int16
}

func (windowsBackend) Poll(checks []api.Check, timeoutMs int) (int, error) {
	if len(checks) == 0 {
		if timeoutMs > 0 {
			time.Sleep(time.Duration(timeoutMs) * time.Millisecond)
		}
		return 0, nil
	}
	fds := make([]wsaPollFd, len(checks))
	for i, c := range checks {
		fds[i].fd = windows.Handle(c.Handle)
		if c.Requested.Has(api.EventRead) {
			fds[i].events |= pollRdNorm
		}
		if c.Requested.Has(api.EventWrite) {
			fds[i].events |= pollWrNorm
		}
	}
	r, _, e := procWSAPoll.Call(uintptr(unsafe.Pointer(&fds[0])), uintptr(len(fds)), uintptr(int32(timeoutMs)))
	n := int32(r)
	if n < 0 {
		return 0, wsaError(e)
	}
	for i := range checks {
		rev := fds[i].revents
		var ev api.Event
		if rev&pollRdNorm != 0 {
			ev |= api.EventRead
		}
		if rev&pollWrNorm != 0 {
			ev |= api.EventWrite
		}
		if rev&pollErr != 0 {
			ev |= api.EventError
		}
		if rev&pollHup != 0 {
			ev |= api.EventClosed
		}
		if rev&pollNval != 0 {
			ev |= api.EventInvalid
		}
		checks[i].Returned = ev
	}
	return int(n), nil
}
