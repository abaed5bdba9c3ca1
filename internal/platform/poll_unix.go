//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

// File: internal/platform/poll_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Batch readiness check via poll(2).

package platform

import (
	"math"
	"time"

	"github.com/momentics/hioload-net/api"
	"golang.org/x/sys/unix"
)

func (unixBackend) Poll(checks []api.Check, timeoutMs int) (int, error) {
	fds := make([]unix.PollFd, len(checks))
	for i, c := range checks {
		// pollfd carries an int32 descriptor
		if c.Handle > math.MaxInt32 {
			return 0, api.ResultInvalidFileDescriptor
		}
		fds[i] = unix.PollFd{Fd: int32(c.Handle), Events: pollEvents(c.Requested)}
	}
	n, err := pollRestart(fds, timeoutMs)
	if err != nil {
		return 0, result(err)
	}
	for i := range checks {
		checks[i].Returned = returnedEvents(fds[i].Revents)
	}
	return n, nil
}

// pollRestart calls poll, resuming with the remaining time after EINTR.
func pollRestart(fds []unix.PollFd, timeoutMs int) (int, error) {
	var deadline time.Time
	if timeoutMs > 0 {
		deadline = time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	}
	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err != unix.EINTR {
			return n, err
		}
		if timeoutMs > 0 {
			left := time.Until(deadline)
			if left <= 0 {
				return 0, nil
			}
			timeoutMs = api.TimeoutMillis(left)
		}
	}
}

func pollEvents(req api.Event) int16 {
	ev := int16(pollPeerClosed)
	if req.Has(api.EventRead) {
		ev |= unix.POLLIN
	}
	if req.Has(api.EventWrite) {
		ev |= unix.POLLOUT
	}
	return ev
}

func returnedEvents(rev int16) api.Event {
	var ev api.Event
	if rev&unix.POLLIN != 0 {
		ev |= api.EventRead
	}
	if rev&unix.POLLOUT != 0 {
		ev |= api.EventWrite
	}
	if rev&unix.POLLERR != 0 {
		ev |= api.EventError
	}
	if rev&(unix.POLLHUP|pollPeerClosed) != 0 {
		ev |= api.EventClosed
	}
	if rev&unix.POLLNVAL != 0 {
		ev |= api.EventInvalid
	}
	return ev
}
