// File: socket/poll.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package socket

import (
	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/reactor"
)

// Poll runs reactor.Poll against the active backend.
func Poll(checks []api.Check, timeoutMs int) (int, error) {
	n, err := reactor.Poll(backend, checks, timeoutMs)
	if err != nil {
		return 0, done("poll", err)
	}
	return n, done("poll", nil)
}

// CanRead reports whether h becomes readable within timeoutMs.
func CanRead(h api.Handle, timeoutMs int) (bool, error) {
	ok, err := reactor.CanRead(backend, h, timeoutMs)
	return ok, done("can_read", err)
}

// CanWrite reports whether h becomes writable within timeoutMs.
func CanWrite(h api.Handle, timeoutMs int) (bool, error) {
	ok, err := reactor.CanWrite(backend, h, timeoutMs)
	return ok, done("can_write", err)
}

// HasError reports whether h has a pending error.
func HasError(h api.Handle) (bool, error) {
	ok, err := reactor.HasError(backend, h)
	return ok, done("has_error", err)
}

// NewCheckSet returns an empty reactor.CheckSet bound to the active backend.
func NewCheckSet() *reactor.CheckSet {
	return reactor.NewCheckSet(backend)
}
