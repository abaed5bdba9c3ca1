//go:build dragonfly || freebsd || linux || netbsd || openbsd

// File: internal/platform/nosigpipe_other.go
// Author: momentics <momentics@gmail.com>

package platform

import "golang.org/x/sys/unix"

// sendFlags keeps a broken pipe an EPIPE error instead of a signal.
const sendFlags = unix.MSG_NOSIGNAL

func prepareSocket(int) error {
	return nil
}
