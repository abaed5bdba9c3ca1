//go:build darwin

// File: internal/platform/nosigpipe_darwin.go
// Author: momentics <momentics@gmail.com>
//
// darwin has no MSG_NOSIGNAL; SIGPIPE is suppressed per socket instead.

package platform

import "golang.org/x/sys/unix"

const sendFlags = 0

func prepareSocket(fd int) error {
	return unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_NOSIGPIPE, 1)
}
