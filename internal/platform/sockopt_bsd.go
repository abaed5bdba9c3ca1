//go:build darwin || dragonfly || freebsd || netbsd || openbsd

// File: internal/platform/sockopt_bsd.go
// Author: momentics <momentics@gmail.com>

package platform

import (
	"github.com/momentics/hioload-net/api"
	"golang.org/x/sys/unix"
)

const pollPeerClosed = 0

const ioctlReadable = unix.FIONREAD

func setTCPSynCount(int, int) error {
	return api.ResultPlatformNotSupported
}

func setTCPUserTimeout(int, int) error {
	return api.ResultPlatformNotSupported
}
