//go:build linux

// File: internal/platform/sockopt_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// TCP tuning knobs only Linux provides.

package platform

import "golang.org/x/sys/unix"

// pollPeerClosed makes poll report a peer shutdown even while data is pending.
const pollPeerClosed = unix.POLLRDHUP

// ioctlReadable reports the bytes queued for reading. x/sys has no FIONREAD
// on linux; SIOCINQ is the same request.
const ioctlReadable = unix.SIOCINQ

func setTCPSynCount(fd, count int) error {
	return result(unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_SYNCNT, count))
}

func setTCPUserTimeout(fd, ms int) error {
	return result(unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_USER_TIMEOUT, ms))
}
