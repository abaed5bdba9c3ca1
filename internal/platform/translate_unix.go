//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

// File: internal/platform/translate_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import (
	"syscall"

	"github.com/momentics/hioload-net/api"
	"golang.org/x/sys/unix"
)

// errnoTable covers every errno the socket calls of this backend document.
// EWOULDBLOCK and ENOTSUP alias EAGAIN and EOPNOTSUPP on some targets and are
// therefore left out.
var errnoTable = map[syscall.Errno]api.Result{
	unix.ENOTSOCK:        api.ResultNotASocket,
	unix.EBADF:           api.ResultInvalidFileDescriptor,
	unix.EALREADY:        api.ResultInProgress,
	unix.EINPROGRESS:     api.ResultInProgress,
	unix.EAGAIN:          api.ResultWouldBlock,
	unix.ECONNREFUSED:    api.ResultConnectionRefused,
	unix.EACCES:          api.ResultAccessDenied,
	unix.EPERM:           api.ResultAccessDenied,
	unix.EADDRINUSE:      api.ResultSocketAlreadyInUse,
	unix.EADDRNOTAVAIL:   api.ResultInvalidAddress,
	unix.EDESTADDRREQ:    api.ResultInvalidAddress,
	unix.EISCONN:         api.ResultAlreadyConnected,
	unix.ETIMEDOUT:       api.ResultTimedOut,
	unix.ECONNABORTED:    api.ResultConnectionAborted,
	unix.EINVAL:          api.ResultNotListeningOrNotConnected,
	unix.EMFILE:          api.ResultNoFreeFileDescriptors,
	unix.ENFILE:          api.ResultNoFreeFiles,
	unix.ECONNRESET:      api.ResultSocketReset,
	unix.ENETRESET:       api.ResultSocketReset,
	unix.ENOTCONN:        api.ResultConnectionClosed,
	unix.EPIPE:           api.ResultConnectionClosed,
	unix.ESHUTDOWN:       api.ResultConnectionClosed,
	unix.EAFNOSUPPORT:    api.ResultNotValidAddressFamily,
	unix.EPFNOSUPPORT:    api.ResultNotValidAddressFamily,
	unix.ENOSPC:          api.ResultNotEnoughSpace,
	unix.EMSGSIZE:        api.ResultTooLongMsgNotSent,
	unix.ENOBUFS:         api.ResultNoMemory,
	unix.ENOMEM:          api.ResultNoMemory,
	unix.EPROTONOSUPPORT: api.ResultInvalidProtocol,
	unix.EPROTOTYPE:      api.ResultInvalidProtocol,
	unix.ESOCKTNOSUPPORT: api.ResultInvalidProtocol,
	unix.ENOPROTOOPT:     api.ResultInvalidProtocol,
	unix.EOPNOTSUPP:      api.ResultInvalidProtocol,
	unix.ENETUNREACH:     api.ResultNetUnreachable,
	unix.EHOSTUNREACH:    api.ResultNetUnreachable,
	unix.EHOSTDOWN:       api.ResultNetUnreachable,
	unix.ENETDOWN:        api.ResultNoNetwork,
	unix.EFAULT:          api.ResultInvalidInputParam,
	unix.EINTR:           api.ResultBlockingCanceled,
	unix.ENOSYS:          api.ResultPlatformNotSupported,
}
