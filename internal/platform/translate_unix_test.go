//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package platform_test

import (
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/internal/platform"
	"golang.org/x/sys/unix"
	"gotest.tools/v3/assert"
)

func TestTranslateErrnoTable(t *testing.T) {
	cases := map[syscall.Errno]api.Result{
		unix.EAGAIN:       api.ResultWouldBlock,
		unix.EINPROGRESS:  api.ResultInProgress,
		unix.ECONNREFUSED: api.ResultConnectionRefused,
		unix.EADDRINUSE:   api.ResultSocketAlreadyInUse,
		unix.ENOTSOCK:     api.ResultNotASocket,
		unix.EBADF:        api.ResultInvalidFileDescriptor,
		unix.ECONNRESET:   api.ResultSocketReset,
		unix.EPIPE:        api.ResultConnectionClosed,
		unix.ETIMEDOUT:    api.ResultTimedOut,
		unix.EMFILE:       api.ResultNoFreeFileDescriptors,
		unix.ENETUNREACH:  api.ResultNetUnreachable,
		unix.EMSGSIZE:     api.ResultTooLongMsgNotSent,
		unix.EAFNOSUPPORT: api.ResultNotValidAddressFamily,
		unix.EISCONN:      api.ResultAlreadyConnected,
		unix.EINTR:        api.ResultBlockingCanceled,
	}
	for errno, want := range cases {
		assert.Equal(t, platform.TranslateErrno(errno), want, "%v", errno)
	}
}

func TestTranslateWrappedErrno(t *testing.T) {
	err := os.NewSyscallError("connect", unix.ECONNREFUSED)
	assert.Equal(t, platform.Translate(err), api.ResultConnectionRefused)

	err = fmt.Errorf("dial: %w", &os.PathError{Op: "read", Path: "sock", Err: unix.EAGAIN})
	assert.Equal(t, platform.Translate(err), api.ResultWouldBlock)
}
