package platform_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/internal/platform"
	"gotest.tools/v3/assert"
	"pgregory.net/rapid"
)

func TestTranslateNilAndResult(t *testing.T) {
	assert.Equal(t, platform.Translate(nil), api.ResultSuccess)
	assert.Equal(t, platform.Translate(api.ResultTimedOut), api.ResultTimedOut)

	wrapped := fmt.Errorf("connect: %w", api.ResultConnectionRefused)
	assert.Equal(t, platform.Translate(wrapped), api.ResultConnectionRefused)
}

func TestTranslateUnknown(t *testing.T) {
	assert.Equal(t, platform.Translate(errors.New("something else")), api.ResultUnknown)
	assert.Equal(t, platform.TranslateErrno(0), api.ResultSuccess)
	assert.Equal(t, platform.TranslateErrno(0x7ffe), api.ResultUnknown)
}

func TestTranslateResolver(t *testing.T) {
	cases := []struct {
		err  error
		want api.Result
	}{
		{&net.DNSError{Err: "no such host", Name: "x.invalid", IsNotFound: true}, api.ResultNoName},
		{&net.DNSError{Err: "i/o timeout", Name: "x", IsTimeout: true}, api.ResultTimedOut},
		{&net.DNSError{Err: "server misbehaving", Name: "x", IsTemporary: true}, api.ResultNameServerFail},
		{&net.DNSError{Err: "weird", Name: "x"}, api.ResultNameResolutionFailure},
		{&net.AddrError{Err: "no suitable address", Addr: "x"}, api.ResultAddressFamilyUnsupported},
		{&net.ParseError{Type: "IP address", Text: "1.2.3"}, api.ResultInvalidAddress},
		{context.Canceled, api.ResultBlockingCanceled},
		{context.DeadlineExceeded, api.ResultTimedOut},
	}
	for _, c := range cases {
		assert.Equal(t, platform.TranslateResolver(c.err), c.want, "%v", c.err)
	}
}

func TestTranslateIsTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := rapid.IntRange(0, 1<<16).Draw(t, "errno")
		r := platform.TranslateErrno(errnoOf(code))
		if !r.Valid() {
			t.Fatalf("errno %d translated to %d, outside the result set", code, r)
		}
		if code != 0 && r == api.ResultSuccess {
			t.Fatalf("errno %d translated to success", code)
		}
	})
}

func errnoOf(code int) syscall.Errno {
	return syscall.Errno(code)
}
