// File: internal/platform/translate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-independent part of the error translator. The errno / WSA tables
// live in translate_unix.go and translate_windows.go.

package platform

import (
	"context"
	"errors"
	"net"
	"syscall"

	"github.com/momentics/hioload-net/api"
)

// Translate maps any error produced by the native layer or the resolver to a
// Result. It is total: unrecognised errors become ResultUnknown.
func Translate(err error) api.Result {
	if err == nil {
		return api.ResultSuccess
	}
	var r api.Result
	if errors.As(err, &r) {
		return r
	}
	if res, ok := resolverResult(err); ok {
		return res
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return TranslateErrno(errno)
	}
	return api.ResultUnknown
}

// TranslateErrno maps one native error code through the platform table.
func TranslateErrno(errno syscall.Errno) api.Result {
	if errno == 0 {
		return api.ResultSuccess
	}
	if r, ok := errnoTable[errno]; ok {
		return r
	}
	return api.ResultUnknown
}

// TranslateResolver maps errors of the name resolution space. Errors outside
// that space fall through to Translate.
func TranslateResolver(err error) api.Result {
	if res, ok := resolverResult(err); ok {
		return res
	}
	return Translate(err)
}

func resolverResult(err error) (api.Result, bool) {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		switch {
		case dnsErr.IsNotFound:
			return api.ResultNoName, true
		case dnsErr.IsTimeout:
			return api.ResultTimedOut, true
		case dnsErr.IsTemporary:
			return api.ResultNameServerFail, true
		}
		return api.ResultNameResolutionFailure, true
	}
	var addrErr *net.AddrError
	if errors.As(err, &addrErr) {
		return api.ResultAddressFamilyUnsupported, true
	}
	var parseErr *net.ParseError
	if errors.As(err, &parseErr) {
		return api.ResultInvalidAddress, true
	}
	switch {
	case errors.Is(err, context.Canceled):
		return api.ResultBlockingCanceled, true
	case errors.Is(err, context.DeadlineExceeded):
		return api.ResultTimedOut, true
	}
	return 0, false
}

// result converts a native error into the error returned to callers.
func result(err error) error {
	return Translate(err).Err()
}
