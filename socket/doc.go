// File: socket/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package socket is the portable socket API: open, bind, connect, listen,
// accept, read, write, option setters, address lookup and readiness polling
// over TCP and UDP on IPv4 and IPv6.
//
// Every operation returns an error whose non-nil values are api.Result, so
// callers branch with api.ResultOf or errors.Is against a Result constant.
// Nothing is retried on the caller's behalf. A handle equal to
// api.InvalidHandle is rejected with api.ResultNotASocket by everything
// except Close.
//
// The package keeps no per-socket state. Startup must run before the first
// socket is opened and Shutdown after the last one is closed; SetBackend,
// SetLogger and SetObserver follow the same rule and are not synchronized.
package socket
