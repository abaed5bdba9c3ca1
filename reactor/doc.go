// File: reactor/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package reactor provides the batch readiness multiplexer: a single
// timeout-bounded check of many socket handles for read, write, error,
// peer-closed and invalid conditions, plus single-handle helpers and a
// reusable registration list. It does not run an event loop; every call is
// synchronous and owns nothing between calls except what the caller keeps.
package reactor
