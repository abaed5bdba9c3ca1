// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral readiness check over an api.Poller.

package reactor

import "github.com/momentics/hioload-net/api"

// Poll checks every entry of checks for readiness, waiting at most timeoutMs
// milliseconds (negative waits forever, zero returns at once). It returns the
// number of ready entries.
//
// Returned is cleared on every entry before anything else happens. Entries
// holding api.InvalidHandle are marked api.EventInvalid without being handed
// to the OS. An entry whose only returned bit is api.EventInvalid, such as a
// closed descriptor, is never counted as ready. Requested may only carry
// api.EventRead and api.EventWrite; error, closed and invalid conditions are
// always reported.
func Poll(p api.Poller, checks []api.Check, timeoutMs int) (int, error) {
	valid := 0
	for i := range checks {
		checks[i].Returned = 0
		if checks[i].Requested&^api.EventRequestMask != 0 {
			return 0, api.ResultInvalidInputParam
		}
		if checks[i].Handle.Valid() {
			valid++
		}
	}
	if valid == 0 {
		markInvalid(checks)
		return 0, nil
	}
	if valid == len(checks) {
		if _, err := p.Poll(checks, timeoutMs); err != nil {
			return 0, err
		}
		return countReady(checks), nil
	}

	polled := make([]api.Check, 0, valid)
	for _, c := range checks {
		if c.Handle.Valid() {
			polled = append(polled, c)
		}
	}
	if _, err := p.Poll(polled, timeoutMs); err != nil {
		return 0, err
	}
	j := 0
	for i := range checks {
		if !checks[i].Handle.Valid() {
			checks[i].Returned = api.EventInvalid
			continue
		}
		checks[i].Returned = polled[j].Returned
		j++
	}
	return countReady(polled), nil
}

func markInvalid(checks []api.Check) {
	for i := range checks {
		checks[i].Returned = api.EventInvalid
	}
}

func countReady(checks []api.Check) int {
	n := 0
	for _, c := range checks {
		if isReady(c.Returned) {
			n++
		}
	}
	return n
}

func isReady(ev api.Event) bool {
	return ev != 0 && ev != api.EventInvalid
}

// CanRead reports whether h becomes readable within timeoutMs.
func CanRead(p api.Poller, h api.Handle, timeoutMs int) (bool, error) {
	return ready(p, h, api.EventRead, timeoutMs)
}

// CanWrite reports whether h becomes writable within timeoutMs. A
// non-blocking connect has completed once this returns true.
func CanWrite(p api.Poller, h api.Handle, timeoutMs int) (bool, error) {
	return ready(p, h, api.EventWrite, timeoutMs)
}

// ready polls h alone. When the wanted bit is absent the unsolicited
// conditions are turned into results: invalid handle, error, peer closed.
func ready(p api.Poller, h api.Handle, want api.Event, timeoutMs int) (bool, error) {
	if !h.Valid() {
		return false, api.ResultNotASocket
	}
	checks := [1]api.Check{{Handle: h, Requested: want}}
	if _, err := Poll(p, checks[:], timeoutMs); err != nil {
		return false, err
	}
	ev := checks[0].Returned
	switch {
	case ev.Has(want):
		return true, nil
	case ev.Has(api.EventInvalid):
		return false, api.ResultInvalidFileDescriptor
	case ev.Has(api.EventError):
		return false, api.ResultFail
	case ev.Has(api.EventClosed):
		return false, api.ResultConnectionClosed
	}
	return false, nil
}

// HasError reports, without waiting, whether h has a pending error or is no
// longer a valid descriptor.
func HasError(p api.Poller, h api.Handle) (bool, error) {
	if !h.Valid() {
		return false, api.ResultNotASocket
	}
	checks := [1]api.Check{{Handle: h}}
	if _, err := Poll(p, checks[:], 0); err != nil {
		return false, err
	}
	return checks[0].Returned&(api.EventError|api.EventInvalid) != 0, nil
}
