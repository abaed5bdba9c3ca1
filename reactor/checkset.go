// File: reactor/checkset.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package reactor

import "github.com/momentics/hioload-net/api"

// CheckSet keeps a list of handles and their requested events between polls,
// so a server loop does not rebuild the entry array on every iteration.
// A CheckSet is not safe for concurrent use.
type CheckSet struct {
	p      api.Poller
	checks []api.Check
	ready  []api.Check
}

// NewCheckSet returns an empty set polled through p.
func NewCheckSet(p api.Poller) *CheckSet {
	return &CheckSet{p: p}
}

func (s *CheckSet) find(h api.Handle) int {
	for i := range s.checks {
		if s.checks[i].Handle == h {
			return i
		}
	}
	return -1
}

// Add registers h for the events in ev.
func (s *CheckSet) Add(h api.Handle, ev api.Event) error {
	if !h.Valid() {
		return api.ResultNotASocket
	}
	if ev&^api.EventRequestMask != 0 {
		return api.ResultInvalidInputParam
	}
	if s.find(h) >= 0 {
		return api.ResultSocketAlreadyInUse
	}
	s.checks = append(s.checks, api.Check{Handle: h, Requested: ev})
	return nil
}

// Modify replaces the requested events of a registered handle.
func (s *CheckSet) Modify(h api.Handle, ev api.Event) error {
	if ev&^api.EventRequestMask != 0 {
		return api.ResultInvalidInputParam
	}
	i := s.find(h)
	if i < 0 {
		return api.ResultNotASocket
	}
	s.checks[i].Requested = ev
	return nil
}

// Remove unregisters h and reports whether it was present.
func (s *CheckSet) Remove(h api.Handle) bool {
	i := s.find(h)
	if i < 0 {
		return false
	}
	last := len(s.checks) - 1
	s.checks[i] = s.checks[last]
	s.checks = s.checks[:last]
	return true
}

// Len returns the number of registered handles.
func (s *CheckSet) Len() int {
	return len(s.checks)
}

// Wait polls the set once and returns the entries with any returned event,
// including handles reported invalid so the caller can drop them. The
// returned slice is reused by the next Wait.
func (s *CheckSet) Wait(timeoutMs int) ([]api.Check, error) {
	s.ready = s.ready[:0]
	if _, err := Poll(s.p, s.checks, timeoutMs); err != nil {
		return s.ready, err
	}
	for _, c := range s.checks {
		if c.Returned != 0 {
			s.ready = append(s.ready, c)
		}
	}
	return s.ready, nil
}
