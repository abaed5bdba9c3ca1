// control/apply.go
// Author: momentics <momentics@gmail.com>
//
// Socket profile application.

package control

import (
	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/socket"
	"github.com/pkg/errors"
)

type profileStep struct {
	opt   api.Option
	set   bool
	tcp   bool
	udp   bool
	apply func() error
}

// ApplyProfile sets every option p defines on h. Options that do not apply to
// proto are skipped. Options the platform lacks are collected and returned
// instead of failing; any other failure stops the run.
func ApplyProfile(h api.Handle, proto api.Protocol, p SocketProfile) (gaps []api.Option, err error) {
	b := func(v *bool) api.OptBool {
		return api.BoolOpt(v != nil && *v)
	}
	n := func(v *int) int {
		if v == nil {
			return 0
		}
		return *v
	}
	steps := []profileStep{
		{api.OptReuseAddr, p.ReuseAddr != nil, true, true, func() error { return socket.SetReuseAddr(h, b(p.ReuseAddr)) }},
		{api.OptReusePort, p.ReusePort != nil, true, true, func() error { return socket.SetReusePort(h, b(p.ReusePort)) }},
		{api.OptKeepAlive, p.KeepAlive != nil, true, false, func() error { return socket.SetKeepalive(h, b(p.KeepAlive)) }},
		{api.OptBroadcast, p.Broadcast != nil, false, true, func() error { return socket.SetBroadcast(h, b(p.Broadcast)) }},
		{api.OptTCPNoDelay, p.NoDelay != nil, true, false, func() error { return socket.SetTCPNoDelay(h, b(p.NoDelay)) }},
		{api.OptRecvTimeout, p.RecvTimeoutMs != nil, true, true, func() error { return socket.SetRecvTimeout(h, n(p.RecvTimeoutMs)) }},
		{api.OptSendTimeout, p.SendTimeoutMs != nil, true, true, func() error { return socket.SetSendTimeout(h, n(p.SendTimeoutMs)) }},
		{api.OptTCPSynCount, p.SynCount != nil, true, false, func() error { return socket.SetTCPSynCount(h, n(p.SynCount)) }},
		{api.OptTCPUserTimeout, p.UserTimeoutMs != nil, true, false, func() error { return socket.SetTCPUserTimeout(h, n(p.UserTimeoutMs)) }},
		{api.OptTTL, p.TTL != nil, true, true, func() error { return socket.SetTTL(h, n(p.TTL)) }},
	}
	for _, s := range steps {
		if !s.set || (proto == api.ProtocolTCP && !s.tcp) || (proto == api.ProtocolUDP && !s.udp) {
			continue
		}
		if err := s.apply(); err != nil {
			if api.ResultOf(err) == api.ResultPlatformNotSupported {
				gaps = append(gaps, s.opt)
				continue
			}
			return gaps, errors.Wrapf(err, "apply %s", s.opt)
		}
	}
	if p.Nonblocking != nil {
		if err := socket.SetBlocking(h, !*p.Nonblocking); err != nil {
			return gaps, errors.Wrap(err, "apply nonblocking")
		}
	}
	return gaps, nil
}
