// File: socket/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Socket option setters. Values are range-checked here; the backend owns the
// native encoding. Options a platform lacks return
// api.ResultPlatformNotSupported.

package socket

import "github.com/momentics/hioload-net/api"

const (
	maxSynCount = 255
	maxTTL      = 255
)

func setOption(op string, h api.Handle, opt api.Option, value int) error {
	if !h.Valid() {
		return done(op, api.ResultNotASocket)
	}
	return done(op, backend.SetOption(h, opt, value))
}

func setBool(op string, h api.Handle, opt api.Option, v api.OptBool) error {
	if !v.Valid() {
		return done(op, api.ResultInvalidInputParam)
	}
	return setOption(op, h, opt, int(v))
}

func setRange(op string, h api.Handle, opt api.Option, v, lo, hi int) error {
	if v < lo || v > hi {
		return done(op, api.ResultInvalidInputParam)
	}
	return setOption(op, h, opt, v)
}

// SetReuseAddr toggles SO_REUSEADDR.
func SetReuseAddr(h api.Handle, v api.OptBool) error {
	return setBool("set_reuse_addr", h, api.OptReuseAddr, v)
}

// SetReusePort toggles SO_REUSEPORT. Not available on windows.
func SetReusePort(h api.Handle, v api.OptBool) error {
	return setBool("set_reuse_port", h, api.OptReusePort, v)
}

// SetKeepalive toggles SO_KEEPALIVE.
func SetKeepalive(h api.Handle, v api.OptBool) error {
	return setBool("set_keepalive", h, api.OptKeepAlive, v)
}

// SetBroadcast toggles SO_BROADCAST.
func SetBroadcast(h api.Handle, v api.OptBool) error {
	return setBool("set_broadcast", h, api.OptBroadcast, v)
}

// SetRecvTimeout bounds blocking reads to ms milliseconds; 0 disables it.
func SetRecvTimeout(h api.Handle, ms int) error {
	return setRange("set_recv_timeout", h, api.OptRecvTimeout, ms, 0, maxInt32)
}

// SetSendTimeout bounds blocking writes to ms milliseconds; 0 disables it.
func SetSendTimeout(h api.Handle, ms int) error {
	return setRange("set_send_timeout", h, api.OptSendTimeout, ms, 0, maxInt32)
}

// SetTCPNoDelay toggles Nagle's algorithm off or on.
func SetTCPNoDelay(h api.Handle, v api.OptBool) error {
	return setBool("set_tcp_nodelay", h, api.OptTCPNoDelay, v)
}

// SetTCPSynCount sets how many SYN retransmits a connect attempts. Linux only.
func SetTCPSynCount(h api.Handle, count int) error {
	return setRange("set_tcp_syncnt", h, api.OptTCPSynCount, count, 0, maxSynCount)
}

// SetTCPUserTimeout sets how long transmitted data may stay unacknowledged
// before the connection is dropped. Linux only.
func SetTCPUserTimeout(h api.Handle, ms int) error {
	return setRange("set_tcp_user_timeout", h, api.OptTCPUserTimeout, ms, 0, maxInt32)
}

// SetTTL sets the unicast hop limit: IP_TTL on IPv4 sockets and
// IPV6_UNICAST_HOPS on IPv6 sockets.
func SetTTL(h api.Handle, ttl int) error {
	return setRange("set_ttl", h, api.OptTTL, ttl, 1, maxTTL)
}

// SetHeaderIncluded toggles IP_HDRINCL. Only meaningful on raw sockets; a
// TCP or UDP socket usually rejects it with ResultInvalidProtocol.
func SetHeaderIncluded(h api.Handle, v api.OptBool) error {
	return setBool("set_header_included", h, api.OptHeaderIncluded, v)
}

const maxInt32 = 1<<31 - 1
