// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants.

package api

import "time"

// Handle is an opaque platform-native socket handle: a file descriptor on unix,
// a SOCKET on windows.
type Handle uintptr

// InvalidHandle is the sentinel for "no socket". It is -1 on unix and
// INVALID_SOCKET on windows.
const InvalidHandle = ^Handle(0)

// Valid reports whether h is not the invalid sentinel.
func (h Handle) Valid() bool {
	return h != InvalidHandle
}

// Family is the address family of a socket or endpoint.
type Family uint8

const (
	FamilyUnspecified Family = iota
	FamilyIPv4
	FamilyIPv6
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return "unspecified"
	}
}

// Valid reports whether f is IPv4 or IPv6.
func (f Family) Valid() bool {
	return f == FamilyIPv4 || f == FamilyIPv6
}

// ParseFamily accepts "ipv4"/"4" and "ipv6"/"6".
func ParseFamily(s string) (Family, error) {
	switch s {
	case "ipv4", "4", "inet":
		return FamilyIPv4, nil
	case "ipv6", "6", "inet6":
		return FamilyIPv6, nil
	}
	return FamilyUnspecified, ResultNotValidAddressFamily
}

// Protocol is the transport protocol of a socket.
type Protocol uint8

const (
	ProtocolUnspecified Protocol = iota
	ProtocolTCP
	ProtocolUDP
)

func (p Protocol) String() string {
	switch p {
	case ProtocolTCP:
		return "tcp"
	case ProtocolUDP:
		return "udp"
	default:
		return "unspecified"
	}
}

// Valid reports whether p is TCP or UDP.
func (p Protocol) Valid() bool {
	return p == ProtocolTCP || p == ProtocolUDP
}

// ParseProtocol accepts "tcp" and "udp".
func ParseProtocol(s string) (Protocol, error) {
	switch s {
	case "tcp":
		return ProtocolTCP, nil
	case "udp":
		return ProtocolUDP, nil
	}
	return ProtocolUnspecified, ResultInvalidProtocol
}

// Network returns the Go network name ("tcp4", "udp6", ...) for p and f.
func Network(p Protocol, f Family) string {
	suffix := ""
	switch f {
	case FamilyIPv4:
		suffix = "4"
	case FamilyIPv6:
		suffix = "6"
	}
	return p.String() + suffix
}

// OptBool is the fixed-width boolean used for socket options. Only 0 and 1
// are accepted.
type OptBool int32

const (
	False OptBool = 0
	True  OptBool = 1
)

// Valid reports whether b is 0 or 1.
func (b OptBool) Valid() bool {
	return b == False || b == True
}

// BoolOpt converts a Go bool.
func BoolOpt(v bool) OptBool {
	if v {
		return True
	}
	return False
}

// Option identifies a socket option understood by a Backend.
type Option uint8

const (
	OptReuseAddr Option = iota + 1
	OptReusePort
	OptKeepAlive
	OptBroadcast
	OptRecvTimeout
	OptSendTimeout
	OptTCPNoDelay
	OptTCPSynCount
	OptTCPUserTimeout
	OptTTL
	OptHeaderIncluded
)

func (o Option) String() string {
	switch o {
	case OptReuseAddr:
		return "reuse_addr"
	case OptReusePort:
		return "reuse_port"
	case OptKeepAlive:
		return "keepalive"
	case OptBroadcast:
		return "broadcast"
	case OptRecvTimeout:
		return "recv_timeout"
	case OptSendTimeout:
		return "send_timeout"
	case OptTCPNoDelay:
		return "tcp_nodelay"
	case OptTCPSynCount:
		return "tcp_syncnt"
	case OptTCPUserTimeout:
		return "tcp_user_timeout"
	case OptTTL:
		return "ttl"
	case OptHeaderIncluded:
		return "header_included"
	default:
		return "unknown"
	}
}

// Event is a readiness bit reported by the multiplexer.
type Event uint16

const (
	EventRead Event = 1 << iota
	EventWrite
	EventError
	EventClosed
	EventInvalid
)

// EventRequestMask holds the bits a caller may request. The others are always
// reported when they occur.
const EventRequestMask = EventRead | EventWrite

// Has reports whether all bits of o are set in e.
func (e Event) Has(o Event) bool {
	return e&o == o && o != 0
}

// Check is one readiness entry: the handle, the events requested, and the
// events returned by the last poll.
type Check struct {
	Handle    Handle
	Requested Event
	Returned  Event
}

const (
	// DefaultBacklog is the listen backlog used when none is configured.
	DefaultBacklog = 128

	// AnyAddress is the host token for the wildcard address.
	AnyAddress = ""
	// AnyPort is the service token that lets the OS pick a port.
	AnyPort = "0"
	// UnusedPort is the numeric form of AnyPort.
	UnusedPort uint16 = 0

	// WaitForever makes a poll block until an entry becomes ready.
	WaitForever = -1
)

// TimeoutMillis converts d to the millisecond convention of Poll and the
// timeout options, rounding sub-millisecond durations up.
func TimeoutMillis(d time.Duration) int {
	if d < 0 {
		return WaitForever
	}
	ms := d / time.Millisecond
	if d%time.Millisecond != 0 {
		ms++
	}
	return int(ms)
}
