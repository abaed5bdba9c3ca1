// File: api/endpoint.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Endpoint is a fixed-size, family-tagged network endpoint. It holds either an
// IPv4 or an IPv6 payload; the tag decides which one is authoritative.

package api

import (
	"net"
	"net/netip"
	"strconv"
)

// Native sockaddr sizes. A native address reported longer than the size of
// the declared family does not fit the caller's Endpoint.
const (
	SockaddrInet4Size = 16
	SockaddrInet6Size = 28
)

// Text lengths for FormatIP, including room for a terminating NUL so the
// values match INET_ADDRSTRLEN and INET6_ADDRSTRLEN.
const (
	IPv4StringLength  = 16
	IPv6StringLength  = 46
	IPAnyStringLength = IPv6StringLength
)

// IPv4Payload is the IPv4 shape of an Endpoint.
type IPv4Payload struct {
	Addr [4]byte
}

// IPv6Payload is the IPv6 shape of an Endpoint.
type IPv6Payload struct {
	Addr     [16]byte
	FlowInfo uint32
	ScopeID  uint32
}

// Endpoint is one (family, address, port) value. It is comparable and has the
// same size whichever family is active.
type Endpoint struct {
	family Family
	port   uint16
	v4     IPv4Payload
	v6     IPv6Payload
}

// NewIPv4Endpoint builds an IPv4 endpoint.
func NewIPv4Endpoint(addr [4]byte, port uint16) Endpoint {
	return Endpoint{family: FamilyIPv4, port: port, v4: IPv4Payload{Addr: addr}}
}

// NewIPv6Endpoint builds an IPv6 endpoint.
func NewIPv6Endpoint(addr [16]byte, port uint16, flowInfo, scopeID uint32) Endpoint {
	return Endpoint{
		family: FamilyIPv6,
		port:   port,
		v6:     IPv6Payload{Addr: addr, FlowInfo: flowInfo, ScopeID: scopeID},
	}
}

// WildcardEndpoint returns the any-address endpoint of f with the given port.
func WildcardEndpoint(f Family, port uint16) (Endpoint, error) {
	switch f {
	case FamilyIPv4:
		return NewIPv4Endpoint([4]byte{}, port), nil
	case FamilyIPv6:
		return NewIPv6Endpoint([16]byte{}, port, 0, 0), nil
	}
	return Endpoint{}, ResultNotValidAddressFamily
}

// EndpointFromAddrPort converts a netip value. IPv4 and IPv4-mapped IPv6
// addresses keep their own family; use Unmap first to force IPv4.
func EndpointFromAddrPort(ap netip.AddrPort) (Endpoint, error) {
	addr := ap.Addr()
	switch {
	case addr.Is4():
		return NewIPv4Endpoint(addr.As4(), ap.Port()), nil
	case addr.Is6():
		scope, err := zoneIndex(addr.Zone())
		if err != nil {
			return Endpoint{}, err
		}
		return NewIPv6Endpoint(addr.As16(), ap.Port(), 0, scope), nil
	}
	return Endpoint{}, ResultInvalidAddress
}

// zoneIndex maps an IPv6 zone to a scope id. A zone is either numeric or the
// name of a local interface; anything else fails with ResultInvalidAddress.
func zoneIndex(zone string) (uint32, error) {
	if zone == "" {
		return 0, nil
	}
	if n, err := strconv.ParseUint(zone, 10, 32); err == nil {
		return uint32(n), nil
	}
	ifi, err := net.InterfaceByName(zone)
	if err != nil {
		return 0, ResultInvalidAddress
	}
	return uint32(ifi.Index), nil
}

// Family returns the authoritative family tag.
func (e Endpoint) Family() Family {
	return e.family
}

// IsValid reports whether the tag names IPv4 or IPv6.
func (e Endpoint) IsValid() bool {
	return e.family.Valid()
}

// Port returns the port in host byte order.
func (e Endpoint) Port() uint16 {
	e.mustValid()
	return e.port
}

// IPv4 returns the IPv4 payload; ok is false for other families.
func (e Endpoint) IPv4() (p IPv4Payload, ok bool) {
	if e.family != FamilyIPv4 {
		return IPv4Payload{}, false
	}
	return e.v4, true
}

// IPv6 returns the IPv6 payload; ok is false for other families.
func (e Endpoint) IPv6() (p IPv6Payload, ok bool) {
	if e.family != FamilyIPv6 {
		return IPv6Payload{}, false
	}
	return e.v6, true
}

// Addr returns the address part as a netip.Addr.
func (e Endpoint) Addr() netip.Addr {
	switch e.family {
	case FamilyIPv4:
		return netip.AddrFrom4(e.v4.Addr)
	case FamilyIPv6:
		a := netip.AddrFrom16(e.v6.Addr)
		if e.v6.ScopeID != 0 {
			a = a.WithZone(strconv.FormatUint(uint64(e.v6.ScopeID), 10))
		}
		return a
	}
	panic(invalidEndpoint(e.family))
}

// AddrPort returns the endpoint as a netip.AddrPort.
func (e Endpoint) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(e.Addr(), e.port)
}

// IP formats the address part ("127.0.0.1", "::1").
func (e Endpoint) IP() string {
	return e.Addr().String()
}

// FormatIP writes the textual address into buf and returns the number of
// bytes written. buf must hold at least IPv4StringLength bytes for IPv4 and
// IPv6StringLength bytes for IPv6; shorter buffers fail with
// ResultBufferTooSmall and are left untouched.
func (e Endpoint) FormatIP(buf []byte) (int, error) {
	e.mustValid()
	need := IPv4StringLength
	if e.family == FamilyIPv6 {
		need = IPv6StringLength
	}
	if len(buf) < need {
		return 0, ResultBufferTooSmall
	}
	text := e.Addr().AppendTo(buf[:0:len(buf)])
	if len(text) > len(buf) {
		// a zone suffix pushed past the buffer and AppendTo reallocated
		return 0, ResultBufferTooSmall
	}
	return len(text), nil
}

// String renders host:port with IPv6 hosts in brackets. Invalid endpoints
// render as "<invalid endpoint>".
func (e Endpoint) String() string {
	if !e.IsValid() {
		return "<invalid endpoint>"
	}
	return e.AddrPort().String()
}

// WithPort returns a copy of e with the port replaced.
func (e Endpoint) WithPort(port uint16) Endpoint {
	e.mustValid()
	e.port = port
	return e
}

// SockaddrSize returns the native sockaddr size of the endpoint's family.
func (e Endpoint) SockaddrSize() int {
	return SockaddrSize(e.family)
}

// SockaddrSize returns the native sockaddr size for f, 0 if f is invalid.
func SockaddrSize(f Family) int {
	switch f {
	case FamilyIPv4:
		return SockaddrInet4Size
	case FamilyIPv6:
		return SockaddrInet6Size
	}
	return 0
}

// CheckCapacity verifies that an address reported by the OS with length
// reported fits the family the caller declared.
func CheckCapacity(declared Family, reported int) error {
	size := SockaddrSize(declared)
	if size == 0 {
		return ResultNotValidAddressFamily
	}
	if reported < 0 || reported > size {
		return ResultBufferTooSmall
	}
	return nil
}

func (e Endpoint) mustValid() {
	if !e.family.Valid() {
		panic(invalidEndpoint(e.family))
	}
}

type invalidEndpoint Family

func (f invalidEndpoint) Error() string {
	return "api: endpoint family tag " + strconv.Itoa(int(f)) + " is neither ipv4 nor ipv6"
}
