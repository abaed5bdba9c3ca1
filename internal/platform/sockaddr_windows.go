//go:build windows

// File: internal/platform/sockaddr_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Endpoint encoding for Winsock. Raw sockaddrs are used wherever the native
// call reports an address length, so capacity is checked against the real
// value instead of one derived from the decoded type.

package platform

import (
	"unsafe"

	"github.com/momentics/hioload-net/api"
	"golang.org/x/sys/windows"
)

func domainOf(family api.Family) (int, error) {
	switch family {
	case api.FamilyIPv4:
		return windows.AF_INET, nil
	case api.FamilyIPv6:
		return windows.AF_INET6, nil
	}
	return 0, api.ResultNotValidAddressFamily
}

func typeOf(proto api.Protocol) (typ, ipproto int, err error) {
	switch proto {
	case api.ProtocolTCP:
		return windows.SOCK_STREAM, windows.IPPROTO_TCP, nil
	case api.ProtocolUDP:
		return windows.SOCK_DGRAM, windows.IPPROTO_UDP, nil
	}
	return 0, 0, api.ResultInvalidProtocol
}

func toSockaddr(ep api.Endpoint) (windows.Sockaddr, error) {
	switch ep.Family() {
	case api.FamilyIPv4:
		p, _ := ep.IPv4()
		return &windows.SockaddrInet4{Port: int(ep.Port()), Addr: p.Addr}, nil
	case api.FamilyIPv6:
		p, _ := ep.IPv6()
		return &windows.SockaddrInet6{Port: int(ep.Port()), ZoneId: p.ScopeID, Addr: p.Addr}, nil
	}
	return nil, api.ResultNotValidAddressFamily
}

func putPort(dst *uint16, port uint16) {
	b := (*[2]byte)(unsafe.Pointer(dst))
	b[0] = byte(port >> 8)
	b[1] = byte(port)
}

func getPort(src *uint16) uint16 {
	b := (*[2]byte)(unsafe.Pointer(src))
	return uint16(b[0])<<8 | uint16(b[1])
}

// toRaw encodes ep into rsa and returns the native length.
func toRaw(ep api.Endpoint, rsa *windows.RawSockaddrAny) (int32, error) {
	*rsa = windows.RawSockaddrAny{}
	switch ep.Family() {
	case api.FamilyIPv4:
		p, _ := ep.IPv4()
		sa := (*windows.RawSockaddrInet4)(unsafe.Pointer(rsa))
		sa.Family = windows.AF_INET
		putPort(&sa.Port, ep.Port())
		sa.Addr = p.Addr
		return api.SockaddrInet4Size, nil
	case api.FamilyIPv6:
		p, _ := ep.IPv6()
		sa := (*windows.RawSockaddrInet6)(unsafe.Pointer(rsa))
		sa.Family = windows.AF_INET6
		putPort(&sa.Port, ep.Port())
		sa.Flowinfo = p.FlowInfo
		sa.Addr = p.Addr
		sa.Scope_id = p.ScopeID
		return api.SockaddrInet6Size, nil
	}
	return 0, api.ResultNotValidAddressFamily
}

// fromRaw decodes rsa after checking that namelen fits the declared family.
func fromRaw(rsa *windows.RawSockaddrAny, namelen int32, declared api.Family) (api.Endpoint, error) {
	if err := api.CheckCapacity(declared, int(namelen)); err != nil {
		return api.Endpoint{}, err
	}
	switch rsa.Addr.Family {
	case windows.AF_INET:
		sa := (*windows.RawSockaddrInet4)(unsafe.Pointer(rsa))
		return api.NewIPv4Endpoint(sa.Addr, getPort(&sa.Port)), nil
	case windows.AF_INET6:
		sa := (*windows.RawSockaddrInet6)(unsafe.Pointer(rsa))
		return api.NewIPv6Endpoint(sa.Addr, getPort(&sa.Port), sa.Flowinfo, sa.Scope_id), nil
	}
	return api.Endpoint{}, api.ResultNotValidAddressFamily
}

func fromSockaddr(sa windows.Sockaddr, declared api.Family) (api.Endpoint, error) {
	switch sa := sa.(type) {
	case *windows.SockaddrInet4:
		if err := api.CheckCapacity(declared, api.SockaddrInet4Size); err != nil {
			return api.Endpoint{}, err
		}
		return api.NewIPv4Endpoint(sa.Addr, uint16(sa.Port)), nil
	case *windows.SockaddrInet6:
		if err := api.CheckCapacity(declared, api.SockaddrInet6Size); err != nil {
			return api.Endpoint{}, err
		}
		return api.NewIPv6Endpoint(sa.Addr, uint16(sa.Port), 0, sa.ZoneId), nil
	}
	return api.Endpoint{}, api.ResultNotValidAddressFamily
}
