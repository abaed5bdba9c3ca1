//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

// File: internal/platform/sockaddr_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Conversion between api.Endpoint and the typed x/sys/unix sockaddrs.

package platform

import (
	"github.com/momentics/hioload-net/api"
	"golang.org/x/sys/unix"
)

func domainOf(family api.Family) (int, error) {
	switch family {
	case api.FamilyIPv4:
		return unix.AF_INET, nil
	case api.FamilyIPv6:
		return unix.AF_INET6, nil
	}
	return 0, api.ResultNotValidAddressFamily
}

func typeOf(proto api.Protocol) (typ, ipproto int, err error) {
	switch proto {
	case api.ProtocolTCP:
		return unix.SOCK_STREAM, unix.IPPROTO_TCP, nil
	case api.ProtocolUDP:
		return unix.SOCK_DGRAM, unix.IPPROTO_UDP, nil
	}
	return 0, 0, api.ResultInvalidProtocol
}

func toSockaddr(ep api.Endpoint) (unix.Sockaddr, error) {
	switch ep.Family() {
	case api.FamilyIPv4:
		p, _ := ep.IPv4()
		return &unix.SockaddrInet4{Port: int(ep.Port()), Addr: p.Addr}, nil
	case api.FamilyIPv6:
		p, _ := ep.IPv6()
		return &unix.SockaddrInet6{Port: int(ep.Port()), ZoneId: p.ScopeID, Addr: p.Addr}, nil
	}
	return nil, api.ResultNotValidAddressFamily
}

// fromSockaddr decodes sa into an Endpoint, refusing addresses whose native
// size exceeds the family the caller declared.
func fromSockaddr(sa unix.Sockaddr, declared api.Family) (api.Endpoint, error) {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		if err := api.CheckCapacity(declared, api.SockaddrInet4Size); err != nil {
			return api.Endpoint{}, err
		}
		return api.NewIPv4Endpoint(sa.Addr, uint16(sa.Port)), nil
	case *unix.SockaddrInet6:
		if err := api.CheckCapacity(declared, api.SockaddrInet6Size); err != nil {
			return api.Endpoint{}, err
		}
		return api.NewIPv6Endpoint(sa.Addr, uint16(sa.Port), 0, sa.ZoneId), nil
	case nil:
		return api.Endpoint{}, api.ResultInvalidAddress
	}
	return api.Endpoint{}, api.ResultNotValidAddressFamily
}

func familyOf(sa unix.Sockaddr) (api.Family, error) {
	switch sa.(type) {
	case *unix.SockaddrInet4:
		return api.FamilyIPv4, nil
	case *unix.SockaddrInet6:
		return api.FamilyIPv6, nil
	}
	return api.FamilyUnspecified, api.ResultNotValidAddressFamily
}
