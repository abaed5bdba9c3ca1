// File: socket/address.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Endpoint construction from host/service text and endpoint queries on open
// sockets. Name resolution is left to the Go resolver.

package socket

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"strconv"

	"github.com/momentics/hioload-net/api"
	"github.com/momentics/hioload-net/internal/platform"
)

var resolver = net.DefaultResolver

// CreateAddress resolves host and service into an endpoint of family.
// host api.AnyAddress selects the wildcard address and service api.AnyPort
// lets the OS pick the port. Leaving both empty fails with ResultNoName.
func CreateAddress(host, service string, family api.Family, proto api.Protocol) (api.Endpoint, error) {
	return CreateAddressContext(context.Background(), host, service, family, proto)
}

// CreateAddressContext is CreateAddress bounded by ctx.
func CreateAddressContext(ctx context.Context, host, service string, family api.Family, proto api.Protocol) (api.Endpoint, error) {
	const op = "create_address"
	if !family.Valid() {
		return api.Endpoint{}, done(op, api.ResultNotValidAddressFamily)
	}
	if !proto.Valid() {
		return api.Endpoint{}, done(op, api.ResultInvalidProtocol)
	}
	if host == api.AnyAddress && service == "" {
		return api.Endpoint{}, done(op, api.ResultNoName)
	}
	port, err := lookupPort(ctx, service, proto)
	if err != nil {
		return api.Endpoint{}, done(op, err)
	}
	if host == api.AnyAddress {
		ep, err := api.WildcardEndpoint(family, port)
		return ep, done(op, err)
	}
	addr, err := lookupHost(ctx, host, family)
	if err != nil {
		return api.Endpoint{}, done(op, err)
	}
	ep, err := api.EndpointFromAddrPort(netip.AddrPortFrom(addr, port))
	return ep, done(op, err)
}

func lookupPort(ctx context.Context, service string, proto api.Protocol) (uint16, error) {
	if service == "" {
		return api.UnusedPort, nil
	}
	n, err := strconv.ParseUint(service, 10, 16)
	if err == nil {
		return uint16(n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, api.ResultInvalidInputParam
	}
	p, err := resolver.LookupPort(ctx, proto.String(), service)
	if err != nil {
		return 0, platform.TranslateResolver(err)
	}
	return uint16(p), nil
}

func lookupHost(ctx context.Context, host string, family api.Family) (netip.Addr, error) {
	if a, err := netip.ParseAddr(host); err == nil {
		return pickFamily([]netip.Addr{a}, family)
	}
	addrs, err := resolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return netip.Addr{}, platform.TranslateResolver(err)
	}
	return pickFamily(addrs, family)
}

// pickFamily returns the first address usable as family. IPv4-mapped IPv6
// addresses count as IPv4.
func pickFamily(addrs []netip.Addr, family api.Family) (netip.Addr, error) {
	for _, a := range addrs {
		switch {
		case family == api.FamilyIPv4 && (a.Is4() || a.Is4In6()):
			return a.Unmap(), nil
		case family == api.FamilyIPv6 && a.Is6():
			return a, nil
		}
	}
	return netip.Addr{}, api.ResultAddressFamilyUnsupported
}

// AddressFromSocket returns the local endpoint of h. family declares the
// capacity the caller accepts, as for Accept.
func AddressFromSocket(h api.Handle, family api.Family) (api.Endpoint, error) {
	return query("address_from_socket", h, family, backend.LocalAddress)
}

// PeerAddressFromSocket returns the remote endpoint of a connected h.
func PeerAddressFromSocket(h api.Handle, family api.Family) (api.Endpoint, error) {
	return query("peer_address_from_socket", h, family, backend.PeerAddress)
}

func query(op string, h api.Handle, family api.Family, fn func(api.Handle, api.Family) (api.Endpoint, error)) (api.Endpoint, error) {
	if !h.Valid() {
		return api.Endpoint{}, done(op, api.ResultNotASocket)
	}
	if !family.Valid() {
		return api.Endpoint{}, done(op, api.ResultNotValidAddressFamily)
	}
	ep, err := fn(h, family)
	if err != nil {
		return api.Endpoint{}, done(op, err)
	}
	return ep, done(op, nil)
}

// IPFromSocket writes the local address text of h into buf. See
// api.Endpoint.FormatIP for the buffer sizes.
func IPFromSocket(h api.Handle, family api.Family, buf []byte) (int, error) {
	ep, err := AddressFromSocket(h, family)
	if err != nil {
		return 0, err
	}
	n, err := ep.FormatIP(buf)
	if err != nil {
		return 0, done("ip_from_socket", err)
	}
	return n, nil
}

// PortFromSocket returns the local port of h.
func PortFromSocket(h api.Handle, family api.Family) (uint16, error) {
	ep, err := AddressFromSocket(h, family)
	if err != nil {
		return 0, err
	}
	return ep.Port(), nil
}
