//go:build windows

// File: internal/platform/backend_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Winsock backend. Calls x/sys/windows does not wrap with a byte count or
// address length go through lazily loaded ws2_32 procedures.

package platform

import (
	"unsafe"

	"github.com/momentics/hioload-net/api"
	"golang.org/x/sys/windows"
)

var (
	ws2          = windows.NewLazySystemDLL("ws2_32.dll")
	procAccept   = ws2.NewProc("accept")
	procRecv     = ws2.NewProc("recv")
	procRecvfrom = ws2.NewProc("recvfrom")
	procSend     = ws2.NewProc("send")
	procSendto   = ws2.NewProc("sendto")
	procIoctl    = ws2.NewProc("ioctlsocket")
	procWSAPoll  = ws2.NewProc("WSAPoll")
)

// Winsock values missing from x/sys/windows.
const (
	fionbio             = 0x8004667e
	fionread            = 0x4004667f
	soSndTimeo          = 0x1005
	soRcvTimeo          = 0x1006
	soProtocolInfo      = 0x2005
	ipHdrIncl           = 2
	ipTTL               = 4
	ipv6UnicastHops     = 4
	winsockVersion2dot2 = 0x202
)

type windowsBackend struct{}

// Native returns the backend of the running platform.
func Native() api.Backend {
	return windowsBackend{}
}

func sockOf(h api.Handle) windows.Handle {
	return windows.Handle(h)
}

// wsaError translates the last error of a failed proc call. A failure that
// left no error code is still a failure.
func wsaError(e error) error {
	if r := Translate(e); r != api.ResultSuccess {
		return r
	}
	return api.ResultUnknown
}

func bufPtr(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&buf[0]))
}

func (windowsBackend) Startup() error {
	var data windows.WSAData
	return result(windows.WSAStartup(winsockVersion2dot2, &data))
}

func (windowsBackend) Shutdown() error {
	return result(windows.WSACleanup())
}

func (windowsBackend) Socket(proto api.Protocol, family api.Family) (api.Handle, error) {
	domain, err := domainOf(family)
	if err != nil {
		return api.InvalidHandle, err
	}
	typ, ipproto, err := typeOf(proto)
	if err != nil {
		return api.InvalidHandle, err
	}
	s, err := windows.Socket(domain, typ, ipproto)
	if err != nil {
		return api.InvalidHandle, result(err)
	}
	return api.Handle(s), nil
}

func (windowsBackend) Close(h api.Handle) error {
	return result(windows.Closesocket(sockOf(h)))
}

func (windowsBackend) Connect(h api.Handle, remote api.Endpoint) error {
	sa, err := toSockaddr(remote)
	if err != nil {
		return err
	}
	r := Translate(windows.Connect(sockOf(h), sa))
	if r == api.ResultWouldBlock {
		// Winsock reports a pending non-blocking connect as WSAEWOULDBLOCK.
		return api.ResultInProgress
	}
	return r.Err()
}

func (windowsBackend) Bind(h api.Handle, local api.Endpoint) error {
	sa, err := toSockaddr(local)
	if err != nil {
		return err
	}
	return result(windows.Bind(sockOf(h), sa))
}

func (windowsBackend) Listen(h api.Handle, backlog int) error {
	return result(windows.Listen(sockOf(h), backlog))
}

func (windowsBackend) Accept(h api.Handle, declared api.Family) (api.Handle, api.Endpoint, error) {
	var rsa windows.RawSockaddrAny
	namelen := int32(unsafe.Sizeof(rsa))
	r, _, e := procAccept.Call(uintptr(h), uintptr(unsafe.Pointer(&rsa)), uintptr(unsafe.Pointer(&namelen)))
	if r == uintptr(windows.InvalidHandle) {
		return api.InvalidHandle, api.Endpoint{}, wsaError(e)
	}
	ep, err := fromRaw(&rsa, namelen, declared)
	if err != nil {
		windows.Closesocket(windows.Handle(r))
		return api.InvalidHandle, api.Endpoint{}, err
	}
	return api.Handle(r), ep, nil
}

func (windowsBackend) Recv(h api.Handle, buf []byte) (int, error) {
	r, _, e := procRecv.Call(uintptr(h), bufPtr(buf), uintptr(len(buf)), 0)
	if int32(r) < 0 {
		return 0, wsaError(e)
	}
	return int(int32(r)), nil
}

func (windowsBackend) RecvFrom(h api.Handle, buf []byte, declared api.Family) (int, api.Endpoint, error) {
	var rsa windows.RawSockaddrAny
	namelen := int32(unsafe.Sizeof(rsa))
	r, _, e := procRecvfrom.Call(uintptr(h), bufPtr(buf), uintptr(len(buf)), 0,
		uintptr(unsafe.Pointer(&rsa)), uintptr(unsafe.Pointer(&namelen)))
	if int32(r) < 0 {
		return 0, api.Endpoint{}, wsaError(e)
	}
	var (
		ep  api.Endpoint
		err error
	)
	if rsa.Addr.Family == 0 {
		// connection-oriented sockets leave the source untouched
		ep, err = windowsBackend{}.PeerAddress(h, declared)
	} else {
		ep, err = fromRaw(&rsa, namelen, declared)
	}
	if err != nil {
		return 0, api.Endpoint{}, err
	}
	return int(int32(r)), ep, nil
}

func (windowsBackend) Send(h api.Handle, buf []byte) (int, error) {
	r, _, e := procSend.Call(uintptr(h), bufPtr(buf), uintptr(len(buf)), 0)
	if int32(r) < 0 {
		return 0, wsaError(e)
	}
	return int(int32(r)), nil
}

func (windowsBackend) SendTo(h api.Handle, buf []byte, remote api.Endpoint) (int, error) {
	var rsa windows.RawSockaddrAny
	namelen, err := toRaw(remote, &rsa)
	if err != nil {
		return 0, err
	}
	r, _, e := procSendto.Call(uintptr(h), bufPtr(buf), uintptr(len(buf)), 0,
		uintptr(unsafe.Pointer(&rsa)), uintptr(namelen))
	if int32(r) < 0 {
		return 0, wsaError(e)
	}
	return int(int32(r)), nil
}

func (windowsBackend) LocalAddress(h api.Handle, declared api.Family) (api.Endpoint, error) {
	sa, err := windows.Getsockname(sockOf(h))
	if err != nil {
		return api.Endpoint{}, result(err)
	}
	return fromSockaddr(sa, declared)
}

func (windowsBackend) PeerAddress(h api.Handle, declared api.Family) (api.Endpoint, error) {
	sa, err := windows.Getpeername(sockOf(h))
	if err != nil {
		return api.Endpoint{}, result(err)
	}
	return fromSockaddr(sa, declared)
}

// protocolInfo works on unbound sockets, unlike getsockname on Winsock.
func protocolInfo(h api.Handle) (*windows.WSAProtocolInfo, error) {
	var info windows.WSAProtocolInfo
	n := int32(unsafe.Sizeof(info))
	err := windows.Getsockopt(sockOf(h), windows.SOL_SOCKET, soProtocolInfo, (*byte)(unsafe.Pointer(&info)), &n)
	if err != nil {
		return nil, result(err)
	}
	return &info, nil
}

func (windowsBackend) SocketProtocol(h api.Handle) (api.Protocol, error) {
	info, err := protocolInfo(h)
	if err != nil {
		return api.ProtocolUnspecified, err
	}
	switch info.SocketType {
	case windows.SOCK_STREAM:
		return api.ProtocolTCP, nil
	case windows.SOCK_DGRAM:
		return api.ProtocolUDP, nil
	}
	return api.ProtocolUnspecified, api.ResultInvalidProtocol
}

func (windowsBackend) SocketFamily(h api.Handle) (api.Family, error) {
	info, err := protocolInfo(h)
	if err != nil {
		return api.FamilyUnspecified, err
	}
	switch info.AddressFamily {
	case windows.AF_INET:
		return api.FamilyIPv4, nil
	case windows.AF_INET6:
		return api.FamilyIPv6, nil
	}
	return api.FamilyUnspecified, api.ResultNotValidAddressFamily
}

func ioctl(h api.Handle, cmd uint32, arg *uint32) error {
	r, _, e := procIoctl.Call(uintptr(h), uintptr(cmd), uintptr(unsafe.Pointer(arg)))
	if int32(r) != 0 {
		return wsaError(e)
	}
	return nil
}

func (windowsBackend) BytesAvailable(h api.Handle) (int, error) {
	var n uint32
	if err := ioctl(h, fionread, &n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (windowsBackend) SetNonblocking(h api.Handle, nonblocking bool) error {
	var mode uint32
	if nonblocking {
		mode = 1
	}
	return ioctl(h, fionbio, &mode)
}

func (b windowsBackend) SetOption(h api.Handle, opt api.Option, value int) error {
	s := sockOf(h)
	var err error
	switch opt {
	case api.OptReuseAddr:
		err = windows.SetsockoptInt(s, windows.SOL_SOCKET, windows.SO_REUSEADDR, value)
	case api.OptKeepAlive:
		err = windows.SetsockoptInt(s, windows.SOL_SOCKET, windows.SO_KEEPALIVE, value)
	case api.OptBroadcast:
		err = windows.SetsockoptInt(s, windows.SOL_SOCKET, windows.SO_BROADCAST, value)
	case api.OptRecvTimeout:
		err = windows.SetsockoptInt(s, windows.SOL_SOCKET, soRcvTimeo, value)
	case api.OptSendTimeout:
		err = windows.SetsockoptInt(s, windows.SOL_SOCKET, soSndTimeo, value)
	case api.OptTCPNoDelay:
		err = windows.SetsockoptInt(s, windows.IPPROTO_TCP, windows.TCP_NODELAY, value)
	case api.OptReusePort, api.OptTCPSynCount, api.OptTCPUserTimeout:
		return api.ResultPlatformNotSupported
	case api.OptTTL:
		family, ferr := b.SocketFamily(h)
		if ferr != nil {
			return ferr
		}
		if family == api.FamilyIPv6 {
			err = windows.SetsockoptInt(s, windows.IPPROTO_IPV6, ipv6UnicastHops, value)
		} else {
			err = windows.SetsockoptInt(s, windows.IPPROTO_IP, ipTTL, value)
		}
	case api.OptHeaderIncluded:
		err = windows.SetsockoptInt(s, windows.IPPROTO_IP, ipHdrIncl, value)
	default:
		return api.ResultInvalidInputParam
	}
	return result(err)
}
