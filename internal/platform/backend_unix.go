//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

// File: internal/platform/backend_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// BSD-sockets backend on top of golang.org/x/sys/unix. Sockets are created
// close-on-exec and, on darwin, with SIGPIPE suppressed.

package platform

import (
	"syscall"
	"time"

	"github.com/momentics/hioload-net/api"
	"golang.org/x/sys/unix"
)

type unixBackend struct{}

// Native returns the backend of the running platform.
func Native() api.Backend {
	return unixBackend{}
}

func fdOf(h api.Handle) int {
	return int(h)
}

// ignoringEINTR restarts fn while it is interrupted by a signal. The Go
// runtime delivers preemption signals to every thread, so EINTR here carries
// no meaning for the caller.
func ignoringEINTR(fn func() error) error {
	for {
		err := fn()
		if err != unix.EINTR {
			return err
		}
	}
}

func (unixBackend) Startup() error  { return nil }
func (unixBackend) Shutdown() error { return nil }

func (unixBackend) Socket(proto api.Protocol, family api.Family) (api.Handle, error) {
	domain, err := domainOf(family)
	if err != nil {
		return api.InvalidHandle, err
	}
	typ, ipproto, err := typeOf(proto)
	if err != nil {
		return api.InvalidHandle, err
	}
	syscall.ForkLock.RLock()
	fd, err := unix.Socket(domain, typ, ipproto)
	if err == nil {
		unix.CloseOnExec(fd)
	}
	syscall.ForkLock.RUnlock()
	if err != nil {
		return api.InvalidHandle, result(err)
	}
	if err := prepareSocket(fd); err != nil {
		unix.Close(fd)
		return api.InvalidHandle, result(err)
	}
	return api.Handle(fd), nil
}

func (unixBackend) Close(h api.Handle) error {
	return result(unix.Close(fdOf(h)))
}

func (unixBackend) Connect(h api.Handle, remote api.Endpoint) error {
	sa, err := toSockaddr(remote)
	if err != nil {
		return err
	}
	err = unix.Connect(fdOf(h), sa)
	if err == unix.EAGAIN {
		// Linux reports an exhausted ephemeral port range this way.
		return api.ResultNoFreePort
	}
	return result(err)
}

func (unixBackend) Bind(h api.Handle, local api.Endpoint) error {
	sa, err := toSockaddr(local)
	if err != nil {
		return err
	}
	return result(unix.Bind(fdOf(h), sa))
}

func (unixBackend) Listen(h api.Handle, backlog int) error {
	return result(unix.Listen(fdOf(h), backlog))
}

func (unixBackend) Accept(h api.Handle, declared api.Family) (api.Handle, api.Endpoint, error) {
	var (
		nfd int
		sa  unix.Sockaddr
	)
	syscall.ForkLock.RLock()
	err := ignoringEINTR(func() (err error) {
		nfd, sa, err = unix.Accept(fdOf(h))
		return err
	})
	if err == nil {
		unix.CloseOnExec(nfd)
	}
	syscall.ForkLock.RUnlock()
	if err != nil {
		return api.InvalidHandle, api.Endpoint{}, result(err)
	}
	ep, err := fromSockaddr(sa, declared)
	if err == nil {
		err = result(prepareSocket(nfd))
	}
	if err != nil {
		unix.Close(nfd)
		return api.InvalidHandle, api.Endpoint{}, err
	}
	return api.Handle(nfd), ep, nil
}

func (unixBackend) Recv(h api.Handle, buf []byte) (int, error) {
	var n int
	err := ignoringEINTR(func() (err error) {
		n, _, err = unix.Recvfrom(fdOf(h), buf, 0)
		return err
	})
	if err != nil {
		return 0, result(err)
	}
	return n, nil
}

func (unixBackend) RecvFrom(h api.Handle, buf []byte, declared api.Family) (int, api.Endpoint, error) {
	var (
		n    int
		from unix.Sockaddr
	)
	err := ignoringEINTR(func() (err error) {
		n, from, err = unix.Recvfrom(fdOf(h), buf, 0)
		return err
	})
	if err != nil {
		return 0, api.Endpoint{}, result(err)
	}
	if from == nil {
		// stream sockets report no source; the peer is the sender
		if from, err = unix.Getpeername(fdOf(h)); err != nil {
			return 0, api.Endpoint{}, result(err)
		}
	}
	ep, err := fromSockaddr(from, declared)
	if err != nil {
		return 0, api.Endpoint{}, err
	}
	return n, ep, nil
}

func (unixBackend) Send(h api.Handle, buf []byte) (int, error) {
	var n int
	err := ignoringEINTR(func() (err error) {
		n, err = unix.SendmsgN(fdOf(h), buf, nil, nil, sendFlags)
		return err
	})
	if err != nil {
		return 0, result(err)
	}
	return n, nil
}

func (unixBackend) SendTo(h api.Handle, buf []byte, remote api.Endpoint) (int, error) {
	sa, err := toSockaddr(remote)
	if err != nil {
		return 0, err
	}
	var n int
	err = ignoringEINTR(func() (err error) {
		n, err = unix.SendmsgN(fdOf(h), buf, nil, sa, sendFlags)
		return err
	})
	if err != nil {
		return 0, result(err)
	}
	return n, nil
}

func (unixBackend) LocalAddress(h api.Handle, declared api.Family) (api.Endpoint, error) {
	sa, err := unix.Getsockname(fdOf(h))
	if err != nil {
		return api.Endpoint{}, result(err)
	}
	return fromSockaddr(sa, declared)
}

func (unixBackend) PeerAddress(h api.Handle, declared api.Family) (api.Endpoint, error) {
	sa, err := unix.Getpeername(fdOf(h))
	if err != nil {
		return api.Endpoint{}, result(err)
	}
	return fromSockaddr(sa, declared)
}

func (unixBackend) SocketProtocol(h api.Handle) (api.Protocol, error) {
	typ, err := unix.GetsockoptInt(fdOf(h), unix.SOL_SOCKET, unix.SO_TYPE)
	if err != nil {
		return api.ProtocolUnspecified, result(err)
	}
	switch typ {
	case unix.SOCK_STREAM:
		return api.ProtocolTCP, nil
	case unix.SOCK_DGRAM:
		return api.ProtocolUDP, nil
	}
	return api.ProtocolUnspecified, api.ResultInvalidProtocol
}

func (unixBackend) SocketFamily(h api.Handle) (api.Family, error) {
	sa, err := unix.Getsockname(fdOf(h))
	if err != nil {
		return api.FamilyUnspecified, result(err)
	}
	return familyOf(sa)
}

func (unixBackend) BytesAvailable(h api.Handle) (int, error) {
	n, err := unix.IoctlGetInt(fdOf(h), ioctlReadable)
	if err != nil {
		return 0, result(err)
	}
	return n, nil
}

func (unixBackend) SetNonblocking(h api.Handle, nonblocking bool) error {
	return result(unix.SetNonblock(fdOf(h), nonblocking))
}

func (b unixBackend) SetOption(h api.Handle, opt api.Option, value int) error {
	fd := fdOf(h)
	var err error
	switch opt {
	case api.OptReuseAddr:
		err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, value)
	case api.OptReusePort:
		err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, value)
	case api.OptKeepAlive:
		err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_KEEPALIVE, value)
	case api.OptBroadcast:
		err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_BROADCAST, value)
	case api.OptRecvTimeout:
		tv := unix.NsecToTimeval(int64(value) * int64(time.Millisecond))
		err = unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv)
	case api.OptSendTimeout:
		tv := unix.NsecToTimeval(int64(value) * int64(time.Millisecond))
		err = unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_SNDTIMEO, &tv)
	case api.OptTCPNoDelay:
		err = unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_NODELAY, value)
	case api.OptTCPSynCount:
		return setTCPSynCount(fd, value)
	case api.OptTCPUserTimeout:
		return setTCPUserTimeout(fd, value)
	case api.OptTTL:
		family, ferr := b.SocketFamily(h)
		if ferr != nil {
			return ferr
		}
		if family == api.FamilyIPv6 {
			err = unix.SetsockoptInt(fd, unix.IPPROTO_IPV6, unix.IPV6_UNICAST_HOPS, value)
		} else {
			err = unix.SetsockoptInt(fd, unix.IPPROTO_IP, unix.IP_TTL, value)
		}
	case api.OptHeaderIncluded:
		err = unix.SetsockoptInt(fd, unix.IPPROTO_IP, unix.IP_HDRINCL, value)
	default:
		return api.ResultInvalidInputParam
	}
	return result(err)
}
