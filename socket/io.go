// File: socket/io.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package socket

import "github.com/momentics/hioload-net/api"

// Read receives into buf. A stream socket that returns no bytes for a
// non-empty buf has been closed by the peer and reports
// ResultConnectionClosed; on a datagram socket it is an empty message and
// returns (0, nil). An empty buf returns (0, nil) without touching the socket.
func Read(h api.Handle, buf []byte) (int, error) {
	const op = "read"
	if !h.Valid() {
		return 0, done(op, api.ResultNotASocket)
	}
	if len(buf) == 0 {
		return 0, nil
	}
	n, err := backend.Recv(h, buf)
	if err != nil {
		return 0, done(op, err)
	}
	if n == 0 {
		if err := streamClosed(h); err != nil {
			return 0, done(op, err)
		}
	}
	return n, done(op, nil)
}

// streamClosed returns ResultConnectionClosed for stream sockets.
func streamClosed(h api.Handle) error {
	proto, err := backend.SocketProtocol(h)
	if err != nil {
		return err
	}
	if proto == api.ProtocolTCP {
		return api.ResultConnectionClosed
	}
	return nil
}

// ReadFrom receives one datagram into buf and returns its sender. family
// declares the sender capacity the caller accepts; a sender of a larger
// family fails with ResultBufferTooSmall. The zero-byte rule of Read applies.
func ReadFrom(h api.Handle, buf []byte, family api.Family) (int, api.Endpoint, error) {
	const op = "read_from"
	if !h.Valid() {
		return 0, api.Endpoint{}, done(op, api.ResultNotASocket)
	}
	if !family.Valid() {
		return 0, api.Endpoint{}, done(op, api.ResultNotValidAddressFamily)
	}
	n, from, err := backend.RecvFrom(h, buf, family)
	if err != nil {
		return 0, api.Endpoint{}, done(op, err)
	}
	if n == 0 && len(buf) > 0 {
		if err := streamClosed(h); err != nil {
			return 0, api.Endpoint{}, done(op, err)
		}
	}
	return n, from, done(op, nil)
}

// Write sends buf on a connected socket. On a stream socket fewer bytes than
// len(buf) may be written; see WriteAll.
func Write(h api.Handle, buf []byte) (int, error) {
	const op = "write"
	if !h.Valid() {
		return 0, done(op, api.ResultNotASocket)
	}
	if len(buf) == 0 {
		return 0, nil
	}
	n, err := backend.Send(h, buf)
	if err != nil {
		return 0, done(op, err)
	}
	return n, done(op, nil)
}

// WriteAll writes until buf is sent or an error occurs, returning the bytes
// written so far. On a non-blocking handle ResultWouldBlock can be returned
// with part of buf sent.
func WriteAll(h api.Handle, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := Write(h, buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, done("write", api.ResultFail)
		}
	}
	return total, nil
}

// WriteTo sends buf to remote. remote must have the socket's family, else
// ResultNotValidAddressFamily is returned and nothing is sent.
func WriteTo(h api.Handle, buf []byte, remote api.Endpoint) (int, error) {
	const op = "write_to"
	if !h.Valid() {
		return 0, done(op, api.ResultNotASocket)
	}
	if !remote.IsValid() {
		return 0, done(op, api.ResultNotValidAddressFamily)
	}
	family, err := backend.SocketFamily(h)
	if err != nil {
		return 0, done(op, err)
	}
	if family != remote.Family() {
		return 0, done(op, api.ResultNotValidAddressFamily)
	}
	n, err := backend.SendTo(h, buf, remote)
	if err != nil {
		return 0, done(op, err)
	}
	return n, done(op, nil)
}
