// Package fake
// Author: momentics <momentics@gmail.com>
//
// In-memory api.Backend for tests. Sockets are plain structs, failures are
// injected per operation, and every call is recorded so tests can assert
// that validation happened before the backend was reached.

package fake

import (
	"sync"

	"github.com/momentics/hioload-net/api"
)

// Datagram is one queued inbound message.
type Datagram struct {
	Data []byte
	From api.Endpoint
}

// Socket is the state of one fake socket.
type Socket struct {
	Proto       api.Protocol
	Family      api.Family
	Local       api.Endpoint
	Peer        api.Endpoint
	Listening   bool
	Nonblocking bool
	Inbox       []Datagram
	Sent        []Datagram
	Pending     []api.Endpoint
	Options     map[api.Option]int
	Ready       api.Event
}

// Backend is a fake implementation of api.Backend for testing.
type Backend struct {
	mu       sync.Mutex
	next     api.Handle
	nextPort uint16
	sockets  map[api.Handle]*Socket
	errs     map[string]error
	calls    []string
}

// NewBackend creates an empty fake backend.
func NewBackend() *Backend {
	return &Backend{
		next:     3,
		nextPort: 40000,
		sockets:  make(map[api.Handle]*Socket),
		errs:     make(map[string]error),
	}
}

// FailOn makes every later call of op return err. A nil err clears it.
// Op names are the lower-case backend method names ("connect", "recv", ...).
func (b *Backend) FailOn(op string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.errs, op)
		return
	}
	b.errs[op] = err
}

// Calls returns the operations invoked so far, in order.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// Lookup returns the socket behind h.
func (b *Backend) Lookup(h api.Handle) (*Socket, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sockets[h]
	return s, ok
}

// Deliver queues data from src on h and marks it readable.
func (b *Backend) Deliver(h api.Handle, data []byte, src api.Endpoint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sockets[h]; ok {
		s.Inbox = append(s.Inbox, Datagram{Data: append([]byte(nil), data...), From: src})
		s.Ready |= api.EventRead
	}
}

// Incoming queues a pending connection from peer on a listening handle.
func (b *Backend) Incoming(h api.Handle, peer api.Endpoint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sockets[h]; ok {
		s.Pending = append(s.Pending, peer)
		s.Ready |= api.EventRead
	}
}

// SetReady overrides the events Poll reports for h.
func (b *Backend) SetReady(h api.Handle, ev api.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.sockets[h]; ok {
		s.Ready = ev
	}
}

// enter records op and returns the socket and any injected failure.
func (b *Backend) enter(op string, h api.Handle) (*Socket, error) {
	b.calls = append(b.calls, op)
	if err := b.errs[op]; err != nil {
		return nil, err
	}
	s, ok := b.sockets[h]
	if !ok {
		return nil, api.ResultInvalidFileDescriptor
	}
	return s, nil
}

func (b *Backend) Startup() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "startup")
	return b.errs["startup"]
}

func (b *Backend) Shutdown() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "shutdown")
	return b.errs["shutdown"]
}

func (b *Backend) Socket(proto api.Protocol, family api.Family) (api.Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "socket")
	if err := b.errs["socket"]; err != nil {
		return api.InvalidHandle, err
	}
	return b.open(proto, family), nil
}

func (b *Backend) open(proto api.Protocol, family api.Family) api.Handle {
	h := b.next
	b.next++
	local, _ := api.WildcardEndpoint(family, 0)
	b.sockets[h] = &Socket{
		Proto:   proto,
		Family:  family,
		Local:   local,
		Options: make(map[api.Option]int),
		Ready:   api.EventWrite,
	}
	return h
}

func (b *Backend) Close(h api.Handle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "close")
	delete(b.sockets, h)
	return b.errs["close"]
}

func (b *Backend) Connect(h api.Handle, remote api.Endpoint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("connect", h)
	if err != nil {
		return err
	}
	if remote.Family() != s.Family {
		return api.ResultNotValidAddressFamily
	}
	s.Peer = remote
	return nil
}

func (b *Backend) Bind(h api.Handle, local api.Endpoint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("bind", h)
	if err != nil {
		return err
	}
	if local.Family() != s.Family {
		return api.ResultNotValidAddressFamily
	}
	if local.Port() == api.UnusedPort {
		local = local.WithPort(b.nextPort)
		b.nextPort++
	}
	s.Local = local
	return nil
}

func (b *Backend) Listen(h api.Handle, backlog int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("listen", h)
	if err != nil {
		return err
	}
	if s.Proto != api.ProtocolTCP {
		return api.ResultInvalidProtocol
	}
	s.Listening = true
	return nil
}

func (b *Backend) Accept(h api.Handle, declared api.Family) (api.Handle, api.Endpoint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("accept", h)
	if err != nil {
		return api.InvalidHandle, api.Endpoint{}, err
	}
	if !s.Listening {
		return api.InvalidHandle, api.Endpoint{}, api.ResultNotListeningOrNotConnected
	}
	if len(s.Pending) == 0 {
		return api.InvalidHandle, api.Endpoint{}, api.ResultWouldBlock
	}
	peer := s.Pending[0]
	s.Pending = s.Pending[1:]
	if len(s.Pending) == 0 {
		s.Ready &^= api.EventRead
	}
	nh := b.open(api.ProtocolTCP, s.Family)
	if err := api.CheckCapacity(declared, peer.SockaddrSize()); err != nil {
		b.calls = append(b.calls, "close")
		delete(b.sockets, nh)
		return api.InvalidHandle, api.Endpoint{}, err
	}
	b.sockets[nh].Local = s.Local
	b.sockets[nh].Peer = peer
	return nh, peer, nil
}

func (b *Backend) pop(s *Socket, buf []byte) (int, api.Endpoint, error) {
	if len(s.Inbox) == 0 {
		return 0, api.Endpoint{}, api.ResultWouldBlock
	}
	d := s.Inbox[0]
	n := copy(buf, d.Data)
	if s.Proto == api.ProtocolTCP && n < len(d.Data) {
		s.Inbox[0].Data = d.Data[n:]
	} else {
		s.Inbox = s.Inbox[1:]
	}
	if len(s.Inbox) == 0 {
		s.Ready &^= api.EventRead
	}
	return n, d.From, nil
}

func (b *Backend) Recv(h api.Handle, buf []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("recv", h)
	if err != nil {
		return 0, err
	}
	n, _, err := b.pop(s, buf)
	return n, err
}

func (b *Backend) RecvFrom(h api.Handle, buf []byte, declared api.Family) (int, api.Endpoint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("recvfrom", h)
	if err != nil {
		return 0, api.Endpoint{}, err
	}
	n, from, err := b.pop(s, buf)
	if err != nil {
		return 0, api.Endpoint{}, err
	}
	if err := api.CheckCapacity(declared, from.SockaddrSize()); err != nil {
		return 0, api.Endpoint{}, err
	}
	return n, from, nil
}

func (b *Backend) Send(h api.Handle, buf []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("send", h)
	if err != nil {
		return 0, err
	}
	s.Sent = append(s.Sent, Datagram{Data: append([]byte(nil), buf...), From: s.Peer})
	return len(buf), nil
}

func (b *Backend) SendTo(h api.Handle, buf []byte, remote api.Endpoint) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("sendto", h)
	if err != nil {
		return 0, err
	}
	s.Sent = append(s.Sent, Datagram{Data: append([]byte(nil), buf...), From: remote})
	return len(buf), nil
}

func (b *Backend) LocalAddress(h api.Handle, declared api.Family) (api.Endpoint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("getsockname", h)
	if err != nil {
		return api.Endpoint{}, err
	}
	if err := api.CheckCapacity(declared, s.Local.SockaddrSize()); err != nil {
		return api.Endpoint{}, err
	}
	return s.Local, nil
}

func (b *Backend) PeerAddress(h api.Handle, declared api.Family) (api.Endpoint, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("getpeername", h)
	if err != nil {
		return api.Endpoint{}, err
	}
	if !s.Peer.IsValid() {
		return api.Endpoint{}, api.ResultNotListeningOrNotConnected
	}
	if err := api.CheckCapacity(declared, s.Peer.SockaddrSize()); err != nil {
		return api.Endpoint{}, err
	}
	return s.Peer, nil
}

func (b *Backend) SocketProtocol(h api.Handle) (api.Protocol, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("sockettype", h)
	if err != nil {
		return api.ProtocolUnspecified, err
	}
	return s.Proto, nil
}

func (b *Backend) SocketFamily(h api.Handle) (api.Family, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("socketfamily", h)
	if err != nil {
		return api.FamilyUnspecified, err
	}
	return s.Family, nil
}

func (b *Backend) BytesAvailable(h api.Handle) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("bytesavailable", h)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range s.Inbox {
		n += len(d.Data)
	}
	return n, nil
}

func (b *Backend) SetNonblocking(h api.Handle, nonblocking bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("setnonblocking", h)
	if err != nil {
		return err
	}
	s.Nonblocking = nonblocking
	return nil
}

func (b *Backend) SetOption(h api.Handle, opt api.Option, value int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, err := b.enter("setoption", h)
	if err != nil {
		return err
	}
	s.Options[opt] = value
	return nil
}

// Poll reports each socket's Ready mask filtered by the request. Unknown
// handles report api.EventInvalid.
func (b *Backend) Poll(checks []api.Check, timeoutMs int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "poll")
	if err := b.errs["poll"]; err != nil {
		return 0, err
	}
	n := 0
	for i := range checks {
		s, ok := b.sockets[checks[i].Handle]
		if !ok {
			checks[i].Returned = api.EventInvalid
		} else {
			always := api.EventError | api.EventClosed | api.EventInvalid
			checks[i].Returned = s.Ready & (checks[i].Requested | always)
		}
		if checks[i].Returned != 0 {
			n++
		}
	}
	return n, nil
}
