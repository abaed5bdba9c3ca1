// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"sync"
	"sync/atomic"
)

// BytePool hands out fixed-size receive buffers and takes them back for
// reuse. It is safe for concurrent use.
type BytePool struct {
	pool   sync.Pool
	size   int
	gets   atomic.Uint64
	allocs atomic.Uint64
}

// NewBytePool returns a pool of size-byte buffers. size must be positive.
func NewBytePool(size int) *BytePool {
	if size <= 0 {
		panic("pool: buffer size must be positive")
	}
	b := &BytePool{size: size}
	b.pool.New = func() any {
		b.allocs.Add(1)
		buf := make([]byte, size)
		return &buf
	}
	return b
}

// Size returns the length of every buffer the pool hands out.
func (b *BytePool) Size() int {
	return b.size
}

// GetBuffer returns a buffer of length Size. Its contents are undefined.
func (b *BytePool) GetBuffer() []byte {
	b.gets.Add(1)
	return (*b.pool.Get().(*[]byte))[:b.size]
}

// PutBuffer returns buf to the pool. Buffers with a smaller capacity than
// Size are dropped.
func (b *BytePool) PutBuffer(buf []byte) {
	if cap(buf) < b.size {
		return
	}
	buf = buf[:b.size]
	b.pool.Put(&buf)
}

// Stats reports how many buffers were requested and how many of those needed
// a fresh allocation.
func (b *BytePool) Stats() (gets, allocs uint64) {
	return b.gets.Load(), b.allocs.Load()
}
