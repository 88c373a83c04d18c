// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE-go file.
//
// Modified by Alex Efros to add Pool with a retained-capacity ceiling.

// Package buffer provides a pool-allocated byte buffer.
package buffer

import "sync"

// Default capacities used by New and Free.
const (
	DefaultSize    = 1 << 10
	DefaultMaxSize = 16 << 10
)

// Buffer is a byte buffer.
//
// This implementation is adapted from the unexported type buffer
// in go/src/fmt/print.go.
type Buffer []byte

var defaultPool = NewPool(DefaultSize, DefaultMaxSize)

// New returns an empty buffer from the default pool.
func New() *Buffer {
	return defaultPool.Get()
}

// Free returns b to the default pool.
func (b *Buffer) Free() {
	defaultPool.Put(b)
}

func (b *Buffer) Reset() {
	b.SetLen(0)
}

func (b *Buffer) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	*b = append(*b, s...)
	return len(s), nil
}

func (b *Buffer) WriteByte(c byte) error {
	*b = append(*b, c)
	return nil
}

func (b *Buffer) String() string {
	return string(*b)
}

func (b *Buffer) Len() int {
	return len(*b)
}

// SetLen sets the length of b to n.
// Growing past the capacity keeps the existing backing bytes
// and zero-fills the rest.
func (b *Buffer) SetLen(n int) {
	if n <= cap(*b) {
		*b = (*b)[:n]
		return
	}
	*b = append((*b)[:cap(*b)], make([]byte, n-cap(*b))...)
}

// Pool hands out buffers of a baseline capacity.
//
// A buffer which grew past the pool's ceiling is not kept as is:
// it is replaced by a new baseline-sized buffer before going back
// to the pool, so one huge record does not pin memory forever.
type Pool struct {
	size    int
	maxSize int
	pool    sync.Pool
}

// NewPool creates a Pool for buffers with capacity size
// which keeps at most maxSize bytes of capacity per pooled buffer.
// Non-positive size means DefaultSize, maxSize below size means size.
func NewPool(size, maxSize int) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	if maxSize < size {
		maxSize = size
	}
	p := &Pool{size: size, maxSize: maxSize}
	p.pool.New = func() any {
		b := make(Buffer, 0, p.size)
		return &b
	}
	return p
}

// Get returns an empty buffer.
func (p *Pool) Get() *Buffer {
	b := p.pool.Get().(*Buffer) //nolint:forcetypeassert // Pool contains only *Buffer.
	b.Reset()
	return b
}

// Put returns b to the pool. It must not be used after that.
func (p *Pool) Put(b *Buffer) {
	if cap(*b) > p.maxSize {
		*b = make(Buffer, 0, p.size)
	} else {
		b.Reset()
	}
	p.pool.Put(b)
}

// Size returns the baseline capacity of buffers created by p.
func (p *Pool) Size() int { return p.size }

// MaxSize returns the largest capacity p keeps when a buffer is returned.
func (p *Pool) MaxSize() int { return p.maxSize }
