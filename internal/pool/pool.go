// Package pool provides typed object pools for the scratch buffers argparse
// needs while parsing and rendering.
package pool

import (
	"bytes"
	"sync"
)

// Pool is a typed wrapper around sync.Pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // called on every Get
}

// NewPool creates a pool backed by factory.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{pool: sync.Pool{New: func() any { return factory() }}}
}

// NewPoolWithReset creates a pool whose objects are reset before reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// maxRetained caps what goes back into the shared pools so one huge argv
// does not pin memory forever.
const maxRetained = 1024

var fieldsPool = NewPoolWithReset(
	func() *[]string {
		s := make([]string, 0, 16)
		return &s
	},
	func(s *[]string) { *s = (*s)[:0] },
)

// GetFields returns an empty string slice for staging raw list fields.
func GetFields() *[]string { return fieldsPool.Get() }

// PutFields returns s to the pool. Elements are cleared so the pool does not
// keep argv strings alive.
func PutFields(s *[]string) {
	if s == nil || cap(*s) > maxRetained {
		return
	}
	clear((*s)[:cap(*s)])
	fieldsPool.Put(s)
}

var bufferPool = NewPoolWithReset(
	func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 512)) },
	func(b *bytes.Buffer) { b.Reset() },
)

// GetBuffer returns an empty buffer for rendering help and manifests.
func GetBuffer() *bytes.Buffer { return bufferPool.Get() }

func PutBuffer(b *bytes.Buffer) {
	if b == nil || b.Cap() > maxRetained*64 {
		return
	}
	bufferPool.Put(b)
}
