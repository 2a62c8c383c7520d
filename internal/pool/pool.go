// Package pool provides typed wrappers around sync.Pool for the scratch
// buffers the parser uses while splitting comma-separated values.
package pool

import (
	"sync"
)

// Pool is a type-safe sync.Pool with an optional reset hook run on Get.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates a pool backed by factory.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{New: func() any { return factory() }},
	}
}

// NewWithReset creates a pool that calls reset on every object it hands out.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get returns a pooled or freshly created object.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put hands obj back to the pool. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// maxRetainedCap keeps one huge argument list from pinning memory.
const maxRetainedCap = 1024

var stringSlices = NewWithReset(
	func() *[]string {
		s := make([]string, 0, 16)
		return &s
	},
	func(s *[]string) { *s = (*s)[:0] },
)

// GetStrings returns an empty string slice from the global pool.
func GetStrings() *[]string {
	return stringSlices.Get()
}

// PutStrings returns s to the global pool. Callers must not keep
// references to its elements' backing array afterwards.
func PutStrings(s *[]string) {
	if s == nil || cap(*s) > maxRetainedCap {
		return
	}
	clear(*s)
	stringSlices.Put(s)
}
