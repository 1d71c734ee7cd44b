// Package sync_pool is a typed sync.Pool wrapper.
package sync_pool

import "sync"

type SyncPool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// New creates a pool. init allocates a value, reset clears a value
// before it is handed out again.
func New[T any](init func() T, reset func(T)) SyncPool[T] {
	return SyncPool[T]{
		pool: sync.Pool{
			New: func() any { return init() },
		},
		reset: reset,
	}
}

// Get returns a cleared T from the pool.
func (p *SyncPool[T]) Get() T {
	val := p.pool.Get().(T)
	p.reset(val)
	return val
}

// Put returns a T to the pool.
func (p *SyncPool[T]) Put(val T) {
	p.pool.Put(val)
}
