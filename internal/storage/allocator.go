package storage

import "fmt"

// Allocator supplies backing memory for owning tensors. It is fixed when the
// tensor is constructed.
type Allocator[T any] interface {
	// Alloc returns a slice of exactly n slots.
	Alloc(n int) ([]T, error)
}

// AllocFunc adapts a function to the Allocator interface.
type AllocFunc[T any] func(n int) ([]T, error)

// Alloc calls f(n).
func (f AllocFunc[T]) Alloc(n int) ([]T, error) { return f(n) }

// Heap returns the default allocator backed by make.
func Heap[T any]() Allocator[T] {
	return AllocFunc[T](func(n int) ([]T, error) {
		return make([]T, n), nil
	})
}

// Pool hands out consecutive, non-overlapping pieces of one preallocated
// arena. Memory is never returned to the pool.
type Pool[T any] struct {
	arena []T
	next  int
}

// NewPool creates a pool with room for capacity slots.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{arena: make([]T, capacity)}
}

// Alloc carves the next n slots out of the arena.
func (p *Pool[T]) Alloc(n int) ([]T, error) {
	if n > len(p.arena)-p.next {
		return nil, fmt.Errorf("pool exhausted: %d slots requested, %d available", n, len(p.arena)-p.next)
	}
	buf := p.arena[p.next : p.next+n : p.next+n]
	p.next += n
	return buf, nil
}

// Available returns the number of slots not yet handed out.
func (p *Pool[T]) Available() int {
	return len(p.arena) - p.next
}
