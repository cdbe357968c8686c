package store

import "sync"

// Ref holds a value that many goroutines read and few write. Reads take a
// shared lock and return a copy; Update serializes writers.
type Ref[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a Ref initialized with val.
func NewRef[T any](val T) *Ref[T] {
	return &Ref[T]{val: val}
}

// Get returns a copy of the current value under a read lock.
func (r *Ref[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Update replaces the value with fn(current) under the write lock and
// returns the new value.
func (r *Ref[T]) Update(fn func(T) T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = fn(r.val)
	return r.val
}
