package singleton

import "sync"

// Locked serializes every Get through a mutex.
type Locked[T any] struct {
	mu    sync.Mutex
	ctor  func() T
	value T
	built bool
}

// NewLocked returns a mutex-guarded lazy provider.
func NewLocked[T any](ctor func() T) *Locked[T] {
	return &Locked[T]{ctor: mustConstructor(ctor)}
}

// Get returns the shared value, constructing it under the lock if needed.
func (l *Locked[T]) Get() T {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.built {
		l.value = l.ctor()
		l.built = true
	}
	return l.value
}

// Initialized reports whether the value has been constructed.
func (l *Locked[T]) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.built
}
