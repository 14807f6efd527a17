package singleton

import (
	"sync"
	"sync/atomic"
)

// Lazy builds its value on the first call to Get.
type Lazy[T any] struct {
	once  sync.Once
	ctor  func() T
	value T
	done  atomic.Bool
}

// NewLazy returns a provider that defers ctor until first use.
func NewLazy[T any](ctor func() T) *Lazy[T] {
	return &Lazy[T]{ctor: mustConstructor(ctor)}
}

// Get returns the shared value. Concurrent first callers block until the
// single construction has finished.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.ctor()
		l.done.Store(true)
	})
	return l.value
}

// Initialized reports whether Get has completed construction.
func (l *Lazy[T]) Initialized() bool {
	return l.done.Load()
}
