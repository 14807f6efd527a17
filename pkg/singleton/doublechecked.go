package singleton

import (
	"sync"
	"sync/atomic"
)

// DoubleChecked avoids the lock once the value has been published.
type DoubleChecked[T any] struct {
	mu    sync.Mutex
	ctor  func() T
	value atomic.Pointer[T]
}

// NewDoubleChecked returns a lazy provider using double-checked locking.
func NewDoubleChecked[T any](ctor func() T) *DoubleChecked[T] {
	return &DoubleChecked[T]{ctor: mustConstructor(ctor)}
}

// Get returns the shared value.
func (d *DoubleChecked[T]) Get() T {
	if v := d.value.Load(); v != nil {
		return *v
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Another caller may have published while we waited for the lock.
	if v := d.value.Load(); v != nil {
		return *v
	}

	v := d.ctor()
	// The store happens after construction so readers on the fast path
	// never see a partially built value.
	d.value.Store(&v)
	return v
}

// Initialized reports whether the value has been published.
func (d *DoubleChecked[T]) Initialized() bool {
	return d.value.Load() != nil
}
