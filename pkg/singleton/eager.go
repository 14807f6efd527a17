package singleton

// Eager holds a value built at creation time.
type Eager[T any] struct {
	value T
}

// NewEager runs ctor immediately and returns a provider for its result.
func NewEager[T any](ctor func() T) *Eager[T] {
	return &Eager[T]{value: mustConstructor(ctor)()}
}

// Get returns the value built by NewEager.
func (e *Eager[T]) Get() T {
	return e.value
}

// Initialized is always true.
func (e *Eager[T]) Initialized() bool {
	return true
}
