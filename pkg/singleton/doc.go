// Package singleton provides process-wide, construct-once providers.
//
// A Provider hands out one shared value for its whole lifetime. Four
// strategies are available and they differ only in when and how the value is
// built:
//
//   - Eager builds the value when the provider itself is created. Package
//     level eager providers are therefore built during package initialization,
//     before any goroutine can observe them.
//   - Lazy defers construction to the first Get and uses sync.Once.
//   - Locked takes a mutex around the check-and-construct sequence on every
//     call.
//   - DoubleChecked reads an atomic pointer first and only falls back to the
//     mutex while the value is still missing, re-checking under the lock.
//
// All four guarantee that the constructor runs at most once and that every
// caller, including concurrent first callers, sees the fully constructed
// value.
//
// Example usage:
//
//	import "github.com/kristo-godari/architectural-concepts/pkg/singleton"
//
//	var pool = singleton.NewLazy(func() *Pool { return newPool() })
//
//	func Pool() *Pool { return pool.Get() }
//
// The package also owns four process-wide *Instance values, one per
// strategy, reachable through EagerInstance, LazyInstance, ThreadSafeInstance
// and DoubleCheckedInstance.
package singleton
