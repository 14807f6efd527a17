package singleton

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kristo-godari/architectural-concepts/pkg/core"
)

// Instance is the stateless value guarded by the process-wide providers.
// Callers compare instances by pointer; ID only makes identity printable.
type Instance struct {
	ID        uuid.UUID
	Strategy  Strategy
	CreatedAt time.Time
}

// String returns the instance ID.
func (i *Instance) String() string {
	return i.ID.String()
}

func newInstance(strategy Strategy) func() *Instance {
	return func() *Instance {
		inst := &Instance{
			ID:        uuid.New(),
			Strategy:  strategy,
			CreatedAt: time.Now(),
		}
		logrus.WithFields(logrus.Fields{
			"strategy":    strategy,
			"instance_id": inst.ID,
		}).Debug("singleton instance constructed")
		return inst
	}
}

var (
	eagerInstance         = NewEager(newInstance(StrategyEager))
	lazyInstance          = NewLazy(newInstance(StrategyLazy))
	threadSafeInstance    = NewLocked(newInstance(StrategyThreadSafe))
	doubleCheckedInstance = NewDoubleChecked(newInstance(StrategyDoubleChecked))
)

// EagerInstance returns the instance built during package initialization.
func EagerInstance() *Instance { return eagerInstance.Get() }

// LazyInstance returns the instance built on first access via sync.Once.
func LazyInstance() *Instance { return lazyInstance.Get() }

// ThreadSafeInstance returns the instance guarded by a mutex on every access.
func ThreadSafeInstance() *Instance { return threadSafeInstance.Get() }

// DoubleCheckedInstance returns the instance published with double-checked locking.
func DoubleCheckedInstance() *Instance { return doubleCheckedInstance.Get() }

// Global returns the process-wide provider for the given strategy.
func Global(strategy Strategy) (Provider[*Instance], error) {
	switch strategy {
	case StrategyEager:
		return eagerInstance, nil
	case StrategyLazy:
		return lazyInstance, nil
	case StrategyThreadSafe:
		return threadSafeInstance, nil
	case StrategyDoubleChecked:
		return doubleCheckedInstance, nil
	default:
		return nil, core.NewArgumentError("strategy", strategy, "unknown singleton strategy: %s", strategy)
	}
}
