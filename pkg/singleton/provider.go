package singleton

import (
	"strings"

	"github.com/kristo-godari/architectural-concepts/pkg/core"
)

// Provider returns the single shared value it guards.
type Provider[T any] interface {
	// Get returns the shared value, constructing it first if needed.
	Get() T

	// Initialized reports whether the value has been constructed.
	Initialized() bool
}

// Strategy names an initialization policy.
type Strategy string

const (
	StrategyEager         Strategy = "eager"
	StrategyLazy          Strategy = "lazy"
	StrategyThreadSafe    Strategy = "thread-safe"
	StrategyDoubleChecked Strategy = "double-checked"
)

// Strategies lists every supported strategy in presentation order.
func Strategies() []Strategy {
	return []Strategy{StrategyEager, StrategyLazy, StrategyThreadSafe, StrategyDoubleChecked}
}

// String returns the strategy name.
func (s Strategy) String() string {
	return string(s)
}

// ParseStrategy resolves a strategy name case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	candidate := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Strategies() {
		if s == candidate {
			return s, nil
		}
	}
	return "", core.NewArgumentError("strategy", name, "unknown singleton strategy: %s", name)
}

// New creates a provider for ctor using the given strategy.
func New[T any](strategy Strategy, ctor func() T) (Provider[T], error) {
	switch strategy {
	case StrategyEager:
		return NewEager(ctor), nil
	case StrategyLazy:
		return NewLazy(ctor), nil
	case StrategyThreadSafe:
		return NewLocked(ctor), nil
	case StrategyDoubleChecked:
		return NewDoubleChecked(ctor), nil
	default:
		return nil, core.NewArgumentError("strategy", strategy, "unknown singleton strategy: %s", strategy)
	}
}

func mustConstructor[T any](ctor func() T) func() T {
	if ctor == nil {
		panic("singleton: nil constructor")
	}
	return ctor
}
