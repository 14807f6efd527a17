package utils

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FanOut calls fn from n goroutines that are all released together and
// returns their results indexed by caller. The first error cancels ctx for
// the remaining callers and is returned.
func FanOut[T any](ctx context.Context, n int, fn func(ctx context.Context, caller int) (T, error)) ([]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fan out: caller count must be positive, got %d", n)
	}

	results := make([]T, n)
	start := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	for i := 0; i < n; i++ {
		i := i // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			select {
			case <-start:
			case <-gctx.Done():
				return gctx.Err()
			}
			v, err := fn(gctx, i)
			if err != nil {
				return fmt.Errorf("caller %d: %w", i, err)
			}
			results[i] = v
			return nil
		})
	}

	close(start)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Distinct counts the distinct comparable values in vs.
func Distinct[T comparable](vs []T) int {
	seen := make(map[T]struct{}, len(vs))
	for _, v := range vs {
		seen[v] = struct{}{}
	}
	return len(seen)
}
