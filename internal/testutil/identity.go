package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kristo-godari/architectural-concepts/internal/utils"
)

// GetConcurrently calls get from n goroutines released together and returns
// every pointer observed.
func GetConcurrently[T any](t testing.TB, n int, get func() *T) []*T {
	t.Helper()

	results, err := utils.FanOut(context.Background(), n, func(_ context.Context, _ int) (*T, error) {
		return get(), nil
	})
	require.NoError(t, err)
	return results
}

// RequireSingleIdentity fails the test unless every pointer in got is
// non-nil and identical.
func RequireSingleIdentity[T any](t testing.TB, got []*T) {
	t.Helper()

	require.NotEmpty(t, got)
	for i, p := range got {
		require.NotNilf(t, p, "caller %d observed a nil instance", i)
	}
	require.Equal(t, 1, utils.Distinct(got), "callers observed more than one instance")
}
