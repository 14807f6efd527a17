package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentError(t *testing.T) {
	err := NewArgumentError("userType", "GUEST", "unknown user type: %s", "GUEST")

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "GUEST")
	assert.Equal(t, "invalid argument userType (value: GUEST): unknown user type: GUEST", err.Error())
	assert.Equal(t, "unknown user type: GUEST", errors.Unwrap(err).Error())

	wrapped := fmt.Errorf("create user: %w", err)
	var argErr *ArgumentError
	if assert.True(t, errors.As(wrapped, &argErr)) {
		assert.Equal(t, "userType", argErr.Argument)
		assert.Equal(t, "GUEST", argErr.Value)
	}
	assert.True(t, errors.Is(wrapped, ErrInvalidArgument))
}

func TestConfigError(t *testing.T) {
	cause := errors.New("not a valid logrus Level")
	err := &ConfigError{Field: "PATTERNS_LOG_LEVEL", Value: "loud", Err: cause}

	assert.Equal(t, "config error in field PATTERNS_LOG_LEVEL (value: loud): not a valid logrus Level", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}
