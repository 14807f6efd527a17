package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// ArgumentError represents a caller-supplied value that was rejected.
// It always matches ErrInvalidArgument under errors.Is.
type ArgumentError struct {
	Argument string
	Value    any
	Err      error
}

// NewArgumentError builds an ArgumentError with a formatted reason.
func NewArgumentError(argument string, value any, format string, args ...any) *ArgumentError {
	return &ArgumentError{
		Argument: argument,
		Value:    value,
		Err:      fmt.Errorf(format, args...),
	}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s (value: %v): %v", e.Argument, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
