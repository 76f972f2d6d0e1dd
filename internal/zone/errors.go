package zone

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by the constructors when polygon, restaurant or
// ETA configuration cannot be used.
var ErrInvalidConfig = errors.New("zone: invalid configuration")

// ErrInvalidPoint marks a per-query coordinate the evaluator will not accept.
var ErrInvalidPoint = errors.New("zone: invalid point")

// ConfigError describes which part of the configuration was rejected.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("zone: invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
