package camera

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned (wrapped in a *ConfigurationError) when a camera is
// built or updated with values that would make its projection or orientation undefined.
var ErrInvalidConfiguration = errors.New("invalid camera configuration")

// ConfigurationError describes which camera field was rejected and why.
// It unwraps to ErrInvalidConfiguration so callers can use errors.Is.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfiguration, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

func configErr(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}
