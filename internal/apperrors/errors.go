// Package apperrors defines the CLI's error kinds and maps them to exit codes.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/lski/toolbox/pkg/number"
)

// Process exit codes.
const (
	ExitSuccess      = 0 // Indicates successful execution.
	ExitErrorGeneric = 1 // Indicates a generic error.
	ExitErrorInput   = 2 // Indicates at least one input could not be read.
	ExitErrorConfig  = 4 // Indicates a configuration error.
)

// ErrInvalidInput is wrapped when some inputs of a batch failed.
var ErrInvalidInput = errors.New("invalid input")

// ConfigError represents a user configuration error, such as an unreadable
// config file or an invalid flag value.
type ConfigError struct {
	// Cause is the underlying problem.
	Cause error
}

func (e ConfigError) Error() string { return "configuration error: " + e.Cause.Error() }

// Unwrap returns the wrapped cause.
func (e ConfigError) Unwrap() error { return e.Cause }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Cause: fmt.Errorf(format, a...)}
}

// InputError reports how many inputs of a batch failed.
func InputError(failed, total int) error {
	return fmt.Errorf("%w: %d of %d inputs", ErrInvalidInput, failed, total)
}

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	switch {
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case errors.Is(err, ErrInvalidInput), errors.Is(err, number.ErrParse):
		return ExitErrorInput
	}
	return ExitErrorGeneric
}
