// Package errors provides sentinel errors and exit codes for the instgen CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfig indicates a manifest or configuration error: an unknown
	// method tag, an unknown hook kind, a missing required field, an
	// invalid target OS, or an illegal self-dependency.
	ErrConfig = errors.New("configuration error")

	// ErrNotFound indicates a manifest or config file was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes returned by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigError indicates the manifest or tool configuration is invalid.
	ExitConfigError = 2

	// ExitNotFound indicates the manifest file was not found.
	ExitNotFound = 3
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigError:
		return "Configuration Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ConfigError captures structured information about an invalid manifest or
// tool configuration. It always wraps ErrConfig so callers can test with
// errors.Is.
type ConfigError struct {
	// Package is the manifest entry name the error belongs to (optional).
	Package string

	// Field is the offending field name (optional).
	Field string

	// Message is the specific description (required).
	Message string

	// Hint provides actionable guidance (optional).
	Hint string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder

	b.WriteString("configuration error")
	if e.Package != "" {
		fmt.Fprintf(&b, " in package %q", e.Package)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (field %q)", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString(" (")
		b.WriteString(e.Hint)
		b.WriteString(")")
	}

	return b.String()
}

// Unwrap returns ErrConfig so errors.Is(err, ErrConfig) holds.
func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// NewConfigError creates a ConfigError scoped to a manifest entry.
func NewConfigError(pkg, message string) error {
	return &ConfigError{Package: pkg, Message: message}
}

// NewFieldError creates a ConfigError for a missing or invalid field.
func NewFieldError(pkg, field, message string) error {
	return &ConfigError{Package: pkg, Field: field, Message: message}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// WrapNotFound wraps an error with ErrNotFound.
func WrapNotFound(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
}
