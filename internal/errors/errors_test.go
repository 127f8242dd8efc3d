package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	t.Run("wraps ErrConfig", func(t *testing.T) {
		err := NewConfigError("htop", "unknown method type \"brew\"")
		assert.True(t, errors.Is(err, ErrConfig))
	})

	t.Run("names package and field", func(t *testing.T) {
		err := NewFieldError("kubectl", "url", "missing required field")
		assert.Contains(t, err.Error(), `"kubectl"`)
		assert.Contains(t, err.Error(), `"url"`)
		assert.Contains(t, err.Error(), "missing required field")
	})

	t.Run("includes hint when set", func(t *testing.T) {
		err := &ConfigError{Message: "invalid target", Hint: "valid targets: fedora, ubuntu"}
		assert.Contains(t, err.Error(), "valid targets")
	})
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	err := NewExitError(inner, ExitGeneralError)

	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, inner, err.Unwrap())
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"explicit exit error", NewExitError(errors.New("x"), ExitNotFound), ExitNotFound},
		{"config sentinel", NewConfigError("a", "bad"), ExitConfigError},
		{"wrapped config sentinel", fmt.Errorf("loading: %w", ErrConfig), ExitConfigError},
		{"not found sentinel", WrapNotFound(errors.New("open"), "reading manifest"), ExitNotFound},
		{"unknown error", errors.New("x"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	require.Equal(t, "Success", ExitCodeName(ExitSuccess))
	require.Equal(t, "Configuration Error", ExitCodeName(ExitConfigError))
	require.Equal(t, "Unknown", ExitCodeName(42))
}
