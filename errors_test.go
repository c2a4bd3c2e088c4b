package cascade

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "with field",
			err:  &ConfigError{Field: "layers", Message: "at least one layer"},
			want: "invalid config: layers: at least one layer",
		},
		{
			name: "without field",
			err:  &ConfigError{Message: "config cannot be nil"},
			want: "invalid config: config cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParameterErrorMessage(t *testing.T) {
	err := &ParameterError{Field: "salt", Message: "got 8 bytes, expected 16 bytes"}
	want := "invalid parameter: salt: got 8 bytes, expected 16 bytes"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKeyErrorMessage(t *testing.T) {
	err := &KeyError{Message: "got 16 bytes, expected 32 bytes"}
	want := "invalid key: got 16 bytes, expected 32 bytes"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsConfigError(NewConfigError("layers", "too many")) {
		t.Error("IsConfigError should match a *ConfigError")
	}
	if !IsParameterError(NewParameterError("salt", "bad length")) {
		t.Error("IsParameterError should match a *ParameterError")
	}
	if !IsKeyError(NewKeyError("bad length")) {
		t.Error("IsKeyError should match a *KeyError")
	}
	if IsConfigError(ErrAuthFailure) {
		t.Error("IsConfigError should not match a sentinel error")
	}
}

func TestWrappedSentinelsUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("%w: %w", ErrWrongKeyOrTampered, ErrAuthFailure)
	if !errors.Is(wrapped, ErrWrongKeyOrTampered) {
		t.Error("expected errors.Is to match ErrWrongKeyOrTampered")
	}
	if !errors.Is(wrapped, ErrAuthFailure) {
		t.Error("expected errors.Is to match the wrapped ErrAuthFailure")
	}
}
