package cascade

import (
	"errors"
	"fmt"
)

// Error types represent the distinct failure categories a cascade
// instance can raise. Every condition maps to exactly one kind.

// ConfigError represents an invalid Cascade configuration: an empty or
// over-long layer list, or an unknown algorithm.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid config: %s", e.Message)
}

// ParameterError represents an invalid call-site parameter: a salt of the
// wrong length, a cost setting below its floor, or a missing required
// field.
type ParameterError struct {
	Field   string
	Message string
}

func (e *ParameterError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid parameter: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid parameter: %s", e.Message)
}

// KeyError represents an AEAD key of the wrong length for its suite.
type KeyError struct {
	Message string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid key: %s", e.Message)
}

// Sentinel errors. ErrAuthFailure is the one outcome every suite's Open
// and the cascade engine may return for a failed authentication or
// integrity check; it never carries information about which layer failed,
// since that position is itself a side channel. The orchestrator wraps it
// at the PasswordKey/MasterKey boundary as ErrWrongPasswordOrTampered or
// ErrWrongKeyOrTampered without adding any further detail.
var (
	// ErrCiphertextTooShort is returned by a suite's Open, before any
	// primitive runs, when the input is smaller than that suite's minimum
	// self-framed length.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrAuthFailure is returned when an AEAD authentication or integrity
	// check fails, at the suite or cascade level.
	ErrAuthFailure = errors.New("authentication failed")

	// ErrWrongPasswordOrTampered is surfaced by UnlockMasterKey.
	ErrWrongPasswordOrTampered = errors.New("wrong password or tampered data")

	// ErrWrongKeyOrTampered is surfaced by Decrypt.
	ErrWrongKeyOrTampered = errors.New("wrong key or tampered data")

	// ErrRandomnessUnavailable is returned when the CSPRNG fails to
	// produce output. There is no non-CSPRNG fallback.
	ErrRandomnessUnavailable = errors.New("secure randomness unavailable")

	// ErrUnsupportedAlgorithm is returned for an Algorithm value the
	// cipher suite registry does not recognize.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrPrimitiveUnavailable is returned when the underlying crypto
	// backend refuses an operation outright (as opposed to failing an
	// authentication check).
	ErrPrimitiveUnavailable = errors.New("cryptographic primitive unavailable")

	// ErrLayerMismatch is returned when a PasswordKey or MasterKey's layer
	// keys do not match, element-for-element, the Cascade instance's
	// configured layer list.
	ErrLayerMismatch = errors.New("key layers do not match cascade configuration")
)

// NewConfigError creates a new configuration error.
func NewConfigError(field, message string) error {
	return &ConfigError{Field: field, Message: message}
}

// NewParameterError creates a new parameter error.
func NewParameterError(field, message string) error {
	return &ParameterError{Field: field, Message: message}
}

// NewKeyError creates a new key-length error.
func NewKeyError(message string) error {
	return &KeyError{Message: message}
}

// IsConfigError reports whether err is a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsParameterError reports whether err is a *ParameterError.
func IsParameterError(err error) bool {
	var pe *ParameterError
	return errors.As(err, &pe)
}

// IsKeyError reports whether err is a *KeyError.
func IsKeyError(err error) bool {
	var ke *KeyError
	return errors.As(err, &ke)
}
