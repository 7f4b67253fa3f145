package embed

import (
	"errors"
	"fmt"
)

// ConfigurationError reports an Embed-Dependency directive that cannot be
// applied.
type ConfigurationError struct {
	// Code identifies the error category.
	Code ConfigErrorCode

	// Message is a human-readable description.
	Message string

	// Clause is the primary pattern of the offending clause.
	Clause string

	// Attribute is the offending attribute key, if any.
	Attribute string
}

// ConfigErrorCode categorizes configuration errors.
type ConfigErrorCode string

const (
	// ErrCodeUnknownAttribute indicates a clause attribute outside the recognized set.
	ErrCodeUnknownAttribute ConfigErrorCode = "UNKNOWN_ATTRIBUTE"

	// ErrCodeInvalidPattern indicates a pattern that does not compile.
	ErrCodeInvalidPattern ConfigErrorCode = "INVALID_PATTERN"

	// ErrCodeMalformedHeader indicates a header that cannot be tokenized.
	ErrCodeMalformedHeader ConfigErrorCode = "MALFORMED_HEADER"
)

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Clause != "" {
		return fmt.Sprintf("%s: %s (clause=%s)", e.Code, e.Message, e.Clause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConfigurationError returns true if err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// NewUnknownAttributeError creates a ConfigurationError for an unrecognized key.
func NewUnknownAttributeError(clause, key string) *ConfigurationError {
	return &ConfigurationError{
		Code:      ErrCodeUnknownAttribute,
		Message:   fmt.Sprintf("unexpected attribute %s", key),
		Clause:    clause,
		Attribute: key,
	}
}

// NewInvalidPatternError creates a ConfigurationError for a pattern that does
// not compile.
func NewInvalidPatternError(clause, key string, err error) *ConfigurationError {
	return &ConfigurationError{
		Code:      ErrCodeInvalidPattern,
		Message:   err.Error(),
		Clause:    clause,
		Attribute: key,
	}
}
