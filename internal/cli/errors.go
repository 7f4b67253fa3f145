package cli

import (
	"errors"

	"github.com/roach88/embedder/internal/embed"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeLoadFailed  = "E004" // Project file could not be loaded
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeStoreFailed = "E008" // Database error

	// Directive errors
	ErrCodeUnknownAttribute = "E101" // Clause attribute outside the recognized set
	ErrCodeInvalidPattern   = "E102" // Pattern does not compile
	ErrCodeMalformedHeader  = "E103" // Header cannot be tokenized
)

// MapConfigErrorToCode maps a directive error to a CLI error code.
func MapConfigErrorToCode(err error) string {
	var ce *embed.ConfigurationError
	if !errors.As(err, &ce) {
		return ErrCodeGeneric
	}
	switch ce.Code {
	case embed.ErrCodeUnknownAttribute:
		return ErrCodeUnknownAttribute
	case embed.ErrCodeInvalidPattern:
		return ErrCodeInvalidPattern
	case embed.ErrCodeMalformedHeader:
		return ErrCodeMalformedHeader
	default:
		return ErrCodeGeneric
	}
}
