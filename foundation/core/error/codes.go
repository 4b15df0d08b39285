// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify helper errors. Codes
//              are stable strings so they can be logged and compared.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Added UNSUPPORTED_INPUT and FILE_IO, dropped unused codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Input normalization
	CodeUnsupportedInput Code = "UNSUPPORTED_INPUT"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"

	// Authentication
	CodeUnauthorized Code = "UNAUTHORIZED"

	// Service and network
	CodeConnectionFailed     Code = "CONNECTION_FAILED"
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"

	// Files
	CodeFileIO Code = "FILE_IO"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Interaction
	CodeAborted Code = "ABORTED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeUnsupportedInput, CodeInvalidFormat, CodeValueOutOfRange,
		CodeUnauthorized, CodeConnectionFailed, CodeExternalServiceError,
		CodeFileIO, CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeAborted:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeUnsupportedInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	case CodeUnauthorized:
		return "authentication"
	case CodeConnectionFailed, CodeExternalServiceError, CodeTimeout:
		return "service"
	case CodeFileIO, CodeNotFound:
		return "storage"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
