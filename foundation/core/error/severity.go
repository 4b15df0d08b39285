// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels drive the log level an error is reported at.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.1.1: Mapping updated for the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is bad user input or a missing optional value
	SeverityLow Severity = iota

	// SeverityMedium affects one operation; the caller can retry or work around it
	SeverityMedium

	// SeverityHigh means a dependency (network, credentials) is unusable
	SeverityHigh

	// SeverityCritical makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeConnectionFailed, CodeUnauthorized:
		return SeverityHigh
	case CodeExternalServiceError, CodeTimeout, CodeFileIO, CodeConfigError,
		CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium
	case CodeInvalidInput, CodeUnsupportedInput, CodeInvalidFormat,
		CodeValueOutOfRange, CodeNotFound, CodeAborted:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
