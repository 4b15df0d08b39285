// File: errors.go
// Title: Normalization Errors
// Description: Sentinel errors and the structured error constructor used by
//              every normalization routine.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

import (
	"errors"
	"fmt"

	herror "github.com/msto63/helper/foundation/core/error"
)

var (
	// ErrInvalidInput is returned for a supported shape with wrong content,
	// e.g. a sequence of the wrong length or a record missing a key.
	ErrInvalidInput = errors.New("timex: invalid input")

	// ErrUnsupportedInput is returned for input types that cannot be normalized.
	ErrUnsupportedInput = errors.New("timex: unsupported input type")

	// ErrUnparsable is returned when text matches no accepted date format.
	ErrUnparsable = errors.New("timex: unparsable text")

	// ErrOutOfRange is returned for impossible field values such as month 13.
	ErrOutOfRange = errors.New("timex: value out of range")
)

func codeFor(sentinel error) herror.Code {
	switch sentinel {
	case ErrUnsupportedInput:
		return herror.CodeUnsupportedInput
	case ErrUnparsable:
		return herror.CodeInvalidFormat
	case ErrOutOfRange:
		return herror.CodeValueOutOfRange
	default:
		return herror.CodeInvalidInput
	}
}

// fail builds the structured error for op; cause may be nil.
func fail(op string, sentinel, cause error, format string, args ...interface{}) *herror.Error {
	wrapped := sentinel
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return herror.Wrap(wrapped, fmt.Sprintf(format, args...)).
		WithCode(codeFor(sentinel)).
		WithOperation(op)
}
