// Package error provides the structured error type used across helper.
//
// Package: error
// Title: Helper Error Handling
// Description: Structured errors with a code, a severity, free-form details
//              and the operation that failed. Errors wrap their cause so the
//              standard errors.Is / errors.As helpers keep working.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Reduced to the codes used by timex, filex and fleet
//
// Usage:
//
//	import herror "github.com/msto63/helper/foundation/core/error"
//
//	err := herror.Wrap(ErrInvalidInput, "sequence must have 3 elements").
//		WithCode(herror.CodeInvalidInput).
//		WithOperation("timex.ToDate").
//		WithDetail("length", 2)
//
//	if herror.HasCode(err, herror.CodeInvalidInput) {
//		// handle bad input
//	}
package error
