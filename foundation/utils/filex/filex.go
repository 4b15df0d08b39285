// File: filex.go
// Title: Core File Utilities
// Description: Existence checks and the structured error constructor shared
//              by the file helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-14 v0.2.0: Kept existence checks, errors carry codes

package filex

import (
	"errors"
	"io/fs"
	"os"

	herror "github.com/msto63/helper/foundation/core/error"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ioError wraps err for op and path. Missing files get CodeNotFound,
// everything else CodeFileIO.
func ioError(op, path string, err error, message string) *herror.Error {
	code := herror.CodeFileIO
	if errors.Is(err, fs.ErrNotExist) {
		code = herror.CodeNotFound
	}
	return herror.Wrap(err, message).
		WithCode(code).
		WithOperation(op).
		WithDetail("path", path)
}
