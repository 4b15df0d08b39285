// File: paths.go
// Title: Subpath Collection
// Description: Lists the non-hidden directories and files below a
//              directory, either one level deep or recursively.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	herror "github.com/msto63/helper/foundation/core/error"
)

// Subpaths groups collected paths by kind. Paths are joined onto the
// directory they were listed from.
type Subpaths struct {
	Directories []string `json:"directories"`
	Files       []string `json:"files"`
}

// DirectSubpaths returns the non-hidden children of dir in name order
func DirectSubpaths(dir string) (Subpaths, error) {
	const op = "filex.DirectSubpaths"

	if !IsDir(dir) {
		return Subpaths{}, herror.Newf("not a directory: %s", dir).
			WithCode(herror.CodeNotFound).
			WithOperation(op).
			WithDetail("path", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Subpaths{}, ioError(op, dir, err, fmt.Sprintf("failed to list %s", dir))
	}

	var paths Subpaths
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		// Stat follows symlinks so a link to a directory counts as one
		if IsDir(full) {
			paths.Directories = append(paths.Directories, full)
		} else {
			paths.Files = append(paths.Files, full)
		}
	}
	return paths, nil
}

// AllSubpaths collects every non-hidden path reachable from dir. Pending
// directories are kept on a stack, so the last directory found is listed
// next. Symlinked directories are listed but not descended into.
func AllSubpaths(dir string) (Subpaths, error) {
	direct, err := DirectSubpaths(dir)
	if err != nil {
		return Subpaths{}, err
	}

	all := direct
	pending := append([]string(nil), direct.Directories...)
	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if info, err := os.Lstat(next); err == nil && info.Mode()&os.ModeSymlink != 0 {
			continue
		}

		subs, err := DirectSubpaths(next)
		if err != nil {
			return Subpaths{}, err
		}
		all.Directories = append(all.Directories, subs.Directories...)
		all.Files = append(all.Files, subs.Files...)
		pending = append(pending, subs.Directories...)
	}
	return all, nil
}
