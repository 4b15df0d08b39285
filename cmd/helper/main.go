// ============================================================================
// helper - Utility CLI and Libraries
// ============================================================================
//
// Package:     main
// Description: Entry point of the helper CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"github.com/msto63/helper/cmd/helper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
