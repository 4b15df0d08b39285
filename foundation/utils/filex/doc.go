// Package filex implements file helpers for JSON, CSV and Excel data and
// directory traversal.
//
// Package: filex
// Title: File Helpers
// Description: Reads and writes JSON objects and CSV tables, opens Excel
//              workbooks and collects the non-hidden subpaths of a
//              directory, directly or recursively.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-14 v0.2.0: Reduced to data file helpers and subpath collection
//
// # JSON
//
//	m, err := filex.ReadJSONMap("robots.json")   // nil, nil for an empty file
//	err = filex.WriteJSONMap(m, "robots.json")   // indented, trailing newline
//
// A missing file is an error with code NOT_FOUND; malformed content carries
// INVALID_FORMAT. ReadJSONMapWithOptions with UseNumber keeps numbers as
// json.Number so integer fields survive unchanged.
//
// # CSV
//
//	err = filex.WriteCSV("out.csv", rows, []string{"name", "store"})
//	table, err := filex.ReadCSV("out.csv", filex.CSVOptions{HasHeaders: true})
//	for _, rec := range table.Records() {
//		fmt.Println(rec["name"])
//	}
//
// # Excel
//
//	wb, err := filex.OpenWorkbook("fleet.xlsx")
//	defer wb.Close()
//	rows, err := wb.Rows(wb.Sheets()[0])
//
// # Directories
//
// DirectSubpaths lists the non-hidden children of a directory, split into
// directories and files. AllSubpaths repeats that for every directory found,
// taking the most recently found directory next.
package filex
