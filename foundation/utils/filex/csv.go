// File: csv.go
// Title: CSV Tables
// Description: Writes rows with an optional header line and reads CSV files
//              back into a table, optionally keyed by the header row.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package filex

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	herror "github.com/msto63/helper/foundation/core/error"
)

// CSVOptions controls ReadCSV
type CSVOptions struct {
	// HasHeaders treats the first row as column names
	HasHeaders bool
	// Comma is the field delimiter; zero means ','
	Comma rune
	// TrimLeadingSpace ignores leading white space in a field
	TrimLeadingSpace bool
}

// CSVTable holds parsed CSV rows. Headers is empty unless the file was read
// with HasHeaders.
type CSVTable struct {
	Headers []string
	Rows    [][]string
}

// Records returns one map per row keyed by header. Columns beyond the
// header row are dropped; missing cells are empty strings.
func (t *CSVTable) Records() []map[string]string {
	if len(t.Headers) == 0 {
		return nil
	}
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// WriteCSV writes rows to path. A header line is written first when headers
// is non-empty.
func WriteCSV(path string, rows [][]string, headers []string) error {
	const op = "filex.WriteCSV"

	file, err := os.Create(path)
	if err != nil {
		return ioError(op, path, err, fmt.Sprintf("failed to create file %s", path))
	}

	if err := writeCSVRows(file, rows, headers); err != nil {
		file.Close()
		return ioError(op, path, err, "failed to write CSV rows")
	}
	if err := file.Close(); err != nil {
		return ioError(op, path, err, fmt.Sprintf("failed to close file %s", path))
	}
	return nil
}

// writeCSVRows writes headers (when present) and rows, then flushes.
func writeCSVRows(out io.Writer, rows [][]string, headers []string) error {
	w := csv.NewWriter(out)
	if len(headers) > 0 {
		if err := w.Write(headers); err != nil {
			return err
		}
	}
	return w.WriteAll(rows)
}

// ReadCSV parses the CSV file at path. Rows may have differing lengths.
func ReadCSV(path string, opts CSVOptions) (*CSVTable, error) {
	const op = "filex.ReadCSV"

	file, err := os.Open(path)
	if err != nil {
		return nil, ioError(op, path, err, fmt.Sprintf("failed to open file %s", path))
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = opts.TrimLeadingSpace
	if opts.Comma != 0 {
		r.Comma = opts.Comma
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, herror.Wrap(err, fmt.Sprintf("failed to parse CSV in %s", path)).
			WithCode(herror.CodeInvalidFormat).
			WithOperation(op).
			WithDetail("path", path)
	}

	table := &CSVTable{Rows: rows}
	if opts.HasHeaders && len(rows) > 0 {
		table.Headers = rows[0]
		table.Rows = rows[1:]
	}
	return table, nil
}
