// File: excel.go
// Title: Excel Workbooks
// Description: Opens Office Open XML workbooks and exposes sheet names,
//              rows and single cell values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package filex

import (
	"fmt"
	"path/filepath"
	"strings"

	herror "github.com/msto63/helper/foundation/core/error"
	"github.com/xuri/excelize/v2"
)

// workbookExts lists the supported workbook extensions. Legacy .xls files
// are not readable.
var workbookExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Workbook is an open Excel workbook. Close it when done.
type Workbook struct {
	path string
	file *excelize.File
}

// OpenWorkbook opens the workbook at path
func OpenWorkbook(path string) (*Workbook, error) {
	const op = "filex.OpenWorkbook"

	ext := strings.ToLower(filepath.Ext(path))
	if !workbookExts[ext] {
		return nil, herror.Newf("unsupported workbook extension %q", ext).
			WithCode(herror.CodeUnsupportedInput).
			WithOperation(op).
			WithDetail("path", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, ioError(op, path, err, fmt.Sprintf("failed to open workbook %s", path))
	}
	return &Workbook{path: path, file: f}, nil
}

// Path returns the file the workbook was opened from
func (w *Workbook) Path() string {
	return w.path
}

// Sheets returns the sheet names in workbook order
func (w *Workbook) Sheets() []string {
	return w.file.GetSheetList()
}

// Rows returns all rows of sheet. Trailing empty cells are omitted.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, herror.Wrap(err, fmt.Sprintf("failed to read sheet %q", sheet)).
			WithCode(herror.CodeNotFound).
			WithOperation("filex.Workbook.Rows").
			WithDetail("sheet", sheet)
	}
	return rows, nil
}

// Cell returns the formatted value at axis, e.g. "B2"
func (w *Workbook) Cell(sheet, axis string) (string, error) {
	value, err := w.file.GetCellValue(sheet, axis)
	if err != nil {
		return "", herror.Wrap(err, fmt.Sprintf("failed to read cell %s!%s", sheet, axis)).
			WithCode(herror.CodeInvalidInput).
			WithOperation("filex.Workbook.Cell").
			WithDetail("sheet", sheet).
			WithDetail("axis", axis)
	}
	return value, nil
}

// Close releases the workbook's temporary files
func (w *Workbook) Close() error {
	if err := w.file.Close(); err != nil {
		return ioError("filex.Workbook.Close", w.path, err, "failed to close workbook")
	}
	return nil
}
