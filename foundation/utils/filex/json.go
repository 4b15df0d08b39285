// File: json.go
// Title: JSON Object Files
// Description: Reads a JSON object file into a map and writes a map back
//              as indented JSON.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package filex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	herror "github.com/msto63/helper/foundation/core/error"
)

// JSONOptions controls decoding in ReadJSONMapWithOptions
type JSONOptions struct {
	// UseNumber decodes numbers as json.Number instead of float64
	UseNumber bool
}

// ReadJSONMap decodes the JSON object in path. An empty or whitespace-only
// file yields a nil map and no error.
func ReadJSONMap(path string) (map[string]interface{}, error) {
	return ReadJSONMapWithOptions(path, JSONOptions{})
}

// ReadJSONMapWithOptions decodes the JSON object in path using opts
func ReadJSONMapWithOptions(path string, opts JSONOptions) (map[string]interface{}, error) {
	const op = "filex.ReadJSONMap"

	if !IsFile(path) {
		return nil, herror.Newf("invalid file path %s", path).
			WithCode(herror.CodeNotFound).
			WithOperation(op).
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(op, path, err, fmt.Sprintf("failed to read file %s", path))
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(content))
	if opts.UseNumber {
		decoder.UseNumber()
	}

	var result map[string]interface{}
	if err := decoder.Decode(&result); err != nil {
		return nil, herror.Wrap(err, fmt.Sprintf("failed to decode JSON in %s", path)).
			WithCode(herror.CodeInvalidFormat).
			WithOperation(op).
			WithDetail("path", path)
	}
	return result, nil
}

// WriteJSONMap writes m to path as two-space indented JSON with a trailing
// newline, replacing any existing content.
func WriteJSONMap(m map[string]interface{}, path string) error {
	const op = "filex.WriteJSONMap"

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return herror.Wrap(err, "failed to encode JSON").
			WithCode(herror.CodeInvalidInput).
			WithOperation(op).
			WithDetail("path", path)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return ioError(op, path, err, fmt.Sprintf("failed to write file %s", path))
	}
	return nil
}
