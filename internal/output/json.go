// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output provides utilities for consistent CLI output formatting.
//
// Command results go to stdout in one of two shapes: plain text, one
// decimal integer per line (Integers), or pretty-printed JSON when --json
// is set (JSON). Errors in JSON mode go to stderr (JSONError). The ui
// package covers human-readable status messages and the errors package
// covers user-facing failures.
//
// # Usage
//
//	result := &output.MapResult{Transform: "square", Count: 3, Result: []int{1, 4, 9}}
//	if jsonMode {
//	    err = output.JSON(result)
//	} else {
//	    err = output.Integers(result.Result)
//	}
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSON writes data as pretty-printed JSON to stdout.
//
// The output is formatted with 2-space indentation. Returns an error if
// JSON encoding fails (e.g., for unencodable types like channels).
func JSON(data any) error {
	return JSONTo(os.Stdout, data)
}

// JSONTo writes data as pretty-printed JSON to the specified writer.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// ErrorJSON represents an error in JSON format for machine consumption.
type ErrorJSON struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// JSONError writes an error as JSON to stderr.
func JSONError(err error) error {
	return JSONErrorTo(os.Stderr, err)
}

// JSONErrorTo writes an error as JSON to the specified writer.
func JSONErrorTo(w io.Writer, err error) error {
	if encErr := JSONTo(w, ErrorJSON{Error: err.Error()}); encErr != nil {
		return fmt.Errorf("JSON error encoding failed: %w", encErr)
	}
	return nil
}
