// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// TestJSON verifies that MapResult is pretty-printed with 2-space indentation.
func TestJSON(t *testing.T) {
	var buf bytes.Buffer

	data := &MapResult{
		Transform: "square",
		Count:     5,
		Source:    []int{1, 2, 3, 4, 5},
		Result:    []int{1, 4, 9, 16, 25},
	}

	if err := JSONTo(&buf, data); err != nil {
		t.Fatalf("JSONTo failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, `  "transform": "square"`) {
		t.Errorf("Expected indented transform field, got: %s", output)
	}
	if !strings.Contains(output, `"count": 5`) {
		t.Errorf("Missing count field, got: %s", output)
	}
	if !strings.HasSuffix(output, "}\n") {
		t.Errorf("Expected trailing newline, got: %q", output)
	}

	var decoded MapResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Result) != 5 || decoded.Result[4] != 25 {
		t.Errorf("Result decoded as %v", decoded.Result)
	}
}

// TestJSONEmptyResult verifies an empty mapping encodes as [] rather than null.
func TestJSONEmptyResult(t *testing.T) {
	var buf bytes.Buffer

	if err := JSONTo(&buf, &MapResult{Transform: "identity", Source: []int{}, Result: []int{}}); err != nil {
		t.Fatalf("JSONTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"result": []`) {
		t.Errorf("Expected empty array, got: %s", buf.String())
	}
}

// TestJSONUnencodable verifies encoding failures are reported.
func TestJSONUnencodable(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONTo(&buf, map[string]any{"ch": make(chan int)}); err == nil {
		t.Error("Expected error for unencodable value")
	}
}

// TestJSONError verifies that JSONError produces properly formatted error JSON.
func TestJSONError(t *testing.T) {
	var buf bytes.Buffer

	if err := JSONErrorTo(&buf, errors.New("something went wrong")); err != nil {
		t.Fatalf("JSONErrorTo failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `  "error": "something went wrong"`) {
		t.Errorf("Missing indented error field, got: %s", output)
	}
	if strings.Contains(output, `"code"`) {
		t.Errorf("Empty code should be omitted, got: %s", output)
	}
}
