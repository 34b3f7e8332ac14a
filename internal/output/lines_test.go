// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package output

import (
	"bytes"
	"errors"
	"testing"
)

// TestIntegersTo verifies one decimal integer per line, in index order.
func TestIntegersTo(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{"squares", []int{1, 4, 9, 16, 25}, "1\n4\n9\n16\n25\n"},
		{"negatives and zero", []int{8, 10, 13, -5, 0}, "8\n10\n13\n-5\n0\n"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := IntegersTo(&buf, tt.values); err != nil {
				t.Fatalf("IntegersTo failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("IntegersTo() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestIntegersToWriteError(t *testing.T) {
	if err := IntegersTo(failingWriter{}, []int{1}); err == nil {
		t.Error("expected write error to be reported")
	}
}
