// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/kraklabs/seqmap/internal/config"
	"github.com/kraklabs/seqmap/pkg/mapper"
	"github.com/kraklabs/seqmap/pkg/transform"
)

// TestUserError_Error verifies the Error() method implementation.
func TestUserError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want string
	}{
		{
			name: "with underlying error",
			err: &UserError{
				Message: "Cannot read input",
				Err:     fmt.Errorf("file truncated"),
			},
			want: "Cannot read input: file truncated",
		},
		{
			name: "without underlying error",
			err: &UserError{
				Message: "Invalid input",
			},
			want: "Invalid input",
		},
		{
			name: "empty message with underlying error",
			err: &UserError{
				Err: fmt.Errorf("some error"),
			},
			want: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("UserError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestUserError_Unwrap verifies errors.Is works through UserError.
func TestUserError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := NewConfigError("msg", "cause", "fix", underlying)

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find the underlying error")
	}
	if NewInputError("m", "c", "f").Unwrap() != nil {
		t.Error("input errors should not wrap anything")
	}
}

// TestExitCodes verifies that exit code constants have the correct values.
func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		want     int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitConfig", ExitConfig, 1},
		{"ExitInput", ExitInput, 4},
		{"ExitPermission", ExitPermission, 5},
		{"ExitNotFound", ExitNotFound, 6},
		{"ExitInternal", ExitInternal, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.exitCode != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.exitCode, tt.want)
			}
		})
	}
}

// TestConstructors verifies every constructor sets the expected exit code.
func TestConstructors(t *testing.T) {
	underlying := fmt.Errorf("boom")
	tests := []struct {
		name     string
		err      *UserError
		wantCode int
		wantErr  error
	}{
		{"config", NewConfigError("m", "c", "f", underlying), ExitConfig, underlying},
		{"input", NewInputError("m", "c", "f"), ExitInput, nil},
		{"permission", NewPermissionError("m", "c", "f", underlying), ExitPermission, underlying},
		{"not found", NewNotFoundError("m", "c", "f"), ExitNotFound, nil},
		{"internal", NewInternalError("m", "c", "f", underlying), ExitInternal, underlying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", tt.err.ExitCode, tt.wantCode)
			}
			if tt.err.Err != tt.wantErr {
				t.Errorf("Err = %v, want %v", tt.err.Err, tt.wantErr)
			}
			if tt.err.Message != "m" || tt.err.Cause != "c" || tt.err.Fix != "f" {
				t.Errorf("fields not set: %+v", tt.err)
			}
		})
	}
}

// TestFromMapError verifies library sentinels map to the right categories.
func TestFromMapError(t *testing.T) {
	lengthErr := mapper.Map([]int{1, 2}, []int{0}, mapper.TransformFunc(func(v int) int { return v }))
	_, parseErr := transform.Parse("cube")

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"length mismatch", lengthErr, ExitInput, "Cannot map sequence"},
		{"nil transform", mapper.ErrNilTransform, ExitInternal, "Cannot map sequence"},
		{"unknown transform", parseErr, ExitInput, "Invalid transform expression"},
		{"empty expression", transform.ErrEmptyExpression, ExitInput, "Invalid transform expression"},
		{"unrecognized", fmt.Errorf("mystery"), ExitInternal, "Unexpected error"},
		{"already a user error", NewNotFoundError("Gone", "", ""), ExitNotFound, "Gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMapError(tt.err)
			if got == nil {
				t.Fatal("FromMapError() returned nil")
			}
			if got.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", got.ExitCode, tt.wantCode)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}

	if FromMapError(nil) != nil {
		t.Error("FromMapError(nil) should be nil")
	}
	if !errors.Is(FromMapError(lengthErr), mapper.ErrLengthMismatch) {
		t.Error("length mismatch sentinel should stay reachable through the chain")
	}
}

// TestFromConfigError verifies config failures map to the right categories.
func TestFromConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", fmt.Errorf("%w: x.yaml", config.ErrNotFound), ExitNotFound},
		{"permission", fmt.Errorf("read config: %w", fs.ErrPermission), ExitPermission},
		{"invalid", fmt.Errorf("%w: workers", config.ErrInvalid), ExitConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromConfigError(tt.err, "x.yaml")
			if got.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", got.ExitCode, tt.wantCode)
			}
		})
	}

	if FromConfigError(nil, "") != nil {
		t.Error("FromConfigError(nil) should be nil")
	}
}

// TestUserError_Format verifies the Format() method implementation.
func TestUserError_Format(t *testing.T) {
	tests := []struct {
		name    string
		err     *UserError
		want    []string
		notWant []string
	}{
		{
			name: "full error",
			err: &UserError{
				Message:  "Cannot read input values",
				Cause:    "Token \"x\" is not an integer",
				Fix:      "Pass integers only",
				ExitCode: ExitInput,
			},
			want: []string{"Error: Cannot read input values", "Cause: Token \"x\" is not an integer", "Fix:   Pass integers only"},
		},
		{
			name: "error without cause",
			err: &UserError{
				Message:  "Invalid input",
				Fix:      "Use valid format",
				ExitCode: ExitInput,
			},
			want:    []string{"Error: Invalid input", "Fix:   Use valid format"},
			notWant: []string{"Cause:"},
		},
		{
			name: "minimal error (message only)",
			err: &UserError{
				Message:  "Something failed",
				ExitCode: ExitInternal,
			},
			want:    []string{"Error: Something failed"},
			notWant: []string{"Cause:", "Fix:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(true)
			for _, substr := range tt.want {
				if !strings.Contains(got, substr) {
					t.Errorf("Format() output missing %q\nGot: %s", substr, got)
				}
			}
			for _, substr := range tt.notWant {
				if strings.Contains(got, substr) {
					t.Errorf("Format() output should not contain %q\nGot: %s", substr, got)
				}
			}
		})
	}
}

// TestUserError_Format_NoColor verifies that NO_COLOR environment variable is respected.
func TestUserError_Format_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	err := &UserError{Message: "Test error", Cause: "Test cause", Fix: "Test fix", ExitCode: ExitConfig}
	output := err.Format(false)

	if strings.Contains(output, "\x1b[") {
		t.Error("Format() output contains ANSI codes despite NO_COLOR being set")
	}
}

// TestReport verifies the exit code and rendering chosen for each error kind.
func TestReport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("nil error", func(t *testing.T) {
		var buf bytes.Buffer
		if code := Report(&buf, nil, false); code != ExitSuccess {
			t.Errorf("Report(nil) = %d, want %d", code, ExitSuccess)
		}
		if buf.Len() != 0 {
			t.Errorf("Report(nil) wrote %q", buf.String())
		}
	})

	t.Run("user error text", func(t *testing.T) {
		var buf bytes.Buffer
		code := Report(&buf, NewInputError("Bad values", "x is not an integer", "Use integers"), false)
		if code != ExitInput {
			t.Errorf("code = %d, want %d", code, ExitInput)
		}
		if !strings.Contains(buf.String(), "Error: Bad values") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	t.Run("user error json", func(t *testing.T) {
		var buf bytes.Buffer
		code := Report(&buf, fmt.Errorf("wrapped: %w", NewNotFoundError("Missing", "no file", "create it")), true)
		if code != ExitNotFound {
			t.Errorf("code = %d, want %d", code, ExitNotFound)
		}
		var got ErrorJSON
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
		}
		if got.Error != "Missing" || got.ExitCode != ExitNotFound {
			t.Errorf("unexpected JSON: %+v", got)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		if code := Report(&buf, fmt.Errorf("generic"), false); code != ExitInternal {
			t.Errorf("code = %d, want %d", code, ExitInternal)
		}
		if buf.String() != "Error: generic\n" {
			t.Errorf("output = %q", buf.String())
		}
	})
}

// TestFatalError verifies FatalError returns for a nil error.
// The exit path is covered through Report.
func TestFatalError(t *testing.T) {
	FatalError(nil, false)
}
