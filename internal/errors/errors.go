// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package errors provides structured error handling for the seqmap CLI.
//
// This package defines UserError, a type that carries structured error information
// including what went wrong, why it happened, and how to fix it. It also defines
// consistent exit codes for different error categories.
//
// # Usage Example
//
// Creating and displaying errors:
//
//	err := errors.NewInputError(
//	    "Cannot read input values",
//	    "Token \"x\" on line 3 is not an integer",
//	    "Pass whitespace or comma separated integers",
//	)
//	errors.FatalError(err, false)
//
// Library errors from the mapper and transform packages are translated with
// FromMapError, which attaches an actionable fix:
//
//	if err := mapper.Map(src, dst, fn); err != nil {
//	    errors.FatalError(errors.FromMapError(err), jsonMode)
//	}
//
// # Formatted Output
//
// The Format() method provides colored terminal output:
//
//	fmt.Fprint(os.Stderr, err.Format(false))
//	// Output (with colors):
//	// Error: Cannot read input values
//	// Cause: Token "x" on line 3 is not an integer
//	// Fix:   Pass whitespace or comma separated integers
//
// For JSON output:
//
//	jsonData := err.ToJSON()
//	json.NewEncoder(os.Stderr).Encode(jsonData)
//	// Output:
//	// {
//	//   "error": "Cannot read input values",
//	//   "cause": "Token \"x\" on line 3 is not an integer",
//	//   "fix": "Pass whitespace or comma separated integers",
//	//   "exit_code": 4
//	// }
//
// # Exit Codes
//
// The package defines semantic exit codes following Unix conventions:
//   - ExitSuccess (0): Successful execution
//   - ExitConfig (1): Configuration errors (missing/invalid config)
//   - ExitInput (4): Invalid user input (bad values, bad transform, length mismatch)
//   - ExitPermission (5): Permission denied (file access, etc.)
//   - ExitNotFound (6): Resource not found (input file, config file)
//   - ExitInternal (10): Internal errors (bugs, panics)
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kraklabs/seqmap/internal/config"
	"github.com/kraklabs/seqmap/pkg/mapper"
	"github.com/kraklabs/seqmap/pkg/transform"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConfig indicates configuration errors (missing/invalid config files).
	ExitConfig = 1

	// ExitInput indicates invalid user input (bad arguments, validation errors).
	ExitInput = 4

	// ExitPermission indicates permission denied errors (file access, etc.).
	ExitPermission = 5

	// ExitNotFound indicates resource not found errors (input file, config file).
	ExitNotFound = 6

	// ExitInternal indicates internal errors (bugs, unexpected panics).
	// Exit code 10 signals "this is a bug that should be reported".
	ExitInternal = 10
)

// UserError represents an error with structured context for end users.
//
// It provides three levels of information:
//   - Message: What went wrong (user-facing error description)
//   - Cause: Why it happened (diagnostic information)
//   - Fix: How to fix it (actionable suggestion)
//
// UserError also carries an exit code for consistent CLI exit behavior
// and optionally wraps an underlying error for error chain compatibility.
type UserError struct {
	// Message describes what went wrong in user-friendly language.
	Message string

	// Cause explains why the error occurred (diagnostic information).
	Cause string

	// Fix provides an actionable suggestion on how to resolve the error.
	Fix string

	// ExitCode is the exit code that should be used when exiting due to this error.
	ExitCode int

	// Err is the underlying error that caused this error (optional).
	// This enables error wrapping and compatibility with errors.Is/As.
	Err error
}

// Error implements the error interface.
//
// It returns a simple error message string. If an underlying error is present,
// it appends that error's message for context.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements error unwrapping for compatibility with errors.Is and errors.As.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error with exit code ExitConfig.
//
// Use this for errors related to missing, invalid, or malformed configuration files.
func NewConfigError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitConfig,
		Err:      err,
	}
}

// NewInputError creates an input validation error with exit code ExitInput.
//
// Use this for errors related to invalid user input, such as bad command-line
// arguments or failed validation checks. Input errors typically do not wrap
// an underlying error.
func NewInputError(msg, cause, fix string) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInput,
		Err:      nil, // Input errors typically don't wrap underlying errors
	}
}

// NewPermissionError creates a permission denied error with exit code ExitPermission.
func NewPermissionError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitPermission,
		Err:      err,
	}
}

// NewNotFoundError creates a resource not found error with exit code ExitNotFound.
func NewNotFoundError(msg, cause, fix string) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitNotFound,
		Err:      nil, // Not found errors typically don't wrap underlying errors
	}
}

// NewInternalError creates an internal error with exit code ExitInternal.
//
// Use this for unexpected errors that indicate bugs in the program.
// Internal errors should be reported to the maintainers.
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInternal,
		Err:      err,
	}
}

// FromMapError translates errors from the mapper and transform packages
// into user errors. Unrecognized errors become internal errors.
// Returns nil for a nil error.
func FromMapError(err error) *UserError {
	if err == nil {
		return nil
	}

	var ue *UserError
	if stderrors.As(err, &ue) {
		return ue
	}

	switch {
	case stderrors.Is(err, mapper.ErrLengthMismatch):
		e := NewInputError(
			"Cannot map sequence",
			err.Error(),
			"Provide a destination with the same length as the source",
		)
		e.Err = err
		return e
	case stderrors.Is(err, mapper.ErrNilTransform):
		return NewInternalError(
			"Cannot map sequence",
			"No transform was supplied to the mapper",
			"This is a bug. Please report it with the command you ran",
			err,
		)
	case stderrors.Is(err, transform.ErrEmptyExpression),
		stderrors.Is(err, transform.ErrUnknownTransform),
		stderrors.Is(err, transform.ErrInvalidArgument):
		e := NewInputError(
			"Invalid transform expression",
			err.Error(),
			"Run 'seqmap transforms' to list valid expressions, e.g. square or add:10",
		)
		e.Err = err
		return e
	}

	return NewInternalError(
		"Unexpected error",
		err.Error(),
		"This is a bug. Please report it with the command you ran",
		err,
	)
}

// FromConfigError translates errors returned by config.Load and config.Save.
func FromConfigError(err error, path string) *UserError {
	if err == nil {
		return nil
	}

	if path == "" {
		path = config.Path(".")
	}

	switch {
	case stderrors.Is(err, config.ErrNotFound):
		return NewNotFoundError(
			"Configuration file not found",
			err.Error(),
			"Run 'seqmap init' to create "+path+" or omit --config to use defaults",
		)
	case stderrors.Is(err, os.ErrPermission):
		return NewPermissionError(
			"Cannot access configuration",
			fmt.Sprintf("Permission denied for %s", path),
			"Check the file permissions or pass a different --config path",
			err,
		)
	}

	return NewConfigError(
		"Cannot load seqmap configuration",
		err.Error(),
		"Fix the file or recreate it with 'seqmap init --force'",
		err,
	)
}

// Color definitions for error formatting.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format returns a formatted error message for terminal display.
//
// The output includes colored sections for Error (red/bold), Cause (yellow),
// and Fix (green). Color output respects the NO_COLOR environment variable
// and can be explicitly disabled with the noColor parameter.
//
// Empty Cause or Fix fields are omitted from the output.
//
// Note: This method temporarily modifies the global color.NoColor state
// and restores it after formatting.
func (e *UserError) Format(noColor bool) string {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}

// Report writes err to w and returns the exit code the process should use.
//
// A UserError is rendered with Format() or, in JSON mode, ToJSON(). Any
// other error is printed plainly and maps to ExitInternal. A nil error
// writes nothing and returns ExitSuccess.
func Report(w io.Writer, err error, jsonOutput bool) int {
	if err == nil {
		return ExitSuccess
	}

	var ue *UserError
	if stderrors.As(err, &ue) {
		if jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			// Encode error is intentionally ignored since the caller is about to exit.
			_ = enc.Encode(ue.ToJSON())
		} else {
			fmt.Fprint(w, ue.Format(false))
		}
		return ue.ExitCode
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	return ExitInternal
}

// FatalError prints the error to stderr and exits with the appropriate code.
//
// This function never returns for a non-nil error - it always calls os.Exit().
//
// Usage:
//
//	if err := doSomething(); err != nil {
//	    errors.FatalError(err, jsonMode)
//	}
func FatalError(err error, jsonOutput bool) {
	if err == nil {
		return
	}
	os.Exit(Report(os.Stderr, err, jsonOutput))
}
