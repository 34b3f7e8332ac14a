// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 64 << 20

// valueError reports a token that is not a decimal integer.
type valueError struct {
	Line  int
	Token string
}

func (e *valueError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q is not an integer", e.Line, e.Token)
	}
	return fmt.Sprintf("%q is not an integer", e.Token)
}

// limitError reports input that holds more values than allowed.
type limitError struct {
	Line  int
	Limit int
}

func (e *limitError) Error() string {
	return fmt.Sprintf("line %d: input exceeds the limit of %d values", e.Line, e.Limit)
}

// splitValues splits on whitespace and commas, dropping empty fields.
func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
}

// parseArgs converts positional command-line arguments to integers. Each
// argument may itself hold several comma-separated values.
func parseArgs(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		for _, tok := range splitValues(arg) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &valueError{Token: tok}
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// readValues reads integers separated by whitespace or commas. Blank lines
// and lines starting with '#' are skipped. Reading stops with a limitError
// as soon as more than limit values are seen; limit <= 0 means unbounded.
func readValues(r io.Reader, limit int) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	values := []int{}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, tok := range splitValues(text) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &valueError{Line: line, Token: tok}
			}
			if limit > 0 && len(values) == limit {
				return nil, &limitError{Line: line, Limit: limit}
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return values, nil
}
