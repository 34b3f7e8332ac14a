// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package contract

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultMaxValues is the baseline soft limit on sequence length.
	DefaultMaxValues = 1 << 24 // 16 Mi elements

	// EnvMaxValues overrides DefaultMaxValues.
	EnvMaxValues = "SEQMAP_MAX_VALUES"
)

// MaxValues returns the effective soft limit on sequence length.
// Controlled via env SEQMAP_MAX_VALUES; falls back to DefaultMaxValues.
func MaxValues() int {
	if v := os.Getenv(EnvMaxValues); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxValues
}

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	OK      bool
	Message string
}

// ValidateSequence checks a sequence length against the soft limit.
func ValidateSequence(n int) *ValidationResult {
	if limit := MaxValues(); n > limit {
		return &ValidationResult{
			OK:      false,
			Message: fmt.Sprintf("sequence has %d values, soft limit is %d", n, limit),
		}
	}
	return &ValidationResult{OK: true}
}
