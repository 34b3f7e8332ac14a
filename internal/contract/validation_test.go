// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxValues(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected int
	}{
		{"unset", "", DefaultMaxValues},
		{"valid override", "1000", 1000},
		{"zero ignored", "0", DefaultMaxValues},
		{"negative ignored", "-5", DefaultMaxValues},
		{"garbage ignored", "lots", DefaultMaxValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvMaxValues, tt.env)
			assert.Equal(t, tt.expected, MaxValues())
		})
	}
}

func TestValidateSequence(t *testing.T) {
	t.Setenv(EnvMaxValues, "5")

	assert.True(t, ValidateSequence(0).OK)
	assert.True(t, ValidateSequence(5).OK)

	res := ValidateSequence(6)
	assert.False(t, res.OK)
	assert.Equal(t, "sequence has 6 values, soft limit is 5", res.Message)
}
