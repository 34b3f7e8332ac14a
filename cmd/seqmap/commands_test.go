// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/seqmap/internal/config"
	"github.com/kraklabs/seqmap/internal/errors"
	"github.com/kraklabs/seqmap/internal/output"
	seqtesting "github.com/kraklabs/seqmap/internal/testing"
	"github.com/kraklabs/seqmap/internal/ui"
	"github.com/kraklabs/seqmap/pkg/transform"
)

func TestRunTransformsText(t *testing.T) {
	var err error
	out := seqtesting.CaptureStdout(t, func() {
		err = runTransforms(nil, GlobalFlags{})
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(transform.Catalog())+1, "header plus one row per transform")
	for _, usage := range []string{"identity", "square", "negate", "add:N", "mul:N"} {
		assert.Contains(t, out, usage)
	}
}

func TestRunTransformsJSON(t *testing.T) {
	for _, tc := range []struct {
		name    string
		args    []string
		globals GlobalFlags
	}{
		{"command flag", []string{"--json"}, GlobalFlags{}},
		{"global flag", nil, GlobalFlags{JSON: true}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			out := seqtesting.CaptureStdout(t, func() {
				err = runTransforms(tc.args, tc.globals)
			})
			require.NoError(t, err)

			var got []transform.Entry
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			require.Len(t, got, 5)
			assert.Equal(t, "add", got[0].Name)
			assert.Equal(t, "add:N", got[0].Usage)
		})
	}
}

func TestRunDemo(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"square one to five", nil, "1\n4\n9\n16\n25\n"},
		{"offset", []string{"--offset"}, "333\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			out := seqtesting.CaptureStdout(t, func() {
				err = runDemo(tt.args, GlobalFlags{})
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunDemoJSON(t *testing.T) {
	var err error
	out := seqtesting.CaptureStdout(t, func() {
		err = runDemo([]string{"--offset"}, GlobalFlags{JSON: true})
	})
	require.NoError(t, err)

	var got output.MapResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "add:111", got.Transform)
	assert.Equal(t, []int{222}, got.Source)
	assert.Equal(t, []int{333}, got.Result)
}

func TestRunDemoDoesNotMutateValues(t *testing.T) {
	seqtesting.CaptureStdout(t, func() {
		require.NoError(t, runDemo(nil, GlobalFlags{}))
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, demoValues)
}

func TestRunInitNonInteractive(t *testing.T) {
	dir := isolate(t)

	err := runInit([]string{"-y"}, GlobalFlags{Quiet: true}, strings.NewReader(""))
	require.NoError(t, err)

	cfg, err := config.Load(config.Path(dir), nil)
	require.NoError(t, err)
	assert.Equal(t, "square", cfg.Transform)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.Values)
}

func TestRunInitPrompt(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{"answer replaces default", "add:5\n", "add:5"},
		{"empty answer keeps default", "\n", "square"},
		{"end of input keeps default", "", "square"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)

			err := runInit(nil, GlobalFlags{Quiet: true}, strings.NewReader(tt.answer))
			require.NoError(t, err)

			cfg, err := config.Load(config.Path(dir), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Transform)
		})
	}
}

func TestRunInitRejectsInvalidTransform(t *testing.T) {
	dir := isolate(t)

	err := runInit(nil, GlobalFlags{Quiet: true}, strings.NewReader("cube\n"))
	require.Error(t, err)
	assert.Equal(t, errors.ExitInput, exitCode(err))

	_, statErr := os.Stat(config.Path(dir))
	assert.True(t, os.IsNotExist(statErr), "no config should be written")
}

func TestRunInitExisting(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, runInit([]string{"-y"}, GlobalFlags{Quiet: true}, strings.NewReader("")))

	err := runInit([]string{"-y", "-t", "negate"}, GlobalFlags{Quiet: true}, strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, errors.ExitInput, exitCode(err))

	require.NoError(t, runInit([]string{"-y", "--force", "-t", "negate"}, GlobalFlags{Quiet: true}, strings.NewReader("")))
	cfg, err := config.Load(config.Path(dir), nil)
	require.NoError(t, err)
	assert.Equal(t, "negate", cfg.Transform)
}

func TestRunInitUnexpectedArgs(t *testing.T) {
	isolate(t)

	err := runInit([]string{"-y", "extra"}, GlobalFlags{}, strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, errors.ExitInput, exitCode(err))
}

func TestRunCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		t.Run(shell, func(t *testing.T) {
			var err error
			out := seqtesting.CaptureStdout(t, func() {
				err = runCompletion([]string{shell})
			})
			require.NoError(t, err)
			assert.Contains(t, out, "seqmap")
			for _, cmd := range []string{"map", "transforms", "demo", "init", "completion"} {
				assert.Contains(t, out, cmd)
			}
		})
	}
}

func TestRunCompletionErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing shell", nil},
		{"too many arguments", []string{"bash", "zsh"}},
		{"unsupported shell", []string{"powershell"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCompletion(tt.args)
			require.Error(t, err)
			assert.Equal(t, errors.ExitInput, exitCode(err))
		})
	}
}

func TestRunInitPromptHint(t *testing.T) {
	dir := isolate(t)

	var buf bytes.Buffer
	prev := ui.SetOutput(&buf)
	defer ui.SetOutput(prev)

	require.NoError(t, runInit(nil, GlobalFlags{NoColor: true}, strings.NewReader("negate\n")))
	assert.Contains(t, buf.String(), "Press Enter to keep the default")
	assert.Contains(t, buf.String(), "Next steps")

	cfg, err := config.Load(config.Path(dir), nil)
	require.NoError(t, err)
	assert.Equal(t, "negate", cfg.Transform)
}
