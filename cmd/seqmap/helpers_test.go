// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"io"
	"os"
	"testing"

	"github.com/kraklabs/seqmap/internal/config"
	"github.com/kraklabs/seqmap/internal/contract"
	"github.com/kraklabs/seqmap/internal/errors"
)

// isolate runs the test from an empty directory with seqmap environment
// overrides cleared, so config discovery falls back to defaults.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv(config.EnvTransform, "")
	t.Setenv(config.EnvWorkers, "")
	t.Setenv(contract.EnvMaxValues, "")
	return dir
}

// exitCode returns the process exit code err would produce.
func exitCode(err error) int {
	return errors.Report(io.Discard, err, false)
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
