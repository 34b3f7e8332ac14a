// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package testing

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kraklabs/seqmap/internal/config"
	"github.com/kraklabs/seqmap/pkg/mapper"
)

// Sequence returns the integers in [lo, hi). It returns an empty slice
// when hi <= lo.
//
// Example:
//
//	testing.Sequence(1, 6) // [1 2 3 4 5]
func Sequence(lo, hi int) []int {
	if hi <= lo {
		return []int{}
	}
	s := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		s = append(s, v)
	}
	return s
}

// WriteConfig creates a project directory containing .seqmap/config.yaml
// with the given YAML content and returns the project directory.
//
// Example:
//
//	dir := testing.WriteConfig(t, "transform: negate\nvalues: [1, 2]\n")
//	cfg, err := config.Load(config.Path(dir), nil)
func WriteConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := config.Path(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "failed to create config dir")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "failed to write config")
	return dir
}

// WriteInput writes content to a temp file and returns its path.
//
// Example:
//
//	path := testing.WriteInput(t, "1 2 3\n4,5\n")
func WriteInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "failed to write input")
	return path
}

// RequireMapped fails the test unless dst has the same length as src and
// dst[i] == fn.Transform(src[i]) for every index.
func RequireMapped(t *testing.T, src, dst []int, fn mapper.Transformer) {
	t.Helper()

	require.Len(t, dst, len(src), "destination length")
	for i, v := range src {
		require.Equal(t, fn.Transform(v), dst[i], "index %d (source %d)", i, v)
	}
}

// CaptureStdout runs fn with os.Stdout redirected and returns what it wrote.
// os.Stdout is restored before returning.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err, "failed to create pipe")

	orig := os.Stdout
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.Bytes()
	}()

	defer func() {
		os.Stdout = orig
	}()

	fn()

	_ = w.Close()
	out := <-done
	_ = r.Close()
	return string(out)
}
