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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/seqmap/pkg/mapper"
	"github.com/kraklabs/seqmap/pkg/transform"
)

const (
	// DirName is the per-project configuration directory.
	DirName = ".seqmap"

	// FileName is the configuration file inside DirName.
	FileName = "config.yaml"

	// CurrentVersion is written into new configuration files.
	CurrentVersion = "1"

	EnvTransform = "SEQMAP_TRANSFORM"
	EnvWorkers   = "SEQMAP_WORKERS"
)

var (
	// ErrNotFound is returned when an explicitly requested config file is missing.
	ErrNotFound = errors.New("config file not found")

	// ErrInvalid wraps every validation and parse failure.
	ErrInvalid = errors.New("invalid configuration")
)

// Config holds the defaults used by the map command.
type Config struct {
	// Version is the configuration schema version.
	Version string `yaml:"version"`

	// Transform is a transform expression, e.g. "square" or "square,add:1".
	Transform string `yaml:"transform"`

	// Values is the sequence mapped when none is given on the command line.
	Values []int `yaml:"values"`

	// Workers selects MapConcurrent when > 0.
	Workers int `yaml:"workers"`

	// ChunkSize is the number of elements per concurrent work unit.
	ChunkSize int `yaml:"chunk_size"`
}

// Default returns the built-in configuration: squaring 1 through 5.
func Default() *Config {
	return &Config{
		Version:   CurrentVersion,
		Transform: "square",
		Values:    []int{1, 2, 3, 4, 5},
		Workers:   0,
		ChunkSize: mapper.DefaultChunkSize,
	}
}

// Path returns the configuration file path for a project directory.
func Path(dir string) string {
	return filepath.Join(dir, DirName, FileName)
}

// Find searches dir and its parents for a configuration file.
// Returns ErrNotFound if the filesystem root is reached without a match.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	for {
		p := Path(dir)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Load reads the configuration at path, or discovers one when path is
// empty, then applies environment overrides and validates the result.
//
// Parameters:
//   - path: explicit config file, or "" to search from the working directory
//   - logger: optional logger (nil uses default)
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := Default()

	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working dir: %w", err)
		}
		found, err := Find(cwd)
		switch {
		case errors.Is(err, ErrNotFound):
			logger.Debug("config.load.defaults", "cwd", cwd)
		case err != nil:
			return nil, err
		default:
			path = found
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
		logger.Debug("config.load.file", "path", path)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("config.load.done",
		"transform", cfg.Transform,
		"values", len(cfg.Values),
		"workers", cfg.Workers,
	)
	return cfg, nil
}

// decode parses YAML on top of the defaults already in cfg. An empty
// document leaves cfg unchanged.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvTransform); v != "" {
		cfg.Transform = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvWorkers, v)
		}
		cfg.Workers = n
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := transform.Parse(c.Transform); err != nil {
		return fmt.Errorf("%w: transform: %v", ErrInvalid, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk_size must be >= 1, got %d", ErrInvalid, c.ChunkSize)
	}
	return nil
}

// Save writes cfg as YAML to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	header := []byte("# seqmap configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
