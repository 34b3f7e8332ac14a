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

// Package config loads and saves the seqmap project configuration.
//
// The configuration lives in .seqmap/config.yaml and supplies defaults for
// the map command:
//
//	version: "1"
//	transform: square
//	values: [1, 2, 3, 4, 5]
//	workers: 0
//	chunk_size: 4096
//
// # Discovery
//
// Load with an empty path searches the working directory and its parents
// for .seqmap/config.yaml. When none is found the built-in defaults are
// used; this is not an error. An explicit path that does not exist is
// reported as ErrNotFound.
//
//	cfg, err := config.Load("", logger)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Transform)
//
// # Environment Overrides
//
// After the file is read, these variables take precedence:
//
//   - SEQMAP_TRANSFORM: transform expression
//   - SEQMAP_WORKERS: worker count (non-negative integer)
//
// # Validation
//
// Loaded configurations are validated: the transform must parse, workers
// must be non-negative and chunk_size must be positive. Unknown YAML
// fields are rejected so typos surface early. Failures wrap ErrInvalid.
package config
