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

// Package testing provides test helpers for seqmap packages and the CLI.
//
// # Quick Start
//
//	func TestMyFeature(t *testing.T) {
//	    src := testing.Sequence(-3, 3)          // [-3 -2 -1 0 1 2]
//	    dst, err := mapper.Apply(src, transform.Square{})
//	    require.NoError(t, err)
//	    testing.RequireMapped(t, src, dst, transform.Square{})
//	}
//
// # Fixtures
//
//   - Sequence: a contiguous integer range
//   - WriteConfig: a .seqmap/config.yaml inside a temp project directory
//   - WriteInput: a temp input file for the map command
//
// # Assertions
//
//   - RequireMapped: dst[i] == fn(src[i]) for every index
//
// # Output Capture
//
//   - CaptureStdout: run a function and return everything it wrote to os.Stdout
package testing
