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

// Package mapper applies an integer transformation elementwise across a
// sequence.
//
// The central operation is Map, which writes transform(source[i]) into
// destination[i] for every index of two equal-length slices:
//
//	source := []int{1, 2, 3, 4, 5}
//	dest := make([]int, len(source))
//	err := mapper.Map(source, dest, mapper.TransformFunc(func(v int) int {
//	    return v * v
//	}))
//	// dest == []int{1, 4, 9, 16, 25}
//
// # Transformers
//
// Any type with a Transform(int) int method is a Transformer. Plain
// functions are adapted with TransformFunc, so a signature mismatch is a
// compile error rather than a runtime surprise.
//
// # Errors
//
// Map validates its arguments before touching the destination:
//
//   - ErrNilTransform: the transformer is nil
//   - ErrLengthMismatch: len(source) != len(destination)
//
// Both are sentinel errors; use errors.Is to inspect them.
//
// # Concurrency
//
// Map is synchronous and allocation-free. MapConcurrent splits the index
// range into contiguous chunks and maps them on a bounded set of goroutines.
// Each index is written by exactly one worker, so no locking is involved,
// but the transformer must be free of shared mutable state.
//
// # Metrics
//
// Every call is recorded in Prometheus collectors registered on the default
// registry (seqmap_mapper_*).
package mapper
