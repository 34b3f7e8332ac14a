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

package mapper

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

var (
	// ErrLengthMismatch is returned when source and destination differ in length.
	ErrLengthMismatch = errors.New("source and destination lengths differ")

	// ErrNilTransform is returned when no transformer is supplied.
	ErrNilTransform = errors.New("transform is nil")
)

// Transformer maps one integer to one integer.
type Transformer interface {
	Transform(v int) int
}

// TransformFunc adapts an ordinary function to the Transformer interface.
type TransformFunc func(v int) int

// Transform calls f(v).
func (f TransformFunc) Transform(v int) int {
	return f(v)
}

// Map writes fn.Transform(source[i]) into destination[i] for every index.
//
// Arguments are validated before any write: a nil transformer yields
// ErrNilTransform and unequal lengths yield ErrLengthMismatch, leaving
// destination untouched in both cases. source is only read; passing the
// same slice for both arguments maps it in place.
func Map(source, destination []int, fn Transformer) error {
	start := time.Now()
	if err := validate(source, destination, fn); err != nil {
		return err
	}

	for i, v := range source {
		destination[i] = fn.Transform(v)
	}

	recordCall(len(source), time.Since(start))
	return nil
}

// Apply maps source into a freshly allocated slice of the same length.
// An empty source yields an empty, non-nil slice.
func Apply(source []int, fn Transformer) ([]int, error) {
	destination := make([]int, len(source))
	if err := Map(source, destination, fn); err != nil {
		return nil, err
	}
	return destination, nil
}

// validate checks the preconditions shared by Map and MapConcurrent and
// records the failure reason in metrics.
func validate(source, destination []int, fn Transformer) error {
	if isNil(fn) {
		recordError(reasonNilTransform)
		return ErrNilTransform
	}
	if len(source) != len(destination) {
		recordError(reasonLengthMismatch)
		return fmt.Errorf("%w: source has %d elements, destination has %d",
			ErrLengthMismatch, len(source), len(destination))
	}
	return nil
}

// isNil reports whether fn is a nil interface, or holds a nil pointer or
// nil func. Nil slices and maps are valid receivers and are not rejected.
func isNil(fn Transformer) bool {
	if fn == nil {
		return true
	}
	switch v := reflect.ValueOf(fn); v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
