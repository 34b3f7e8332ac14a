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

// Package transform provides named integer transformations for the mapper.
//
// Every type here implements mapper.Transformer and holds no mutable state,
// so values are safe to share across goroutines and with
// mapper.MapConcurrent.
//
// Transformations can be built directly:
//
//	t := transform.Chain{transform.Square{}, transform.NewOffset(10)}
//	t.Transform(3) // 19
//
// or parsed from an expression, as the CLI does:
//
//	t, err := transform.Parse("square, add:10")
//
// Each type's String method returns an expression that Parse accepts.
package transform

import (
	"strconv"
	"strings"

	"github.com/kraklabs/seqmap/pkg/mapper"
)

// Compile-time interface checks.
var (
	_ mapper.Transformer = Identity{}
	_ mapper.Transformer = Square{}
	_ mapper.Transformer = Negate{}
	_ mapper.Transformer = Offset{}
	_ mapper.Transformer = Scale{}
	_ mapper.Transformer = Chain{}
)

// Identity returns its input unchanged.
type Identity struct{}

func (Identity) Transform(v int) int { return v }
func (Identity) String() string      { return "identity" }

// Square returns v*v.
type Square struct{}

func (Square) Transform(v int) int { return v * v }
func (Square) String() string      { return "square" }

// Negate returns -v.
type Negate struct{}

func (Negate) Transform(v int) int { return -v }
func (Negate) String() string      { return "negate" }

// Offset adds a fixed base to every value. The base is captured when the
// Offset is created and never changes afterwards.
type Offset struct {
	Base int
}

// NewOffset returns an Offset that adds base to its input.
func NewOffset(base int) Offset {
	return Offset{Base: base}
}

// Transform returns o.Base + v.
func (o Offset) Transform(v int) int { return o.Base + v }

func (o Offset) String() string { return "add:" + strconv.Itoa(o.Base) }

// Scale multiplies every value by a fixed factor.
type Scale struct {
	Factor int
}

// Transform returns s.Factor * v.
func (s Scale) Transform(v int) int { return s.Factor * v }

func (s Scale) String() string { return "mul:" + strconv.Itoa(s.Factor) }

// Chain applies its transformers left to right. An empty Chain is the identity.
type Chain []mapper.Transformer

// Transform feeds v through every transformer in order.
func (c Chain) Transform(v int) int {
	for _, t := range c {
		v = t.Transform(v)
	}
	return v
}

func (c Chain) String() string {
	if len(c) == 0 {
		return Identity{}.String()
	}
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = Describe(t)
	}
	return strings.Join(parts, ",")
}

// Describe returns the expression for t when it knows one, or "custom" for
// transformers defined outside this package.
func Describe(t mapper.Transformer) string {
	if s, ok := t.(interface{ String() string }); ok {
		return s.String()
	}
	return "custom"
}
