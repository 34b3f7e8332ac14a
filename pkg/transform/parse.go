// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package transform

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kraklabs/seqmap/pkg/mapper"
)

var (
	// ErrEmptyExpression is returned for an empty expression or an empty term.
	ErrEmptyExpression = errors.New("empty transform expression")

	// ErrUnknownTransform is returned when a term names no known transform.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrInvalidArgument is returned when a term's argument is missing,
	// unexpected, or not an integer.
	ErrInvalidArgument = errors.New("invalid transform argument")
)

// Entry describes one transform available to Parse.
type Entry struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Usage       string   `json:"usage"`
	Description string   `json:"description"`

	// build constructs the transformer. hasArg reports whether the term
	// requires an integer argument.
	build  func(arg int) mapper.Transformer
	hasArg bool
}

var entries = []Entry{
	{
		Name:        "identity",
		Aliases:     []string{"id"},
		Usage:       "identity",
		Description: "Return each value unchanged",
		build:       func(int) mapper.Transformer { return Identity{} },
	},
	{
		Name:        "square",
		Aliases:     []string{"sq"},
		Usage:       "square",
		Description: "Multiply each value by itself",
		build:       func(int) mapper.Transformer { return Square{} },
	},
	{
		Name:        "negate",
		Aliases:     []string{"neg"},
		Usage:       "negate",
		Description: "Flip the sign of each value",
		build:       func(int) mapper.Transformer { return Negate{} },
	},
	{
		Name:        "add",
		Aliases:     []string{"offset"},
		Usage:       "add:N",
		Description: "Add N to each value",
		build:       func(n int) mapper.Transformer { return NewOffset(n) },
		hasArg:      true,
	},
	{
		Name:        "mul",
		Aliases:     []string{"scale"},
		Usage:       "mul:N",
		Description: "Multiply each value by N",
		build:       func(n int) mapper.Transformer { return Scale{Factor: n} },
		hasArg:      true,
	},
}

// byName indexes entries by name and alias.
var byName = func() map[string]*Entry {
	m := make(map[string]*Entry)
	for i := range entries {
		e := &entries[i]
		m[e.Name] = e
		for _, a := range e.Aliases {
			m[a] = e
		}
	}
	return m
}()

// Catalog returns the available transforms sorted by name.
func Catalog() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Parse builds a transformer from a comma-separated list of terms, each
// either "name" or "name:N". Names are case-insensitive and whitespace
// around terms is ignored. A single term yields that transformer; several
// terms yield a Chain applied left to right.
//
// Examples:
//
//	Parse("square")          // Square{}
//	Parse("add:10")          // Offset{Base: 10}
//	Parse("square, add:-1")  // Chain{Square{}, Offset{Base: -1}}
func Parse(expr string) (mapper.Transformer, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyExpression
	}

	terms := strings.Split(expr, ",")
	chain := make(Chain, 0, len(terms))
	for i, term := range terms {
		t, err := parseTerm(term)
		if err != nil {
			if errors.Is(err, ErrEmptyExpression) {
				return nil, fmt.Errorf("%w: term %d of %q", ErrEmptyExpression, i+1, expr)
			}
			return nil, err
		}
		chain = append(chain, t)
	}

	if len(chain) == 1 {
		return chain[0], nil
	}
	return chain, nil
}

// MustParse is like Parse but panics on error. Intended for fixed
// expressions in code and tests.
func MustParse(expr string) mapper.Transformer {
	t, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return t
}

func parseTerm(term string) (mapper.Transformer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyExpression
	}

	name, rawArg, hasArg := strings.Cut(term, ":")
	name = strings.ToLower(strings.TrimSpace(name))

	e, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}

	switch {
	case e.hasArg && !hasArg:
		return nil, fmt.Errorf("%w: %s requires an integer, use %s", ErrInvalidArgument, e.Name, e.Usage)
	case !e.hasArg && hasArg:
		return nil, fmt.Errorf("%w: %s takes no argument", ErrInvalidArgument, e.Name)
	case !e.hasArg:
		return e.build(0), nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(rawArg))
	if err != nil {
		return nil, fmt.Errorf("%w: %s:%s is not an integer", ErrInvalidArgument, e.Name, rawArg)
	}
	return e.build(n), nil
}
