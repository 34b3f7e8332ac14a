// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	stderrors "errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqmap/internal/errors"
	"github.com/kraklabs/seqmap/internal/output"
	"github.com/kraklabs/seqmap/pkg/mapper"
	"github.com/kraklabs/seqmap/pkg/transform"
)

// demoValues is the fixed sequence squared by 'seqmap demo'.
var demoValues = []int{1, 2, 3, 4, 5}

// runDemo executes the 'demo' CLI command.
//
// Without flags it squares 1 through 5 and prints 1, 4, 9, 16, 25. With
// --offset it builds an adder capturing 111 and applies it to 222.
func runDemo(args []string, globals GlobalFlags) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	offset := fs.Bool("offset", false, "Apply an adder capturing 111 to 222 instead")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqmap demo [options]

Runs a fixed demonstration:
  default    square [1 2 3 4 5]   -> 1 4 9 16 25
  --offset   add:111 [222]        -> 333

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errors.NewInputError("Invalid demo option", err.Error(), "Run 'seqmap demo --help'")
	}

	source := demoValues
	var fn mapper.Transformer = transform.Square{}
	if *offset {
		source = []int{222}
		fn = transform.NewOffset(111)
	}

	result, err := mapper.Apply(source, fn)
	if err != nil {
		return errors.FromMapError(err)
	}

	if globals.JSON {
		return writeJSON(&output.MapResult{
			Transform: transform.Describe(fn),
			Count:     len(result),
			Source:    source,
			Result:    result,
		})
	}
	return writeIntegers(result)
}
