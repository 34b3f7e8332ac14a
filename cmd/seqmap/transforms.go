// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqmap/internal/errors"
	"github.com/kraklabs/seqmap/pkg/transform"
)

// runTransforms executes the 'transforms' CLI command, listing every
// transform that 'seqmap map --transform' accepts.
func runTransforms(args []string, globals GlobalFlags) error {
	fs := flag.NewFlagSet("transforms", flag.ContinueOnError)
	jsonOutput := fs.Bool("json", false, "Output as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqmap transforms [options]

Lists available transforms. Terms can be chained with commas and are
applied left to right, e.g. "square,add:1".

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errors.NewInputError("Invalid transforms option", err.Error(), "Run 'seqmap transforms --help'")
	}

	catalog := transform.Catalog()
	if *jsonOutput || globals.JSON {
		return writeJSON(catalog)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USAGE\tALIASES\tDESCRIPTION")
	for _, e := range catalog {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Usage, strings.Join(e.Aliases, ", "), e.Description)
	}
	if err := tw.Flush(); err != nil {
		return errors.NewInternalError("Cannot write output", err.Error(), "", err)
	}
	return nil
}
