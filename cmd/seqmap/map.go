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

package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqmap/internal/config"
	"github.com/kraklabs/seqmap/internal/contract"
	"github.com/kraklabs/seqmap/internal/errors"
	"github.com/kraklabs/seqmap/internal/output"
	"github.com/kraklabs/seqmap/internal/ui"
	"github.com/kraklabs/seqmap/pkg/mapper"
	"github.com/kraklabs/seqmap/pkg/transform"
)

// mapFlags holds parsed flags for the map command.
type mapFlags struct {
	transform string
	input     string
	workers   int
	chunkSize int
}

// runMap executes the 'map' CLI command.
//
// Values come from, in order of precedence: positional arguments, the
// --input file ("-" for stdin), or the configured values. The transform
// comes from --transform or the configuration. Results are printed one
// decimal integer per line, or as a MapResult with --json.
//
// Flags:
//   - -t, --transform: Transform expression (default: from config)
//   - -i, --input: Read values from a file, "-" for stdin
//   - -w, --workers: Concurrent workers, 0 = sequential (default: from config)
//   - --chunk-size: Elements per concurrent work unit (default: from config)
//
// Examples:
//
//	seqmap map 1 2 3 4 5
//	seqmap map -t add:10 -- -2 0 3
//	seqmap map -i numbers.txt -w 4
func runMap(args []string, globals GlobalFlags, logger *slog.Logger) error {
	f, rest, err := parseMapFlags(args)
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(globals.ConfigPath, logger)
	if err != nil {
		return errors.FromConfigError(err, globals.ConfigPath)
	}

	expr := cfg.Transform
	if f.transform != "" {
		expr = f.transform
	}
	fn, err := transform.Parse(expr)
	if err != nil {
		return errors.FromMapError(err)
	}

	values, err := loadValues(f, rest, cfg)
	if err != nil {
		return err
	}

	if res := contract.ValidateSequence(len(values)); !res.OK {
		return errors.NewInputError(
			"Input too large",
			res.Message,
			fmt.Sprintf("Split the input or raise %s", contract.EnvMaxValues),
		)
	}

	workers := cfg.Workers
	if f.workers >= 0 {
		workers = f.workers
	}
	chunkSize := cfg.ChunkSize
	if f.chunkSize > 0 {
		chunkSize = f.chunkSize
	}

	if len(values) == 0 && !globals.Quiet {
		ui.Warning("No values to map")
	}

	logger.Info("map.run.start",
		"transform", transform.Describe(fn),
		"values", len(values),
		"workers", workers,
	)
	start := time.Now()

	result := make([]int, len(values))
	if workers > 0 {
		err = mapConcurrently(values, result, fn, workers, chunkSize, NewProgressConfig(globals))
	} else {
		err = mapper.Map(values, result, fn)
	}
	if err != nil {
		return errors.FromMapError(err)
	}

	logger.Info("map.run.done",
		"values", len(values),
		"elapsed", time.Since(start),
	)
	if workers > 0 && !globals.Quiet {
		ui.Infof("Mapped %s values with %d workers", ui.CountText(len(values)), workers)
	}

	if globals.JSON {
		return writeJSON(&output.MapResult{
			Transform: transform.Describe(fn),
			Count:     len(result),
			Source:    values,
			Result:    result,
		})
	}
	return writeIntegers(result)
}

func parseMapFlags(args []string) (mapFlags, []string, error) {
	var f mapFlags

	fs := flag.NewFlagSet("map", flag.ContinueOnError)
	fs.StringVarP(&f.transform, "transform", "t", "", "Transform expression, e.g. square or \"square,add:1\" (default: from config)")
	fs.StringVarP(&f.input, "input", "i", "", "Read values from `file` (\"-\" for stdin)")
	fs.IntVarP(&f.workers, "workers", "w", -1, "Concurrent workers, 0 = sequential (default: from config)")
	fs.IntVar(&f.chunkSize, "chunk-size", 0, "Elements per concurrent work unit (default: from config)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqmap map [options] [INT...]

Description:
  Apply a transform to every value and print one result per line, in order.

  Values are taken from the arguments, from --input, or from the
  configured values, in that order. Arguments and input lines may separate
  values with spaces or commas. Put negative values after "--".

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  seqmap map 1 2 3 4 5
  seqmap map -t add:10 -- -2 0 3
  seqmap map -t "square,add:1" -i numbers.txt
  seq 1 1000000 | seqmap map -i - -w 8
`)
	}

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return f, nil, err
		}
		return f, nil, errors.NewInputError(
			"Invalid map option",
			err.Error(),
			"Run 'seqmap map --help'. Negative values must follow --",
		)
	}
	if f.workers < -1 {
		return f, nil, errors.NewInputError(
			"Invalid worker count",
			fmt.Sprintf("--workers must be >= 0, got %d", f.workers),
			"Use 0 for sequential mapping or a positive worker count",
		)
	}
	if f.chunkSize < 0 {
		return f, nil, errors.NewInputError(
			"Invalid chunk size",
			fmt.Sprintf("--chunk-size must be >= 1, got %d", f.chunkSize),
			"Omit --chunk-size to use the configured default",
		)
	}
	return f, fs.Args(), nil
}

// loadValues resolves the input sequence from args, --input or config.
func loadValues(f mapFlags, args []string, cfg *config.Config) ([]int, error) {
	if len(args) > 0 && f.input != "" {
		return nil, errors.NewInputError(
			"Conflicting inputs",
			"Values were given both as arguments and with --input",
			"Use either positional values or --input, not both",
		)
	}

	switch {
	case len(args) > 0:
		values, err := parseArgs(args)
		if err != nil {
			return nil, badValues(err)
		}
		return values, nil

	case f.input == "-":
		values, err := readValues(os.Stdin, contract.MaxValues())
		if err != nil {
			return nil, badValues(err)
		}
		return values, nil

	case f.input != "":
		file, err := os.Open(f.input)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NewNotFoundError(
					"Input file not found",
					fmt.Sprintf("No file at %s", f.input),
					"Check the path passed to --input",
				)
			}
			if os.IsPermission(err) {
				return nil, errors.NewPermissionError(
					"Cannot read input file",
					fmt.Sprintf("Permission denied for %s", f.input),
					"Check the file permissions",
					err,
				)
			}
			return nil, errors.NewInternalError("Cannot open input file", err.Error(), "", err)
		}
		defer func() { _ = file.Close() }()

		values, err := readValues(file, contract.MaxValues())
		if err != nil {
			return nil, badValues(err)
		}
		return values, nil
	}

	values := make([]int, len(cfg.Values))
	copy(values, cfg.Values)
	return values, nil
}

func badValues(err error) error {
	var le *limitError
	if stderrors.As(err, &le) {
		return errors.NewInputError(
			"Input too large",
			le.Error(),
			fmt.Sprintf("Split the input or raise %s", contract.EnvMaxValues),
		)
	}
	var ve *valueError
	if stderrors.As(err, &ve) {
		return errors.NewInputError(
			"Cannot read input values",
			ve.Error(),
			"Pass decimal integers separated by spaces, commas or newlines",
		)
	}
	return errors.NewInternalError("Cannot read input values", err.Error(), "", err)
}

// mapConcurrently runs MapConcurrent with a progress bar and Ctrl-C
// cancellation.
func mapConcurrently(values, result []int, fn mapper.Transformer, workers, chunkSize int, progress ProgressConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := mapper.Options{Workers: workers, ChunkSize: chunkSize}
	if bar := NewProgressBar(progress, int64(len(values)), "Mapping"); bar != nil {
		opts.Progress = func(n int) { _ = bar.Add(n) }
		defer func() { _ = bar.Finish() }()
	}

	err := mapper.MapConcurrent(ctx, values, result, fn, opts)
	if stderrors.Is(err, context.Canceled) {
		return errors.NewInputError("Mapping interrupted", "Received interrupt signal", "")
	}
	return err
}

func writeJSON(v any) error {
	if err := output.JSON(v); err != nil {
		return errors.NewInternalError("Cannot write JSON output", err.Error(), "", err)
	}
	return nil
}

func writeIntegers(values []int) error {
	if err := output.Integers(values); err != nil {
		return errors.NewInternalError("Cannot write output", err.Error(), "Check that stdout is writable", err)
	}
	return nil
}
