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

// Package main implements the seqmap CLI, which applies an integer
// transform to every value of a sequence.
//
// Usage:
//
//	seqmap map [INT...]             Map values and print one per line
//	seqmap transforms [--json]      List available transforms
//	seqmap demo                     Square 1..5
//	seqmap init                     Create .seqmap/config.yaml
//	seqmap completion <shell>       Generate shell completion script
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqmap/internal/errors"
	"github.com/kraklabs/seqmap/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags holds flags accepted before the command name.
type GlobalFlags struct {
	ConfigPath string
	JSON       bool
	Quiet      bool
	NoColor    bool
	Verbose    int
	Metrics    bool
	Version    bool
	Help       bool
}

const usageText = `seqmap - apply an integer transform across a sequence

Usage:
  seqmap [global options] <command> [options]

Commands:
  map           Map integers and print one result per line
  transforms    List available transforms
  demo          Run the built-in demonstration (square 1..5)
  init          Create .seqmap/config.yaml
  completion    Generate shell completion script (bash|zsh|fish)

Global Options:
  --config PATH   Path to .seqmap/config.yaml
  --json          Output as JSON (implies --quiet)
  --no-color      Disable colored output
  -q, --quiet     Suppress progress output
  -v, --verbose   Increase log verbosity (repeatable)
  --metrics       Print mapper metrics to stderr on exit
  --version       Show version and exit

Examples:
  seqmap map 1 2 3 4 5                  Square with the default transform
  seqmap map -t add:10 -- -2 0 3        Negative values follow --
  seqmap map -t "square,add:1" -i nums.txt
  seq 1 1000000 | seqmap map -i - -w 8 -t mul:3
  seqmap transforms --json

Environment Variables:
  SEQMAP_TRANSFORM    Override the configured transform
  SEQMAP_WORKERS      Override the configured worker count
  SEQMAP_MAX_VALUES   Soft limit on sequence length (default 16777216)
  NO_COLOR            Disable colored output

For detailed command help: seqmap <command> --help
`

func main() {
	globals, rest, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		errors.FatalError(err, false)
	}
	if globals.Help {
		fmt.Fprint(os.Stdout, usageText)
		return
	}
	if globals.Version {
		fmt.Printf("seqmap version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		return
	}

	os.Exit(run(globals, rest))
}

// parseGlobalFlags parses flags up to the first non-flag argument, which is
// the command name. The command and its arguments are returned unparsed.
func parseGlobalFlags(args []string) (GlobalFlags, []string, error) {
	var g GlobalFlags

	fs := flag.NewFlagSet("seqmap", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	fs.StringVar(&g.ConfigPath, "config", "", "Path to .seqmap/config.yaml")
	fs.BoolVar(&g.JSON, "json", false, "Output as JSON")
	fs.BoolVarP(&g.Quiet, "quiet", "q", false, "Suppress progress output")
	fs.BoolVar(&g.NoColor, "no-color", false, "Disable colored output")
	fs.CountVarP(&g.Verbose, "verbose", "v", "Increase log verbosity")
	fs.BoolVar(&g.Metrics, "metrics", false, "Print mapper metrics to stderr on exit")
	fs.BoolVar(&g.Version, "version", false, "Show version and exit")
	fs.BoolVarP(&g.Help, "help", "h", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return g, nil, errors.NewInputError(
			"Invalid global option",
			err.Error(),
			"Run 'seqmap --help' to see the available options",
		)
	}

	if g.JSON {
		g.Quiet = true
	}
	return g, fs.Args(), nil
}

// run dispatches a command and returns the process exit code.
func run(globals GlobalFlags, args []string) int {
	if globals.NoColor {
		ui.InitColors(true)
	}
	logger := newLogger(os.Stderr, globals.Verbose)

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return errors.ExitInput
	}

	command, cmdArgs := args[0], args[1:]
	logger.Debug("cli.command", "command", command, "args", len(cmdArgs))

	var err error
	switch command {
	case "map":
		err = runMap(cmdArgs, globals, logger)
	case "transforms":
		err = runTransforms(cmdArgs, globals)
	case "demo":
		err = runDemo(cmdArgs, globals)
	case "init":
		err = runInit(cmdArgs, globals, os.Stdin)
	case "completion":
		err = runCompletion(cmdArgs)
	case "help":
		fmt.Fprint(os.Stdout, usageText)
	default:
		err = errors.NewInputError(
			"Unknown command",
			fmt.Sprintf("'%s' is not a seqmap command", command),
			"Run 'seqmap --help' to list commands",
		)
	}

	if globals.Metrics {
		if mErr := writeMetrics(os.Stderr, prometheus.DefaultGatherer); mErr != nil {
			logger.Warn("cli.metrics.error", "err", mErr)
		}
	}

	return errors.Report(os.Stderr, err, globals.JSON)
}

// newLogger returns a text logger writing to w. Verbosity 0 logs warnings
// and errors, 1 adds info, 2 or more adds debug.
func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
