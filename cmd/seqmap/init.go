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
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqmap/internal/config"
	"github.com/kraklabs/seqmap/internal/errors"
	"github.com/kraklabs/seqmap/internal/ui"
	"github.com/kraklabs/seqmap/pkg/transform"
)

// initFlags holds parsed flags for the init command.
type initFlags struct {
	force, nonInteractive bool
	transform             string
}

// runInit executes the 'init' CLI command, creating .seqmap/config.yaml in
// the current directory.
//
// In interactive mode the user is asked for the transform expression; the
// answer is read from in. An empty answer keeps the default.
//
// Flags:
//   - --force: Overwrite an existing configuration
//   - -y, --yes: Non-interactive mode, use all defaults
//   - -t, --transform: Transform expression to store
//
// Examples:
//
//	seqmap init                  Interactive setup
//	seqmap init -y               Use all defaults
//	seqmap init -t add:10 -y     Store a different transform
func runInit(args []string, globals GlobalFlags, in io.Reader) error {
	f, err := parseInitFlags(args)
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.NewInternalError("Cannot determine current directory", err.Error(), "", err)
	}

	path := config.Path(cwd)
	if _, err := os.Stat(path); err == nil {
		if !f.force {
			return errors.NewInputError(
				"Configuration already exists",
				fmt.Sprintf("%s is already present", path),
				"Use --force to overwrite it",
			)
		}
		if !globals.Quiet {
			ui.Warningf("Overwriting %s", ui.DimText(path))
		}
	}

	cfg := config.Default()
	if f.transform != "" {
		cfg.Transform = f.transform
	}
	if !f.nonInteractive && !globals.JSON {
		if !globals.Quiet {
			ui.Info("Press Enter to keep the default shown in brackets")
		}
		cfg.Transform = prompt(bufio.NewReader(in), os.Stderr, "Transform expression", cfg.Transform)
	}

	if _, err := transform.Parse(cfg.Transform); err != nil {
		return errors.FromMapError(err)
	}

	if err := config.Save(path, cfg); err != nil {
		if stderrors.Is(err, os.ErrPermission) {
			return errors.NewPermissionError(
				"Cannot write configuration",
				err.Error(),
				"Check the permissions of the current directory",
				err,
			)
		}
		return errors.NewInternalError("Cannot write configuration", err.Error(), "", err)
	}

	if globals.JSON {
		return writeJSON(map[string]string{"path": path, "transform": cfg.Transform})
	}
	ui.Successf("Wrote %s", ui.DimText(path))
	if !globals.Quiet {
		printNextSteps()
	}
	return nil
}

func parseInitFlags(args []string) (initFlags, error) {
	var f initFlags

	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.BoolVar(&f.force, "force", false, "Overwrite existing configuration")
	fs.BoolVarP(&f.nonInteractive, "yes", "y", false, "Non-interactive mode, use all defaults")
	fs.StringVarP(&f.transform, "transform", "t", "", "Transform expression to store (default: square)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqmap init [options]

Creates %s/%s in the current directory.

Options:
`, config.DirName, config.FileName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return f, err
		}
		return f, errors.NewInputError("Invalid init option", err.Error(), "Run 'seqmap init --help'")
	}
	if fs.NArg() > 0 {
		return f, errors.NewInputError(
			"Unexpected arguments",
			fmt.Sprintf("init takes no arguments, got %q", fs.Args()),
			"Run 'seqmap init --help'",
		)
	}
	return f, nil
}

func printNextSteps() {
	ui.Header("Next steps")
	ui.Infof("Review %s/%s and adjust values or workers", config.DirName, config.FileName)
	ui.Infof("Run %s to map the configured values", ui.Label("seqmap map"))
	ui.Infof("Run %s to see other transforms", ui.Label("seqmap transforms"))
}

// prompt writes label to w and reads one line from reader. An empty line or
// end of input returns defaultValue.
func prompt(reader *bufio.Reader, w io.Writer, label, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}

	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultValue
	}
	return input
}
