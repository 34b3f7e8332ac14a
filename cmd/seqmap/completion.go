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
	stderrors "errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqmap/internal/errors"
)

// bashCompletionTemplate is the bash completion script for seqmap.
const bashCompletionTemplate = `#!/bin/bash

# Bash completion script for seqmap
# Installation:
#   source <(seqmap completion bash)
#   Or add to ~/.bashrc:
#   echo 'source <(seqmap completion bash)' >> ~/.bashrc

_seqmap_completion() {
    local cur prev commands transforms
    commands="map transforms demo init completion help"
    transforms="identity square negate add: mul:"

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in
        -t|--transform)
            COMPREPLY=( $(compgen -W "${transforms}" -- ${cur}) )
            return 0
            ;;
        -i|--input|--config)
            COMPREPLY=( $(compgen -f -- ${cur}) )
            return 0
            ;;
    esac

    if [ $COMP_CWORD -eq 1 ]; then
        if [[ ${cur} == -* ]] ; then
            COMPREPLY=( $(compgen -W "--config --json --no-color --quiet --verbose --metrics --version --help" -- ${cur}) )
        else
            COMPREPLY=( $(compgen -W "${commands}" -- ${cur}) )
        fi
        return 0
    fi

    local cmd="${COMP_WORDS[1]}"
    case "${cmd}" in
        map)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--transform --input --workers --chunk-size" -- ${cur}) )
            fi
            ;;
        transforms)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json" -- ${cur}) )
            fi
            ;;
        demo)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--offset" -- ${cur}) )
            fi
            ;;
        init)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--force --yes --transform" -- ${cur}) )
            fi
            ;;
        completion)
            if [ $COMP_CWORD -eq 2 ]; then
                COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            fi
            ;;
    esac
}

complete -F _seqmap_completion seqmap
`

// zshCompletionTemplate is the zsh completion script for seqmap.
const zshCompletionTemplate = `#compdef seqmap

# Zsh completion script for seqmap
# Installation:
#   1. Ensure compinit is loaded (add to ~/.zshrc if not present):
#      autoload -U compinit; compinit
#   2. Save this script to a directory in your fpath:
#      seqmap completion zsh > "${fpath[1]}/_seqmap"
#   3. Reload completions:
#      rm -f ~/.zcompdump; compinit

_seqmap() {
    local -a commands transforms
    commands=(
        'map:Map integers and print one result per line'
        'transforms:List available transforms'
        'demo:Run the built-in demonstration'
        'init:Create .seqmap/config.yaml'
        'completion:Generate shell completion script'
    )
    transforms=(identity square negate add: mul:)

    _arguments -C \
        '(- *)--version[Show version and exit]' \
        '--config[Path to .seqmap/config.yaml]:config file:_files -g "*.yaml"' \
        '--json[Output as JSON]' \
        '--no-color[Disable colored output]' \
        '(-q --quiet)'{-q,--quiet}'[Suppress progress output]' \
        '*'{-v,--verbose}'[Increase log verbosity]' \
        '--metrics[Print mapper metrics to stderr on exit]' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                map)
                    _arguments \
                        '(-t --transform)'{-t,--transform}'[Transform expression]:transform:($transforms)' \
                        '(-i --input)'{-i,--input}'[Read values from file]:input file:_files' \
                        '(-w --workers)'{-w,--workers}'[Concurrent workers]:workers:' \
                        '--chunk-size[Elements per work unit]:size:' \
                        '*:integer:'
                    ;;
                transforms)
                    _arguments \
                        '--json[Output as JSON]'
                    ;;
                demo)
                    _arguments \
                        '--offset[Apply an adder capturing 111 to 222]'
                    ;;
                init)
                    _arguments \
                        '--force[Overwrite existing configuration]' \
                        '(-y --yes)'{-y,--yes}'[Use all defaults]' \
                        '(-t --transform)'{-t,--transform}'[Transform expression]:transform:($transforms)'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_seqmap
`

// fishCompletionTemplate is the fish completion script for seqmap.
const fishCompletionTemplate = `# Fish completion script for seqmap
# Installation:
#   1. Load completions for current session:
#      seqmap completion fish | source
#   2. Install permanently:
#      seqmap completion fish > ~/.config/fish/completions/seqmap.fish

# Commands
complete -c seqmap -f -n "__fish_use_subcommand" -a "map" -d "Map integers and print one result per line"
complete -c seqmap -f -n "__fish_use_subcommand" -a "transforms" -d "List available transforms"
complete -c seqmap -f -n "__fish_use_subcommand" -a "demo" -d "Run the built-in demonstration"
complete -c seqmap -f -n "__fish_use_subcommand" -a "init" -d "Create .seqmap/config.yaml"
complete -c seqmap -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

# Global flags
complete -c seqmap -n "__fish_use_subcommand" -l version -d "Show version and exit"
complete -c seqmap -n "__fish_use_subcommand" -l config -d "Path to .seqmap/config.yaml" -r
complete -c seqmap -n "__fish_use_subcommand" -l json -d "Output as JSON"
complete -c seqmap -n "__fish_use_subcommand" -l no-color -d "Disable colored output"
complete -c seqmap -n "__fish_use_subcommand" -s q -l quiet -d "Suppress progress output"
complete -c seqmap -n "__fish_use_subcommand" -s v -l verbose -d "Increase log verbosity"
complete -c seqmap -n "__fish_use_subcommand" -l metrics -d "Print mapper metrics to stderr on exit"

# map command flags
complete -c seqmap -n "__fish_seen_subcommand_from map" -s t -l transform -d "Transform expression" -x -a "identity square negate add: mul:"
complete -c seqmap -n "__fish_seen_subcommand_from map" -s i -l input -d "Read values from file" -r
complete -c seqmap -n "__fish_seen_subcommand_from map" -s w -l workers -d "Concurrent workers" -x
complete -c seqmap -n "__fish_seen_subcommand_from map" -l chunk-size -d "Elements per work unit" -x

# transforms command flags
complete -c seqmap -n "__fish_seen_subcommand_from transforms" -l json -d "Output as JSON"

# demo command flags
complete -c seqmap -n "__fish_seen_subcommand_from demo" -l offset -d "Apply an adder capturing 111 to 222"

# init command flags
complete -c seqmap -n "__fish_seen_subcommand_from init" -l force -d "Overwrite existing configuration"
complete -c seqmap -n "__fish_seen_subcommand_from init" -s y -l yes -d "Use all defaults"
complete -c seqmap -n "__fish_seen_subcommand_from init" -s t -l transform -d "Transform expression" -x -a "identity square negate add: mul:"

# completion command arguments
complete -c seqmap -n "__fish_seen_subcommand_from completion" -f -a "bash" -d "Generate bash completion script"
complete -c seqmap -n "__fish_seen_subcommand_from completion" -f -a "zsh" -d "Generate zsh completion script"
complete -c seqmap -n "__fish_seen_subcommand_from completion" -f -a "fish" -d "Generate fish completion script"
`

// completionScripts maps a shell name to its completion script.
var completionScripts = map[string]string{
	"bash": bashCompletionTemplate,
	"zsh":  zshCompletionTemplate,
	"fish": fishCompletionTemplate,
}

// runCompletion executes the 'completion' CLI command, printing the
// completion script for the named shell to stdout.
//
// Examples:
//
//	source <(seqmap completion bash)
//	seqmap completion zsh > "${fpath[1]}/_seqmap"
//	seqmap completion fish | source
func runCompletion(args []string) error {
	fs := flag.NewFlagSet("completion", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqmap completion <shell>

Description:
  Generate shell completion scripts for bash, zsh, or fish.

Arguments:
  shell    Shell type: bash, zsh, or fish (required)

Installation:

Bash:
  echo 'source <(seqmap completion bash)' >> ~/.bashrc

Zsh:
  seqmap completion zsh > "${fpath[1]}/_seqmap"

Fish:
  seqmap completion fish > ~/.config/fish/completions/seqmap.fish

After installing completions, restart your shell or source your rc file.
`)
	}

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errors.NewInputError("Invalid completion option", err.Error(), "Run 'seqmap completion --help'")
	}

	if fs.NArg() != 1 {
		return errors.NewInputError(
			"Invalid arguments",
			"The completion command requires exactly one argument: the shell name",
			"Run 'seqmap completion bash', 'seqmap completion zsh', or 'seqmap completion fish'",
		)
	}

	shell := fs.Arg(0)
	script, ok := completionScripts[shell]
	if !ok {
		return errors.NewInputError(
			"Unsupported shell",
			fmt.Sprintf("Shell '%s' is not supported. Valid options: bash, zsh, fish", shell),
			"Run 'seqmap completion bash', 'seqmap completion zsh', or 'seqmap completion fish'",
		)
	}

	if _, err := fmt.Fprint(os.Stdout, script); err != nil {
		return errors.NewInternalError("Cannot write completion script", err.Error(), "", err)
	}
	return nil
}
