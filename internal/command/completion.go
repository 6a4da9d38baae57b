// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wptdiff/wptdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for wptdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_wptdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "diff report completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --detail-level -d --failures-only --max-details -m --output -o --show-subtests"

    case "$cmd" in
        diff)
            local opts="$common --tui"
            ;;
        report)
            local opts="$common"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--detail-level" || "$prev" == "-d" ]]; then
        COMPREPLY=( $(compgen -W "summary new removed changes all" -- "$cur") )
        return 0
    fi

    # If current token starts with '-', offer flags
    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise we're on a report file positional - complete filenames
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _wptdiff wptdiff
`

const zshCompletionScript = `#compdef wptdiff

_wptdiff() {
  local -a cmds
  cmds=(
    'diff:compare two WPT reports'
    'report:summarize a single WPT report'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-d --detail-level)'{-d,--detail-level}'[level of detail]:level:(summary new removed changes all)'
  '--failures-only[only list failing entries]'
  '(-m --max-details)'{-m,--max-details}'[entry cap per bucket]:max'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--show-subtests[include subtest information]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'wptdiff commands' cmds
    return
  fi

  case $words[2] in
    diff)
      _arguments -C \
        $common \
        '--tui[browse differences interactively]' \
        '1:old report:_files' \
        '2:new report:_files'
      ;;
    report)
      _arguments -C \
        $common \
        '1:report:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:report:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _wptdiff wptdiff wptdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: wptdiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "wptdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
