// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/toknack/internal/meta"
)

const bashCompletionScript = `# bash completion for toknack
_toknack()
{
    local cur prev
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    case "$prev" in
    --output|-o)
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
        ;;
    --registry|-r)
        COMPREPLY=( $(compgen -f -X '!*.@(json|yaml|yml)' -o plusdirs -- "$cur") )
        return 0
        ;;
    completion)
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        return 0
        ;;
    esac

    local opts="--prefix -p --details -d --code -c --registry -r --filter -f --namespace --output -o --color --no-color --help --version"
    if [[ ${COMP_CWORD} -eq 1 && "$cur" != -* ]]; then
        COMPREPLY=( $(compgen -W "completion" -- "$cur") )
        return 0
    fi
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _toknack toknack
`

const zshCompletionScript = `#compdef toknack

_toknack() {
  if (( CURRENT == 2 )) && [[ $words[2] != -* ]]; then
    _values 'toknack commands' 'completion[generate shell completion script]'
    return
  fi

  case $words[2] in
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C \
        '(-p --prefix)'{-p,--prefix}'[command name prefix]:prefix' \
        '(-d --details)'{-d,--details}'[dump command attributes]' \
        '(-c --code)'{-c,--code}'[generate registration code]' \
        '(-r --registry)'{-r,--registry}'[command table dump]:file:_files -g "*.(json|yaml|yml)"' \
        '(-f --filter)'{-f,--filter}'[attribute filters]:filters' \
        '--namespace[custom command namespace]:namespace' \
        '(-o --output)'{-o,--output}'[details format]:format:(text json yaml)' \
        '--color[colored details]' \
        '--no-color[plain details]'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _toknack toknack
`

// CompletionCommandAction prints the completion script for the requested
// shell, or the one matching $SHELL.
func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := GetMeta(cmd).Stdout
	if w == nil {
		w = os.Stdout
	}

	shell := cmd.Args().First()
	if shell == "" {
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: toknack completion [bash|zsh]")
	}
	return nil
}

func CompletionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "toknack completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
