// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/toknack/internal/codegen"
	"github.com/staranto/toknack/internal/config"
	"github.com/staranto/toknack/internal/output"
)

// NewFlags builds the root flags. cfgPath is the config file consulted for
// fallback values; it may be empty.
func NewFlags(cfgPath string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "code",
			Aliases: []string{"c"},
			Usage:   "generate registration code for the matching commands",
		},
		&cli.BoolWithInverseFlag{
			Name:  "color",
			Usage: "enable colored details output",
			Value: colorDefault(),
		},
		&cli.BoolFlag{
			Name:    "details",
			Aliases: []string{"d"},
			Usage:   "dump the attributes of the matching commands",
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of attribute filters",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		NewConfigSourcedFlag("codegen.namespace", cfgPath, &cli.StringFlag{
			Name:  "namespace",
			Usage: "module namespace of custom commands",
			Value: codegen.DefaultNamespace,
			Validator: func(value string) error {
				return FlagValidators(value, NotEmptyValidator, JammedFlagValidator)
			},
		}),
		NewConfigSourcedFlag("output", cfgPath, &cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "details output format",
			Value:   output.FormatText,
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		}),
		&cli.StringFlag{
			Name:    "prefix",
			Aliases: []string{"p"},
			Usage:   "only include commands whose name starts with this prefix",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		NewConfigSourcedFlag("registry", cfgPath, &cli.StringFlag{
			Name:    "registry",
			Aliases: []string{"r"},
			Usage:   "command table dump to read (.yaml, .yml or .json)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TOKNACK_REGISTRY"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}),
	}

	return
}

// NewConfigSourcedFlag appends the config file value at key to the flag's
// Sources chain. Without a config file the flag is returned untouched.
func NewConfigSourcedFlag(key string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}
	src := yaml.YAML(key, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)
	return flag
}

// colorDefault prefers the config file and falls back to whether stdout is a
// terminal.
func colorDefault() bool {
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	color, _ := config.GetBool("color", isTerm)
	return color
}
