// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/toknack/internal/codegen"
	"github.com/staranto/toknack/internal/config"
	"github.com/staranto/toknack/internal/details"
	"github.com/staranto/toknack/internal/filters"
	"github.com/staranto/toknack/internal/lister"
	"github.com/staranto/toknack/internal/registry"
)

// ListCommandAction is the root action. It reads the command table from
// --registry and lists, details or generates code for the matches.
func ListCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if err := NoArgsValidator(ctx, cmd); err != nil {
		return err
	}

	l := &lister.Lister{
		Provider: registry.FileProvider{Path: cmd.String("registry")},
		Out:      m.Stdout,
	}

	return l.Run(ctx, ListOptions(cmd))
}

// ListOptions translates the flags into lister options.
func ListOptions(cmd *cli.Command) lister.Options {
	sdk, _ := config.GetString("codegen.sdk", codegen.DefaultSDK)
	resourceType, _ := config.GetString("codegen.resource_type", codegen.DefaultResourceType)

	return lister.Options{
		Prefix:  cmd.String("prefix"),
		Filters: filters.BuildFilters(cmd.String("filter")),
		Mode:    lister.ModeFor(cmd.Bool("details"), cmd.Bool("code")),
		Details: details.Options{
			Format: cmd.String("output"),
			Color:  cmd.Bool("color"),
		},
		Generator: &codegen.Generator{
			Namespace:    cmd.String("namespace"),
			SDK:          sdk,
			ResourceType: resourceType,
		},
	}
}
