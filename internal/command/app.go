// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/toknack/internal/config"
	"github.com/staranto/toknack/internal/meta"
	"github.com/staranto/toknack/internal/version"
)

// InitApp builds the toknack command. Output is written to w, or stdout when
// w is nil.
func InitApp(ctx context.Context, args []string, w io.Writer) (*cli.Command, error) {
	if w == nil {
		w = os.Stdout
	}

	sd, _ := os.Getwd()

	// The config file is optional.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config loaded: %v", err)
	}

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
		Stdout:      w,
	}

	app := &cli.Command{
		Name:      "toknack",
		Usage:     "list a CLI command table and regenerate command registration code",
		UsageText: "toknack [--prefix PREFIX] [--details | --code] [--registry FILE] [options]",
		Version:   version.Version,
		Writer:    w,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: NewFlags(cfg.Source),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, FlagsValidator(ctx, c)
		},
		Action: ListCommandAction,
		Commands: []*cli.Command{
			CompletionCommandBuilder(m),
		},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata, falling back
// to the root command. If missing, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil {
		return meta.Meta{}
	}
	for _, c := range []*cli.Command{cmd, cmd.Root()} {
		if c == nil || c.Metadata == nil {
			continue
		}
		if m, ok := c.Metadata["meta"].(meta.Meta); ok {
			return m
		}
	}
	return meta.Meta{}
}
