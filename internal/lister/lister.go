// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package lister walks a command table and dispatches each matching command
// to the name, details or code-generation output.
package lister

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/staranto/toknack/internal/codegen"
	"github.com/staranto/toknack/internal/details"
	"github.com/staranto/toknack/internal/filters"
	"github.com/staranto/toknack/internal/registry"
)

// Mode selects what happens to each matching command.
type Mode int

const (
	ModeNames Mode = iota
	ModeDetails
	ModeCode
)

func (m Mode) String() string {
	switch m {
	case ModeDetails:
		return "details"
	case ModeCode:
		return "code"
	default:
		return "names"
	}
}

// ModeFor maps the --details and --code switches to a Mode. Details wins when
// both are set.
func ModeFor(details, code bool) Mode {
	switch {
	case details:
		return ModeDetails
	case code:
		return ModeCode
	default:
		return ModeNames
	}
}

type Options struct {
	Prefix  string
	Filters []filters.Filter
	Mode    Mode
	Details details.Options
	// Generator renders the snippet in ModeCode. nil uses the defaults.
	Generator *codegen.Generator
}

// Lister prints commands from a Provider to Out.
type Lister struct {
	Provider registry.Provider
	Out      io.Writer
}

// Select returns the sorted names in table starting with prefix that pass
// every filter.
func Select(table registry.Table, prefix string, fs []filters.Filter) []string {
	names := table.Names(prefix)
	if len(fs) == 0 {
		return names
	}

	selected := names[:0]
	for _, name := range names {
		if filters.Match(table[name], fs) {
			selected = append(selected, name)
		}
	}
	return selected
}

// Run lists the table. In ModeCode the matches are collected and a single
// snippet is written after the walk; nothing is written for an empty match.
func (l *Lister) Run(ctx context.Context, opts Options) error {
	out := l.Out
	if out == nil {
		out = os.Stdout
	}

	table, err := l.Provider.CommandTable(ctx)
	if err != nil {
		return err
	}

	names := Select(table, opts.Prefix, opts.Filters)
	log.Debugf("mode=%s prefix=%q matched %d of %d commands", opts.Mode, opts.Prefix, len(names), len(table))

	var tocode []*registry.Command
	for _, name := range names {
		cmd := table[name]
		switch opts.Mode {
		case ModeDetails:
			if err := details.Print(out, cmd, opts.Details); err != nil {
				return fmt.Errorf("failed to print details for %q: %w", name, err)
			}
		case ModeCode:
			tocode = append(tocode, cmd)
		default:
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}
	}

	if len(tocode) == 0 {
		return nil
	}

	gen := opts.Generator
	if gen == nil {
		gen = &codegen.Generator{}
	}
	return gen.Write(out, tocode)
}
