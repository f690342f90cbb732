// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package codegen

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/toknack/internal/registry"
)

var (
	// ErrMultipleGroups is returned when the commands do not share one group.
	ErrMultipleGroups = errors.New("more than one group is identified")
	// ErrNoGroup is returned for a command name without a group segment.
	ErrNoGroup = errors.New("command has no group")
	// ErrNoCommands is returned when there is nothing to generate.
	ErrNoCommands = errors.New("no commands to generate")
)

// Defaults used when the Generator fields are left empty.
const (
	DefaultNamespace    = "azure.cli.command_modules"
	DefaultSDK          = "sdk_placeholder"
	DefaultResourceType = "ResourceType.UNKNOWN"
	DefaultGroupVar     = "g"
	DefaultIndent       = 2

	StartMarker = ">>>>"
	EndMarker   = "<<<<"
)

// Generator renders registration snippets. The zero value uses the defaults.
type Generator struct {
	// Namespace is the module path prefix of custom commands.
	Namespace    string
	SDK          string
	ResourceType string
	GroupVar     string
	Indent       int
}

func (g *Generator) namespace() string {
	return valueOr(g.Namespace, DefaultNamespace)
}

func (g *Generator) groupVar() string {
	return valueOr(g.GroupVar, DefaultGroupVar)
}

func (g *Generator) indent() int {
	if g.Indent <= 0 {
		return DefaultIndent
	}
	return g.Indent
}

// Group returns the single group shared by cmds.
func Group(cmds []*registry.Command) (string, error) {
	if len(cmds) == 0 {
		return "", ErrNoCommands
	}

	groups := map[string]struct{}{}
	for _, c := range cmds {
		group, _, ok := registry.SplitName(c.Name)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrNoGroup, c.Name)
		}
		groups[group] = struct{}{}
	}

	if len(groups) != 1 {
		return "", ErrMultipleGroups
	}

	group, _, _ := registry.SplitName(cmds[0].Name)
	return group, nil
}

// Metas classifies each command. Only commands implemented under the
// namespace are supported.
func (g *Generator) Metas(cmds []*registry.Command) (string, []CommandMeta, error) {
	group, err := Group(cmds)
	if err != nil {
		return "", nil, err
	}

	ns := g.namespace()
	metas := make([]CommandMeta, 0, len(cmds))
	for _, c := range cmds {
		_, name, _ := registry.SplitName(c.Name)
		if !strings.HasPrefix(c.Operation.Module, ns) {
			return "", nil, fmt.Errorf("%w: %q is implemented in %q, outside %s",
				ErrUnsupported, c.Name, c.Operation.Module, ns)
		}
		metas = append(metas, CommandMeta{
			Name:       name,
			Kind:       KindCustom,
			CustomFunc: c.Operation.Function,
		})
	}

	return group, metas, nil
}

// Render returns the registration block for cmds without markers.
func (g *Generator) Render(cmds []*registry.Command) (string, error) {
	group, metas, err := g.Metas(cmds)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(metas))
	for _, m := range metas {
		line, err := m.ToCode(g.groupVar(), g.indent())
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}

	log.Debugf("rendering %d commands for group %s", len(lines), group)

	return fmt.Sprintf("\n    with self.command_group('%s', %s, resource_type=%s) as %s:\n%s\n",
		group,
		valueOr(g.SDK, DefaultSDK),
		valueOr(g.ResourceType, DefaultResourceType),
		g.groupVar(),
		strings.Join(lines, "\n"),
	), nil
}

// Write renders cmds and prints the block between the start and end markers.
// Nothing is written when rendering fails.
func (g *Generator) Write(w io.Writer, cmds []*registry.Command) error {
	code, err := g.Render(cmds)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%s\n%s\n%s\n", StartMarker, code, EndMarker)
	return err
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
