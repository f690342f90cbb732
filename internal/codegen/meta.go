// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package codegen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is returned for command kinds that cannot be rendered.
var ErrUnsupported = errors.New("unsupported command kind")

// Kind is the variant of a CommandMeta.
type Kind int

const (
	KindUnknown Kind = iota
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CommandMeta is the registration view of one command inside its group.
type CommandMeta struct {
	// Name is the subcommand name without its group.
	Name       string
	Kind       Kind
	CustomFunc string
}

// ToCode renders the registration line for m, indented four spaces per level.
func (m CommandMeta) ToCode(groupVar string, indent int) (string, error) {
	indentation := strings.Repeat(" ", 4*max(indent, 0))

	switch m.Kind {
	case KindCustom:
		return fmt.Sprintf("%s%s.custom_command('%s', '%s')", indentation, groupVar, m.Name, m.CustomFunc), nil
	default:
		return "", fmt.Errorf("%w: %s for %q", ErrUnsupported, m.Kind, m.Name)
	}
}
