// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedOperation is returned when an operation string is not of the
// form <module-path>#<function-name>.
var ErrMalformedOperation = errors.New("malformed operation")

// Operation identifies the function implementing a command.
type Operation struct {
	Module   string `json:"module" yaml:"module"`
	Function string `json:"function" yaml:"function"`
}

// ParseOperation splits s on its last '#'. Both halves must be non-empty.
func ParseOperation(s string) (Operation, error) {
	idx := strings.LastIndex(s, "#")
	if idx < 0 {
		return Operation{}, fmt.Errorf("%w: %q", ErrMalformedOperation, s)
	}
	op := Operation{Module: s[:idx], Function: s[idx+1:]}
	if err := op.validate(); err != nil {
		return Operation{}, err
	}
	return op, nil
}

// validate rejects an operation missing its module or function.
func (o Operation) validate() error {
	if o.Module == "" || o.Function == "" {
		return fmt.Errorf("%w: module %q, function %q", ErrMalformedOperation, o.Module, o.Function)
	}
	return nil
}

func (o Operation) IsZero() bool {
	return o.Module == "" && o.Function == ""
}

func (o Operation) String() string {
	if o.IsZero() {
		return ""
	}
	return o.Module + "#" + o.Function
}

// UnmarshalYAML accepts either the "module#function" string form or a mapping
// with module and function keys.
func (o *Operation) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" || node.ShortTag() == "!!null" {
			*o = Operation{}
			return nil
		}
		op, err := ParseOperation(node.Value)
		if err != nil {
			return err
		}
		*o = op
		return nil
	case yaml.MappingNode:
		type plain Operation
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		if err := Operation(p).validate(); err != nil {
			return fmt.Errorf("%w (line %d)", err, node.Line)
		}
		*o = Operation(p)
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrMalformedOperation, node.Line)
	}
}

// ArgumentLoader materializes a command's argument definitions.
type ArgumentLoader func() (map[string]any, error)

// Command is one entry of a command table.
type Command struct {
	// Name is the qualified name, "group subcommand".
	Name      string
	Operation Operation
	// Attributes holds the remaining introspectable values of the command.
	Attributes map[string]any
	// Arguments is nil until LoadArguments has been called.
	Arguments map[string]any

	loader ArgumentLoader
	loaded bool
}

func NewCommand(name string, op Operation, attrs map[string]any, loader ArgumentLoader) *Command {
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &Command{
		Name:       name,
		Operation:  op,
		Attributes: attrs,
		loader:     loader,
	}
}

// LoadArguments runs the argument loader once. Later calls are no-ops.
func (c *Command) LoadArguments() error {
	if c.loaded {
		return nil
	}
	args := map[string]any{}
	if c.loader != nil {
		loaded, err := c.loader()
		if err != nil {
			return fmt.Errorf("failed to load arguments for %q: %w", c.Name, err)
		}
		if loaded != nil {
			args = loaded
		}
	}
	c.Arguments = args
	c.loaded = true
	return nil
}

// Loaded reports whether LoadArguments has run.
func (c *Command) Loaded() bool {
	return c.loaded
}

// Document returns the command as a generic document: name, operation,
// arguments (once loaded) and every attribute.
func (c *Command) Document() map[string]any {
	doc := make(map[string]any, len(c.Attributes)+3)
	for k, v := range c.Attributes {
		doc[k] = v
	}
	doc["name"] = c.Name
	doc["operation"] = c.Operation.String()
	if c.loaded {
		doc["arguments"] = c.Arguments
	}
	return doc
}

// SplitName splits a qualified command name on its last space. ok is false
// when the name has no group.
func SplitName(name string) (group string, sub string, ok bool) {
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return "", name, false
	}
	return name[:idx], name[idx+1:], true
}

// Table maps qualified command names to commands.
type Table map[string]*Command

// Names returns the sorted names starting with prefix. An empty prefix
// matches everything.
func (t Table) Names(prefix string) []string {
	names := make([]string, 0, len(t))
	for k := range t {
		if strings.HasPrefix(k, prefix) {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
