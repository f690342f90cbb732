// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Keys of a dump entry that are not plain attributes.
const (
	operationKey = "operation"
	argumentsKey = "arguments"
	nameKey      = "name"
)

// Provider supplies a command table.
type Provider interface {
	CommandTable(ctx context.Context) (Table, error)
}

// StaticProvider serves an in-memory table.
type StaticProvider struct {
	Table Table
}

func (p StaticProvider) CommandTable(ctx context.Context) (Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Table == nil {
		return Table{}, nil
	}
	return p.Table, nil
}

// FileProvider reads a command-table dump. The format is chosen by extension:
// .json is read with gjson, .yaml and .yml with yaml.v3.
//
//	commands:
//	  net list:
//	    operation: azure.cli.command_modules.net.custom#list_nets
//	    arguments: {...}
//	    confirmation: false
type FileProvider struct {
	Path string
}

func (p FileProvider) CommandTable(ctx context.Context) (Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Path == "" {
		return nil, errors.New("no command registry specified")
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var table Table
	switch strings.ToLower(filepath.Ext(p.Path)) {
	case ".json":
		table, err = DecodeJSON(data)
	case ".yaml", ".yml":
		table, err = DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported registry format: %s", p.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", p.Path, err)
	}

	log.Debugf("loaded %d commands from %s", len(table), p.Path)
	return table, nil
}

// DecodeYAML builds a table from a YAML dump. Argument definitions stay as
// YAML nodes until LoadArguments is called.
func DecodeYAML(data []byte) (Table, error) {
	var doc struct {
		Commands yaml.Node `yaml:"commands"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	table := Table{}
	if doc.Commands.Kind == 0 {
		return table, nil
	}
	if doc.Commands.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("commands must be a mapping (line %d)", doc.Commands.Line)
	}

	content := doc.Commands.Content
	for i := 0; i+1 < len(content); i += 2 {
		name := content[i].Value
		cmd, err := yamlCommand(name, content[i+1])
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", name, err)
		}
		table[name] = cmd
	}

	return table, nil
}

func yamlCommand(name string, entry *yaml.Node) (*Command, error) {
	var (
		op     Operation
		attrs  = map[string]any{}
		loader ArgumentLoader
	)

	if entry.Kind != yaml.MappingNode {
		return NewCommand(name, op, attrs, nil), nil
	}

	for i := 0; i+1 < len(entry.Content); i += 2 {
		key, value := entry.Content[i].Value, entry.Content[i+1]
		switch key {
		case nameKey:
			continue
		case operationKey:
			if err := value.Decode(&op); err != nil {
				return nil, err
			}
		case argumentsKey:
			node := value
			loader = func() (map[string]any, error) {
				var args map[string]any
				if err := node.Decode(&args); err != nil {
					return nil, err
				}
				return args, nil
			}
		default:
			var v any
			if err := value.Decode(&v); err != nil {
				return nil, err
			}
			attrs[key] = v
		}
	}

	return NewCommand(name, op, attrs, loader), nil
}

// DecodeJSON builds a table from a JSON dump. Argument definitions stay as raw
// JSON until LoadArguments is called.
func DecodeJSON(data []byte) (Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	table := Table{}
	commands := gjson.GetBytes(data, "commands")
	if !commands.Exists() {
		return table, nil
	}
	if !commands.IsObject() {
		return nil, errors.New("commands must be an object")
	}

	var err error
	commands.ForEach(func(key, entry gjson.Result) bool {
		name := key.String()
		var cmd *Command
		if cmd, err = jsonCommand(name, entry); err != nil {
			err = fmt.Errorf("command %q: %w", name, err)
			return false
		}
		table[name] = cmd
		return true
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

func jsonCommand(name string, entry gjson.Result) (*Command, error) {
	var (
		op     Operation
		attrs  = map[string]any{}
		loader ArgumentLoader
		err    error
	)

	if !entry.IsObject() {
		return NewCommand(name, op, attrs, nil), nil
	}

	entry.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case nameKey:
		case operationKey:
			switch {
			case value.IsObject():
				op = Operation{
					Module:   value.Get("module").String(),
					Function: value.Get("function").String(),
				}
				err = op.validate()
			case value.String() != "":
				op, err = ParseOperation(value.String())
			}
		case argumentsKey:
			raw := value
			loader = func() (map[string]any, error) {
				if !raw.IsObject() {
					return nil, fmt.Errorf("arguments must be an object, got %s", raw.Type)
				}
				args, _ := raw.Value().(map[string]interface{})
				return args, nil
			}
		default:
			attrs[key.String()] = value.Value()
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return NewCommand(name, op, attrs, loader), nil
}
