// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package details dumps the introspectable attributes of a command.
package details

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/staranto/toknack/internal/output"
	"github.com/staranto/toknack/internal/registry"
)

const (
	// reservedPrefix marks attributes that are never shown.
	reservedPrefix = "__"
	// OperationRow is the synthetic row carrying the operation identifier.
	OperationRow = "X:OPERATION"
	// Terminator ends each text dump.
	Terminator = "<<<<"
)

// Row is one name/value line of a dump.
type Row struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Document is the structured form of a dump.
type Document struct {
	Command    string `json:"command" yaml:"command"`
	Attributes []Row  `json:"attributes" yaml:"attributes"`
}

// Options select the dump format.
type Options struct {
	Format string
	Color  bool
}

// Rows loads the command's arguments and returns one row per attribute in
// name order, followed by the operation row. Map values expand into a header
// row and one "...key" row per entry.
func Rows(cmd *registry.Command) ([]Row, error) {
	if err := cmd.LoadArguments(); err != nil {
		return nil, err
	}

	attrs := make(map[string]any, len(cmd.Attributes)+3)
	for k, v := range cmd.Attributes {
		attrs[k] = v
	}
	attrs["arguments"] = cmd.Arguments
	attrs["name"] = cmd.Name
	attrs["operation"] = cmd.Operation.String()

	rows := make([]Row, 0, len(attrs)+1)
	for _, name := range output.SortedKeys(attrs) {
		if strings.HasPrefix(name, reservedPrefix) {
			continue
		}

		value := attrs[name]
		rv := reflect.ValueOf(value)
		if value != nil && rv.Kind() == reflect.Map {
			rows = append(rows, Row{Name: name})
			rows = append(rows, mapRows(rv)...)
			continue
		}

		rows = append(rows, Row{Name: name, Value: stringify(value)})
	}

	rows = append(rows, Row{Name: OperationRow, Value: cmd.Operation.String()})
	return rows, nil
}

// mapRows renders one "...key" row per map entry, ordered by the printed key.
// Distinct keys that print alike, such as 1 and "1", each keep their own row.
func mapRows(rv reflect.Value) []Row {
	type entry struct {
		key, kind string
		value     any
	}

	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		entries = append(entries, entry{
			key:   fmt.Sprint(k),
			kind:  fmt.Sprintf("%T", k),
			value: iter.Value().Interface(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}
		return entries[i].kind < entries[j].kind
	})

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{Name: "..." + e.key, Value: stringify(e.value)})
	}
	return rows
}

// stringify renders nil as None and everything else the usual way.
func stringify(v any) string {
	if v == nil {
		return "None"
	}
	return output.InterfaceToString(v)
}

// Print writes the dump of cmd to w.
func Print(w io.Writer, cmd *registry.Command, opts Options) error {
	rows, err := Rows(cmd)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "", output.FormatText:
		if _, err := fmt.Fprintf(w, "\n%s\n\n", strings.ToUpper(cmd.Name)); err != nil {
			return err
		}

		table := make([][]string, 0, len(rows))
		for _, r := range rows {
			table = append(table, []string{r.Name, r.Value})
		}
		if err := output.TableWriter(table, output.TableOptions{Color: opts.Color}, w); err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, Terminator)
		return err
	default:
		b, err := output.Marshal(Document{Command: cmd.Name, Attributes: rows}, opts.Format)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
}
