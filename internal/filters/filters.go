// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/toknack/internal/registry"
)

// filterRegex splits a filter expression into key, operator and target.
// Operators are one of = ^ ~ < > @ or /, optionally prefixed with '!'.
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~<>@/])(.*)$`)

// Filter represents a single parsed --filter expression including the key,
// operand, optional negation and target value.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Invalid specs are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("TOKNACK_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil || parts[1] == "" {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		negate := strings.HasPrefix(parts[2], "!")
		filters = append(filters, Filter{
			Key:     strings.TrimSpace(parts[1]),
			Negate:  negate,
			Operand: strings.TrimPrefix(parts[2], "!"),
			Target:  parts[3],
		})
	}

	return filters
}

// Match reports whether cmd satisfies every filter. Keys are gjson paths into
// the command document, so nested attributes are reachable as a.b.
func Match(cmd *registry.Command, filters []Filter) bool {
	if len(filters) == 0 {
		return true
	}

	raw, err := json.Marshal(cmd.Document())
	if err != nil {
		log.Errorf("failed to encode %s for filtering: %v", cmd.Name, err)
		return false
	}
	doc := gjson.ParseBytes(raw)

	for _, filter := range filters {
		value := doc.Get(escapeKey(filter.Key))
		if !value.Exists() || value.Type == gjson.Null {
			// A missing key only satisfies a negated filter.
			if !filter.Negate {
				return false
			}
			continue
		}

		var result bool
		switch {
		case value.IsArray() || value.IsObject():
			result = checkContainsOperand(value, filter)
		default:
			result = checkStringOperand(value.String(), filter)
		}

		if !result {
			return false
		}
	}

	return true
}

// escapeKey protects gjson wildcard characters so attribute names match
// literally. Dots are left alone for nested access.
func escapeKey(key string) string {
	r := strings.NewReplacer("*", `\*`, "?", `\?`, "#", `\#`, "|", `\|`)
	return r.Replace(key)
}

// checkContainsOperand evaluates a membership filter (operand '@') against
// array or object values.
func checkContainsOperand(value gjson.Result, filter Filter) bool {
	if filter.Operand != "@" {
		log.Error(fmt.Sprintf("unsupported operand %s for composite value", filter.Operand))
		return false
	}

	found := false
	switch {
	case value.IsArray():
		for _, item := range value.Array() {
			if item.String() == filter.Target {
				found = true
				break
			}
		}
	case value.IsObject():
		found = value.Get(escapeKey(filter.Target)).Exists()
	}
	return found == !filter.Negate
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Target == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Target) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Target) == !filter.Negate
	case ">":
		return value > filter.Target == !filter.Negate
	case "<":
		return value < filter.Target == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Target) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Target, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Target)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}
