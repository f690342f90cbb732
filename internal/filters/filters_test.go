// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/toknack/internal/registry"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		delimiter string
		want      []Filter
	}{
		{
			name: "empty spec",
			spec: "",
		},
		{
			name: "single exact match filter",
			spec: "confirmation=true",
			want: []Filter{{Key: "confirmation", Operand: "=", Target: "true"}},
		},
		{
			name: "negated prefix",
			spec: "operation!^azext",
			want: []Filter{{Key: "operation", Operand: "^", Target: "azext", Negate: true}},
		},
		{
			name: "multiple filters",
			spec: "name^net,operation/custom#list",
			want: []Filter{
				{Key: "name", Operand: "^", Target: "net"},
				{Key: "operation", Operand: "/", Target: "custom#list"},
			},
		},
		{
			name:      "custom delimiter",
			spec:      "name^net;confirmation=false",
			delimiter: ";",
			want: []Filter{
				{Key: "name", Operand: "^", Target: "net"},
				{Key: "confirmation", Operand: "=", Target: "false"},
			},
		},
		{
			name: "invalid entries dropped",
			spec: "nooperator,=novalue,name=ok",
			want: []Filter{{Key: "name", Operand: "=", Target: "ok"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.delimiter != "" {
				t.Setenv("TOKNACK_FILTER_DELIM", tt.delimiter)
			}
			got := BuildFilters(tt.spec)
			assert.Equal(t, tt.want, got)
		})
	}
}

func testCommand(t *testing.T) *registry.Command {
	t.Helper()
	op, err := registry.ParseOperation("azure.cli.command_modules.net.custom#list_nets")
	require.NoError(t, err)
	return registry.NewCommand("net list", op, map[string]any{
		"confirmation":      false,
		"supports_no_wait":  true,
		"tags":              []any{"preview", "network"},
		"deprecate_info":    map[string]any{"redirect": "network list"},
		"table_transformer": nil,
	}, nil)
}

func TestMatch(t *testing.T) {
	cmd := testCommand(t)

	tests := []struct {
		spec string
		want bool
	}{
		{"", true},
		{"name=net list", true},
		{"name!=net list", false},
		{"name~NET LIST", true},
		{"name^net", true},
		{"name^vm", false},
		{"operation/#list_", true},
		{"operation@command_modules", true},
		{"confirmation=false", true},
		{"supports_no_wait=true", true},
		{"tags@preview", true},
		{"tags!@preview", false},
		{"tags@stable", false},
		{"deprecate_info@redirect", true},
		{"deprecate_info.redirect=network list", true},
		{"missing=x", false},
		{"missing!=x", true},
		{"table_transformer=x", false},
		{"name^net,confirmation=true", false},
		{"tags^pre", false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(cmd, BuildFilters(tt.spec)))
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	assert.True(t, checkStringOperand("b", Filter{Operand: ">", Target: "a"}))
	assert.True(t, checkStringOperand("a", Filter{Operand: "<", Target: "b"}))
	assert.False(t, checkStringOperand("abc", Filter{Operand: "/", Target: "("}))
	assert.False(t, checkStringOperand("abc", Filter{Operand: "%", Target: "a"}))
}
