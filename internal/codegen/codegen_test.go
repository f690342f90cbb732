// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package codegen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/toknack/internal/registry"
)

func command(t *testing.T, name, operation string) *registry.Command {
	t.Helper()
	op, err := registry.ParseOperation(operation)
	require.NoError(t, err)
	return registry.NewCommand(name, op, nil, nil)
}

func TestCommandMeta_ToCode(t *testing.T) {
	tests := []struct {
		name     string
		meta     CommandMeta
		groupVar string
		indent   int
		want     string
		wantErr  error
	}{
		{
			name:     "custom at indent 2",
			meta:     CommandMeta{Name: "list", Kind: KindCustom, CustomFunc: "list_nets"},
			groupVar: "g",
			indent:   2,
			want:     "        g.custom_command('list', 'list_nets')",
		},
		{
			name:     "custom at indent 0",
			meta:     CommandMeta{Name: "show", Kind: KindCustom, CustomFunc: "show_net"},
			groupVar: "grp",
			indent:   0,
			want:     "grp.custom_command('show', 'show_net')",
		},
		{
			name:     "negative indent clamps",
			meta:     CommandMeta{Name: "show", Kind: KindCustom, CustomFunc: "show_net"},
			groupVar: "g",
			indent:   -1,
			want:     "g.custom_command('show', 'show_net')",
		},
		{
			name:     "unknown kind",
			meta:     CommandMeta{Name: "list", CustomFunc: "list_nets"},
			groupVar: "g",
			indent:   2,
			wantErr:  ErrUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.meta.ToCode(tt.groupVar, tt.indent)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroup(t *testing.T) {
	group, err := Group([]*registry.Command{
		command(t, "network vnet list", "m#f"),
		command(t, "network vnet show", "m#f"),
	})
	require.NoError(t, err)
	assert.Equal(t, "network vnet", group)

	_, err = Group(nil)
	assert.ErrorIs(t, err, ErrNoCommands)

	_, err = Group([]*registry.Command{command(t, "login", "m#f")})
	assert.ErrorIs(t, err, ErrNoGroup)

	_, err = Group([]*registry.Command{
		command(t, "net list", "m#f"),
		command(t, "vm list", "m#f"),
	})
	assert.ErrorIs(t, err, ErrMultipleGroups)
}

func TestGenerator_Write(t *testing.T) {
	cmds := []*registry.Command{
		command(t, "net list", "azure.cli.command_modules.net.custom#list_nets"),
		command(t, "net show", "azure.cli.command_modules.net.custom#show_net"),
	}

	var buf bytes.Buffer
	require.NoError(t, (&Generator{}).Write(&buf, cmds))

	want := "\n>>>>\n" +
		"\n    with self.command_group('net', sdk_placeholder, resource_type=ResourceType.UNKNOWN) as g:\n" +
		"        g.custom_command('list', 'list_nets')\n" +
		"        g.custom_command('show', 'show_net')\n" +
		"\n<<<<\n"
	assert.Equal(t, want, buf.String())
}

func TestGenerator_Options(t *testing.T) {
	g := &Generator{
		Namespace:    "mycli.modules",
		SDK:          "network_sdk",
		ResourceType: "ResourceType.MGMT_NETWORK",
		GroupVar:     "grp",
		Indent:       1,
	}

	code, err := g.Render([]*registry.Command{command(t, "net list", "mycli.modules.net#list_nets")})
	require.NoError(t, err)
	assert.Equal(t,
		"\n    with self.command_group('net', network_sdk, resource_type=ResourceType.MGMT_NETWORK) as grp:\n"+
			"    grp.custom_command('list', 'list_nets')\n",
		code)
}

func TestGenerator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmds    []*registry.Command
		wantErr error
	}{
		{
			name: "more than one group",
			cmds: []*registry.Command{
				command(t, "net list", "azure.cli.command_modules.net.custom#list_nets"),
				command(t, "vm list", "azure.cli.command_modules.vm.custom#list_vms"),
			},
			wantErr: ErrMultipleGroups,
		},
		{
			name: "extension command",
			cmds: []*registry.Command{
				command(t, "net list", "azure.cli.command_modules.net.custom#list_nets"),
				command(t, "net run", "azext_demo.custom#run_demo"),
			},
			wantErr: ErrUnsupported,
		},
		{
			name:    "no commands",
			wantErr: ErrNoCommands,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := (&Generator{}).Write(&buf, tt.cmds)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, buf.String())
		})
	}
}

func TestGenerator_MissingOperation(t *testing.T) {
	cmd := registry.NewCommand("net list", registry.Operation{}, nil, nil)
	_, err := (&Generator{}).Render([]*registry.Command{cmd})
	assert.ErrorIs(t, err, ErrUnsupported)
}
