// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points TOKNACK_CFG at a testdata file and resets Config.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("TOKNACK_CFG", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "/tmp/commands.yaml", cfg.Data["registry"])
				assert.Equal(t, 2, cfg.Data["padding"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				codegen, ok := cfg.Data["codegen"].(map[string]any)
				require.True(t, ok, "codegen should be a map")
				assert.Equal(t, "network_sdk", codegen["sdk"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Setenv("TOKNACK_CFG", "/nonexistent/toknack.yaml")
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	cfg, err := Load(filepath.Join("testdata", "simple.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "simple.yaml"), cfg.Source)
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("TOKNACK_CFG", "/nonexistent/path/toknack.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestGetters(t *testing.T) {
	setupTestConfig(t, "nested.yaml")
	_, err := Load()
	require.NoError(t, err)

	s, err := GetString("codegen.resource_type")
	assert.NoError(t, err)
	assert.Equal(t, "ResourceType.MGMT_NETWORK", s)

	s, err = GetString("codegen.missing", "fallback")
	assert.NoError(t, err)
	assert.Equal(t, "fallback", s)

	_, err = GetString("codegen.missing")
	assert.Error(t, err)

	_, err = GetString("codegen")
	assert.EqualError(t, err, "value is not a string")

	b, err := GetBool("color")
	assert.NoError(t, err)
	assert.True(t, b)

	n, err := GetInt("padding", 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestGetInt_Types(t *testing.T) {
	setupTestConfig(t, "mixed-types.yaml")
	_, err := Load()
	require.NoError(t, err)

	n, err := GetInt("padding")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = GetInt("ratio")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = GetInt("name")
	assert.EqualError(t, err, "value is not an int")

	_, err = GetBool("name")
	assert.EqualError(t, err, "value is not a bool")
}
