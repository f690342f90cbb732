// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked for in the standard locations.
const FileName = "toknack.yaml"

// Type is a loaded config file. Source is empty when no file was found.
type Type struct {
	Source string
	Data   map[string]any
}

var Config Type

// Load reads the config file and makes it the package-wide Config. An explicit
// path takes precedence over TOKNACK_CFG and the standard locations.
func Load(cfgFilePath ...string) (Type, error) {
	var path string
	if len(cfgFilePath) > 0 && cfgFilePath[0] != "" {
		path = cfgFilePath[0]
	} else {
		var err error
		if path, err = getConfigPath(); err != nil {
			return Type{}, err
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Type{Source: path}
	if err := yaml.Unmarshal(raw, &cfg.Data); err != nil {
		return Type{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	Config = cfg
	return Config, nil
}

// get walks a dotted key such as "codegen.sdk".
func (cfg *Type) get(kspec string) (any, error) {
	var current any = cfg.Data
	for _, key := range strings.Split(kspec, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("no value found at %s", kspec)
		}
		if current, ok = m[key]; !ok {
			return nil, fmt.Errorf("no value found at %s", kspec)
		}
	}
	return current, nil
}

// lookup resolves key in the loaded config and converts it with conv. A
// missing key yields the first default when one is given.
func lookup[T any](key string, conv func(any) (T, bool), kind string, defaultValue []T) (T, error) {
	var zero T
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return zero, err
	}

	v, ok := conv(val)
	if !ok {
		return zero, fmt.Errorf("value is not %s", kind)
	}
	return v, nil
}

func GetString(key string, defaultValue ...string) (string, error) {
	return lookup(key, func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	}, "a string", defaultValue)
}

// GetInt accepts any YAML number; floats are truncated.
func GetInt(key string, defaultValue ...int) (int, error) {
	return lookup(key, func(v any) (int, bool) {
		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			return int(n), true
		case float64:
			return int(n), true
		}
		return 0, false
	}, "an int", defaultValue)
}

func GetBool(key string, defaultValue ...bool) (bool, error) {
	return lookup(key, func(v any) (bool, bool) {
		b, ok := v.(bool)
		return b, ok
	}, "a bool", defaultValue)
}

func getConfigPath() (string, error) {
	if p, ok := os.LookupEnv("TOKNACK_CFG"); ok && p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("config file not found: %s", p)
		}
		return p, nil
	}

	for _, env := range []string{"XDG_CONFIG_HOME", "APPDATA", "HOME"} {
		dir := os.Getenv(env)
		if dir == "" {
			continue
		}
		file := filepath.Join(dir, FileName)
		if fi, err := os.Stat(file); err == nil && !fi.IsDir() {
			log.Debugf("using config file %s from $%s", file, env)
			return file, nil
		}
	}
	return "", fmt.Errorf("no %s found in $XDG_CONFIG_HOME, $APPDATA or $HOME", FileName)
}
