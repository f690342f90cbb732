// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package command defines the toknack CLI. It wires flags, validators, the
// listing action and shell completion.
package command
