// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package codegen regenerates command-registration snippets for a group of
// commands.
package codegen
