// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// toknack lists the command table of a CLI framework, dumps per-command
// metadata, and regenerates command registration snippets for a group.
package main
