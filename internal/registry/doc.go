// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package registry models a CLI framework's command table and loads it from
// command-table dumps on disk.
package registry
