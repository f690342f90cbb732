// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package output provides value stringification and the table, json and yaml
// emitters used to present command details.
package output
