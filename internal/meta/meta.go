// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/staranto/toknack/internal/config"
)

// Meta are the meta-options that are available to every command action.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
	// Stdout receives listings, details and snippets.
	Stdout io.Writer
}
