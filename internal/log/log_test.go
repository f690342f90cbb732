// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomHandler_HandleLog(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{W: &buf}

	e := &log.Entry{
		Level:     log.WarnLevel,
		Message:   "registry loaded",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Fields:    log.Fields{"commands": 3},
	}

	require.NoError(t, h.HandleLog(e))
	assert.Equal(t, "2026-01-02 03:04:05 W registry loaded commands=3\n", buf.String())
}

func TestInitLogger_LevelFromEnv(t *testing.T) {
	t.Setenv("TOKNACK_LOG", "debug")
	InitLogger()

	l, ok := log.Log.(*log.Logger)
	require.True(t, ok)
	assert.Equal(t, log.DebugLevel, l.Level)
}
