// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/staranto/toknack/internal/command"
	mylog "github.com/staranto/toknack/internal/log"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	mylog.InitLogger()
	log.Debugf("args=%v", args)

	app, err := command.InitApp(ctx, args, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
