// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/toknack/internal/output"
)

// FlagsValidator checks the combination of flags before any action runs.
func FlagsValidator(ctx context.Context, c *cli.Command) error {
	// Both are accepted; the listing gives details priority.
	if c.Bool("details") && c.Bool("code") {
		log.Debug("--details and --code both set, --code is ignored")
	}

	if c.String("output") != output.FormatText && !c.Bool("details") {
		log.Debugf("--output=%s only applies with --details", c.String("output"))
	}

	return nil
}

// NoArgsValidator rejects positional arguments on the root action.
func NoArgsValidator(ctx context.Context, c *cli.Command) error {
	if c.Args().Present() {
		return fmt.Errorf("unexpected argument: %s", c.Args().First())
	}
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func NotEmptyValidator(value any) error {
	if strings.TrimSpace(value.(string)) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}
