// Copyright (c) 2025, The vcgen Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/picore/vcgen/pkg/defaults"
	apperrors "github.com/picore/vcgen/pkg/errors"
	"github.com/picore/vcgen/pkg/snapshotter"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

func sourcesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sources",
		EnableShellCompletion: true,
		Usage:                 "List accepted parameter values",
		ArgsUsage:             "[category...]",
		Description: fmt.Sprintf(`List the values each restricted parameter accepts.

Categories: %v

Without arguments every category is listed.`, vcgencmd.Categories),
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cats := make([]vcgencmd.Category, 0, cmd.Args().Len())
			for _, arg := range cmd.Args().Slice() {
				cat, ok := vcgencmd.ParseCategory(arg)
				if !ok {
					return apperrors.NewWithContext(apperrors.ErrCodeInvalidParameter,
						fmt.Sprintf("unknown category %q, must be one of %v", arg, vcgencmd.Categories),
						map[string]any{"value": arg})
				}
				cats = append(cats, cat)
			}

			gw, err := newGateway(cmd)
			if err != nil {
				return err
			}

			list, err := snapshotter.NewSourceList(version, gw, cats...)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, list)
		},
	}
}

func throttledCmd() *cli.Command {
	return &cli.Command{
		Name:                  "throttled",
		EnableShellCompletion: true,
		Usage:                 "Decode the throttle bitfield",
		Description: `Read get_throttled and label each meaningful bit:

  0   Under-voltage detected
  1   Arm frequency capped
  2   Currently throttled
  3   Soft temperature limit active
  16  Under-voltage has occurred
  17  Arm frequency capping has occurred
  18  Throttling has occurred
  19  Soft temperature limit has occurred`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gw, err := newGateway(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(ctx, cmd, defaults.CollectorTimeout)
			defer cancel()

			t, err := gw.GetThrottled(ctx)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, snapshotter.NewThrottledReport(version, t))
		},
	}
}
