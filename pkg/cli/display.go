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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/picore/vcgen/pkg/defaults"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// displayState is the printed result of the display commands.
type displayState struct {
	Display int                 `json:"display" yaml:"display"`
	Power   vcgencmd.PowerState `json:"power" yaml:"power"`
}

func displayIDFlag() cli.Flag {
	return &cli.IntFlag{
		Name:     "id",
		Usage:    "Display identifier (see: vcgen sources display_id)",
		Required: true,
	}
}

func displayCmd() *cli.Command {
	return &cli.Command{
		Name:                  "display",
		EnableShellCompletion: true,
		Usage:                 "Control display power",
		Commands: []*cli.Command{
			displaySetCmd("on", "Switch a display on", (*vcgencmd.Cmd).DisplayPowerOn),
			displaySetCmd("off", "Switch a display off", (*vcgencmd.Cmd).DisplayPowerOff),
			{
				Name:  "state",
				Usage: "Read the power state of a display",
				Flags: []cli.Flag{displayIDFlag(), outputFlag(), formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDisplay(ctx, cmd, nil)
				},
			},
		},
	}
}

func displaySetCmd(name, usage string, set func(*vcgencmd.Cmd, context.Context, int) error) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{displayIDFlag(), outputFlag(), formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDisplay(ctx, cmd, set)
		},
	}
}

// runDisplay applies set, when given, and then reports the state the
// firmware reads back.
func runDisplay(ctx context.Context, cmd *cli.Command, set func(*vcgencmd.Cmd, context.Context, int) error) error {
	gw, err := newGateway(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, cmd, defaults.CollectorTimeout)
	defer cancel()

	id := cmd.Int("id")
	if set != nil {
		if err := set(gw, ctx, id); err != nil {
			return err
		}
		slog.Debug("display power changed", "display", id, "command", cmd.Name)
	}

	state, err := gw.DisplayPowerState(ctx, id)
	if err != nil {
		return err
	}
	return writeResult(ctx, cmd, displayState{Display: id, Power: state})
}
