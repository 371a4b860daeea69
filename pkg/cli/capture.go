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
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/picore/vcgen/pkg/defaults"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

func captureCmd() *cli.Command {
	return &cli.Command{
		Name:                  "capture",
		EnableShellCompletion: true,
		Usage:                 "Record tool replies for offline replay",
		Description: `Run every read-only query against the device and store the raw
stdout and stderr of each in a JSON file.

The file can be passed to --replay (or VCGEN_REPLAY) to run vcgen and
vcgend on any machine. Commands that change display power are never run.`,
		Flags: []cli.Flag{
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.String("replay") != "" {
				return fmt.Errorf("capture reads from the device and cannot be combined with --replay")
			}

			ctx, cancel := withTimeout(ctx, cmd, defaults.CLISnapshotTimeout)
			defer cancel()

			responses, err := vcgencmd.Capture(ctx, vcgencmd.ExecRunner{}, cmd.String("binary"), vcgencmd.CaptureCommands)
			if err != nil {
				return err
			}

			var out io.Writer = cmd.Root().Writer
			if path := cmd.String("output"); path != "" && path != "-" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", path, err)
				}
				defer f.Close()
				out = f
			}

			if err := responses.Write(out); err != nil {
				return err
			}
			slog.Info("captured responses", "count", len(responses), "output", cmd.String("output"))
			return nil
		},
	}
}
