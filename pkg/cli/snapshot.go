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

	"github.com/urfave/cli/v3"

	"github.com/picore/vcgen/pkg/collector"
	"github.com/picore/vcgen/pkg/defaults"
	"github.com/picore/vcgen/pkg/header"
	"github.com/picore/vcgen/pkg/serializer"
	"github.com/picore/vcgen/pkg/snapshotter"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Print the full device report",
		Description: `Collect every diagnostic the tool offers into one report:
  - Firmware: versions, log status, camera, OTP, configuration
  - Power: clocks, voltages, temperatures, throttle flags
  - Memory: ARM/GPU split, OOM and relocation statistics
  - Codecs: hardware codec license state
  - Displays: LCD geometry, HDMI timings, layers, power state

Collectors run one after another. A display whose power state cannot be
read is reported as "unknown"; any other failure aborts the report.

The snapshot can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			gw, err := newGateway(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(ctx, cmd, defaults.CLISnapshotTimeout)
			defer cancel()

			s := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				_ = serializer.Close(s)
			}()

			ns := snapshotter.NodeSnapshotter{
				Version:    version,
				Factory:    collector.NewDefaultFactory(collector.WithCmd(gw)),
				Serializer: s,
				Metadata:   map[string]string{header.KeyBinary: gw.Binary()},
			}

			return ns.Measure(ctx)
		},
	}
}
