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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/picore/vcgen/pkg/defaults"
	"github.com/picore/vcgen/pkg/logging"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

const (
	name           = "vcgen"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the vcgen command tree and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Raspberry Pi firmware diagnostics",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `vcgen queries the VideoCore firmware through the vcgencmd tool.

Every parameter is checked against a fixed allow-list before the tool runs,
and every reply is parsed into typed values.

  snapshot   - full report: firmware, power, memory, codecs and displays
  query      - run one diagnostic query
  sources    - list the accepted parameter values
  throttled  - decode the throttle bitfield
  display    - switch a display on or off, or read its power state
  capture    - record tool replies for offline replay`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "binary",
				Usage:   "Path to the vcgencmd executable",
				Value:   vcgencmd.DefaultBinary,
				Sources: cli.EnvVars("VCGEN_BINARY"),
			},
			&cli.StringFlag{
				Name:    "replay",
				Usage:   "Answer queries from a captured response file instead of the device",
				Sources: cli.EnvVars("VCGEN_REPLAY"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   fmt.Sprintf("Time limit for a command (default: %s, %s for snapshot)", defaults.CollectorTimeout, defaults.CLISnapshotTimeout),
				Sources: cli.EnvVars("VCGEN_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			snapshotCmd(),
			queryCmd(),
			sourcesCmd(),
			throttledCmd(),
			displayCmd(),
			captureCmd(),
		},
	}
}
