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
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/picore/vcgen/pkg/serializer"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// Flags hold parse state, so every command gets its own instances.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatYAML),
	}
}

// parseOutputFormat returns the --format value, rejecting unknown formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q, must be one of %v", cmd.String("format"), serializer.SupportedFormats())
	}
	return f, nil
}

// writeResult serializes data to --output in --format.
func writeResult(ctx context.Context, cmd *cli.Command, data any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	s := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		_ = serializer.Close(s)
	}()

	if err := s.Serialize(ctx, data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// newGateway builds the gateway from the global --binary and --replay flags.
func newGateway(cmd *cli.Command) (*vcgencmd.Cmd, error) {
	opts := []vcgencmd.Option{vcgencmd.WithBinary(cmd.String("binary"))}
	if path := cmd.String("replay"); path != "" {
		return vcgencmd.NewReplay(path, opts...)
	}
	return vcgencmd.New(opts...), nil
}

// withTimeout bounds ctx by --timeout, falling back to def when unset.
func withTimeout(ctx context.Context, cmd *cli.Command, def time.Duration) (context.Context, context.CancelFunc) {
	d := cmd.Duration("timeout")
	if d <= 0 {
		d = def
	}
	return context.WithTimeout(ctx, d)
}
