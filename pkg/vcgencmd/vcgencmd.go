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

package vcgencmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/picore/vcgen/pkg/errors"
)

// DefaultBinary is the name of the external tool.
const DefaultBinary = "vcgencmd"

// Cmd is the command gateway to vcgencmd. It holds the fixed allow-list
// catalog and the runner used to invoke the tool; it keeps no other state
// and may be shared between goroutines.
type Cmd struct {
	binary  string
	runner  Runner
	sources catalog
}

// Option configures a Cmd.
type Option func(*Cmd)

// WithBinary sets the tool path, e.g. /opt/vc/bin/vcgencmd on older images.
func WithBinary(path string) Option {
	return func(c *Cmd) {
		if p := strings.TrimSpace(path); p != "" {
			c.binary = p
		}
	}
}

// WithRunner sets the runner used to invoke the tool.
func WithRunner(r Runner) Option {
	return func(c *Cmd) {
		if r != nil {
			c.runner = r
		}
	}
}

// New creates a gateway with the default catalog and an exec-based runner.
func New(opts ...Option) *Cmd {
	c := &Cmd{
		binary:  DefaultBinary,
		runner:  ExecRunner{},
		sources: newCatalog(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Binary returns the tool path the gateway invokes.
func (c *Cmd) Binary() string {
	return c.binary
}

// run invokes the tool with args and returns stdout as text.
func (c *Cmd) run(ctx context.Context, args ...string) (string, error) {
	subcommand := args[0]
	cmdline := strings.Join(append([]string{c.binary}, args...), " ")

	slog.Debug("executing vcgencmd", "command", cmdline)

	start := time.Now()
	stdout, stderr, err := c.runner.Run(ctx, c.binary, args...)
	invocationDuration.WithLabelValues(subcommand).Observe(time.Since(start).Seconds())

	if err != nil {
		invocationsTotal.WithLabelValues(subcommand, "tool_error").Inc()
		details := map[string]any{
			"command": cmdline,
			"stderr":  strings.TrimSpace(string(stderr)),
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			details["exitCode"] = exitErr.ExitCode()
		}
		return "", apperrors.WrapWithContext(apperrors.ErrCodeExternalTool,
			fmt.Sprintf("failed to run %q", cmdline), err, details)
	}

	if len(stderr) > 0 {
		slog.Debug("vcgencmd wrote to stderr",
			"command", cmdline,
			"stderr", strings.TrimSpace(string(stderr)))
	}

	if !utf8.Valid(stdout) {
		invocationsTotal.WithLabelValues(subcommand, "format_error").Inc()
		return "", apperrors.NewWithContext(apperrors.ErrCodeFormat,
			fmt.Sprintf("output of %q is not valid UTF-8", cmdline),
			map[string]any{"command": cmdline})
	}

	invocationsTotal.WithLabelValues(subcommand, "success").Inc()
	return string(stdout), nil
}
