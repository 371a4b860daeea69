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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/picore/vcgen/pkg/exporter"
	"github.com/picore/vcgen/pkg/logging"
	"github.com/picore/vcgen/pkg/server"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

const (
	name           = "vcgend"
	versionDefault = "dev"

	envBinary = "VCGEN_BINARY"
	envReplay = "VCGEN_REPLAY"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/picore/vcgen/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Config selects the device the daemon reads from.
type Config struct {
	// Binary is the vcgencmd executable. Empty means vcgencmd on PATH.
	Binary string
	// Replay, when set, answers every query from a captured response file.
	Replay string
}

// ConfigFromEnv reads VCGEN_BINARY and VCGEN_REPLAY.
func ConfigFromEnv() Config {
	return Config{
		Binary: os.Getenv(envBinary),
		Replay: os.Getenv(envReplay),
	}
}

// Serve starts the daemon and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cmd, err := newCmd(ConfigFromEnv())
	if err != nil {
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(cmd)),
		server.WithReadyHook(func() { notify(daemon.SdNotifyReady) }),
		server.WithStoppingHook(func() { notify(daemon.SdNotifyStopping) }),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// routes builds the application routes for cmd, including a /metrics
// endpoint that carries the live exporter next to the process metrics.
func routes(cmd *vcgencmd.Cmd) map[string]http.HandlerFunc {
	reg := prometheus.NewRegistry()
	reg.MustRegister(exporter.New(cmd))
	metrics := promhttp.HandlerFor(
		prometheus.Gatherers{prometheus.DefaultGatherer, reg},
		promhttp.HandlerOpts{ErrorHandling: promhttp.ContinueOnError},
	)

	h := &handlers{cmd: cmd, version: version}
	return map[string]http.HandlerFunc{
		"/v1/snapshot":  h.handleSnapshot,
		"/v1/throttled": h.handleThrottled,
		"/v1/sources":   h.handleSources,
		"/metrics":      metrics.ServeHTTP,
	}
}

// newCmd builds the gateway for cfg. Every invocation, including those
// made by the exporter, goes through one serialRunner.
func newCmd(cfg Config) (*vcgencmd.Cmd, error) {
	var runner vcgencmd.Runner = vcgencmd.ExecRunner{}
	if cfg.Replay != "" {
		responses, err := vcgencmd.LoadResponses(cfg.Replay)
		if err != nil {
			return nil, fmt.Errorf("failed to load replay file: %w", err)
		}
		slog.Info("serving captured responses", "path", cfg.Replay, "count", len(responses))
		runner = vcgencmd.ReplayRunner{Responses: responses}
	}

	return vcgencmd.New(
		vcgencmd.WithBinary(cfg.Binary),
		vcgencmd.WithRunner(newSerialRunner(runner)),
	), nil
}

// notify sends state to systemd. Outside a notify-type unit it is a no-op.
func notify(state string) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		slog.Warn("failed to notify systemd", "state", state, "error", err)
		return
	}
	if sent {
		slog.Debug("notified systemd", "state", state)
	}
}
