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

package defaults

import "time"

// Command timeouts for external tool invocations.
const (
	// CommandTimeout bounds a single vcgencmd invocation issued by the CLI.
	CommandTimeout = 5 * time.Second
)

// Collector timeouts for report collection operations.
const (
	// CollectorTimeout is the default timeout for a full collector pass.
	// Collectors should respect parent context deadlines when shorter.
	CollectorTimeout = 10 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// SnapshotHandlerTimeout is the timeout for snapshot requests.
	// A snapshot runs several dozen sequential invocations.
	SnapshotHandlerTimeout = 30 * time.Second

	// QueryHandlerTimeout is the timeout for single-query requests.
	QueryHandlerTimeout = 10 * time.Second

	// ScrapeTimeout bounds one Prometheus scrape of the live exporter.
	ScrapeTimeout = 8 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 45 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLISnapshotTimeout is the default timeout for snapshot operations.
	CLISnapshotTimeout = 2 * time.Minute
)
