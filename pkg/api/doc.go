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

// Package api wires the gateway, the live exporter and the report builders
// into the vcgend HTTP daemon.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Configuration
//
//	VCGEN_BINARY  path to vcgencmd (default: vcgencmd on PATH)
//	VCGEN_REPLAY  answer every query from a captured response file
//	LOG_LEVEL     debug, info, warn or error
//	PORT, SHUTDOWN_TIMEOUT_SECONDS  see pkg/server
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/snapshot  - full device report (kind: Snapshot)
//   - GET /v1/throttled - decoded get_throttled state (kind: ThrottledReport)
//   - GET /v1/sources   - allowed parameter values, ?category=clock,volts
//   - GET /metrics      - Prometheus metrics, including live firmware readings
//
// System endpoints (no rate limiting):
//   - GET /health - liveness
//   - GET /ready  - readiness
//
// Responses are JSON unless the request asks for application/yaml.
//
// # Device access
//
// All tool invocations share one semaphore, so a scrape and a snapshot
// request never run vcgencmd at the same time.
//
// # systemd
//
// Under a Type=notify unit the daemon reports READY=1 once it is listening
// and STOPPING=1 when shutdown begins:
//
//	[Service]
//	Type=notify
//	ExecStart=/usr/local/bin/vcgend
//	Environment=PORT=9110
package api
