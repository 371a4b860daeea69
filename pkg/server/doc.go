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

// Package server implements the HTTP surface of the vcgend exporter daemon.
//
// # Architecture
//
// The server is a thin, stateless wrapper around net/http:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Graceful shutdown driven by SIGINT/SIGTERM (golang.org/x/sync/errgroup)
//   - Health and readiness probes
//
// The device behind the API is slow and single-threaded, so the default
// rate limit is low (20 req/s, burst 40).
//
// # Usage
//
//	s := server.New(
//	    server.WithName("vcgend"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/throttled": h.handleThrottled,
//	    }),
//	    server.WithReadyHook(notifyReady),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Every handler passed through WithHandler runs behind the middleware
// chain; /health and /ready do not. A root index listing the routes is
// served on "/" unless the caller registers its own.
//
// # Configuration
//
// NewConfig applies the defaults from pkg/defaults and reads:
//
//	PORT                      listen port (default 9110)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_PARAMETER",
//	  "message": "invalid clock \"gpu\", must be one of [arm core ...]",
//	  "details": {"value": "gpu"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Status codes follow the error code:
//
//	INVALID_PARAMETER, INVALID_REQUEST  400
//	NOT_FOUND                           404
//	METHOD_NOT_ALLOWED                  405
//	RATE_LIMIT_EXCEEDED                 429
//	INTERNAL                            500
//	FORMAT_ERROR                        502
//	EXTERNAL_TOOL_ERROR                 503
//	SERVICE_UNAVAILABLE                 503
//	TIMEOUT                             504
//
// # Metrics
//
// Requests are counted and timed per route pattern as vcgen_http_*; rate
// limit rejections and recovered panics have their own counters.
package server
