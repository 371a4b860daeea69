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

// Package defaults provides centralized configuration constants for vcgen.
//
// This package defines timeout values and other configuration defaults used
// across the codebase. Centralizing these values ensures consistency and makes
// tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Command timeouts: For a single vcgencmd invocation
//   - Collector timeouts: For report collection operations
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/picore/vcgen/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CommandTimeout)
//	defer cancel()
//
// The gateway in pkg/vcgencmd never applies a timeout of its own; callers
// (the CLI and the exporter daemon) bound invocations with these values.
package defaults
