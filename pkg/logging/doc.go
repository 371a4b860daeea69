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

// Package logging configures the slog JSON logger shared by vcgen and vcgend.
//
// Both binaries call SetDefaultStructuredLogger (or the WithLevel variant when
// a --log-level flag is present) once at startup; every other package logs
// through the slog package-level functions.
//
// # Levels
//
// ParseLogLevel accepts debug, info, warn (or warning) and error in any case.
// Anything else maps to info. The LOG_LEVEL environment variable supplies the
// level when no explicit one is given:
//
//	LOG_LEVEL=debug vcgen query measure_temp
//	LOG_LEVEL=warn vcgend
//
// Debug level adds source locations, which is where the per-invocation
// vcgencmd argument lists show up.
//
// # Output
//
// Records go to stderr as JSON with the module and version attached:
//
//	{"time":"2025-01-15T10:30:00Z","level":"INFO","msg":"server started","module":"vcgend","version":"v0.3.1","port":9110}
//
// Stdout stays free for command output, so vcgen output can be piped into
// other tools while logs are collected separately.
//
// NewLogLogger bridges the standard log package for net/http error logs.
package logging
