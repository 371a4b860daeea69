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

// Package cli implements the vcgen command-line interface.
//
// # Overview
//
// vcgen wraps the Raspberry Pi vcgencmd tool. Every command validates its
// parameters against the catalog in the vcgencmd package before the tool is
// invoked, and prints the parsed reply rather than the raw text.
//
// # Commands
//
// snapshot - Full device report (firmware, power, memory, codecs, displays):
//
//	vcgen snapshot [--output FILE] [--format yaml|json|table]
//
// query - Run a single diagnostic query:
//
//	vcgen query measure_temp
//	vcgen query measure_clock arm
//	vcgen query --format json get_mem gpu
//
// The operation name matches the vcgencmd command. Operations that take a
// parameter (measure_clock, measure_volts, get_mem, codec_enabled,
// get_config, display_power) reject a missing one.
//
// sources - List the accepted parameter values per category:
//
//	vcgen sources [clock|volts|mem|codec|display_id ...]
//
// throttled - Decode the get_throttled bitfield into named flags:
//
//	vcgen throttled --format table
//
// display - Switch a display on or off, or read its power state:
//
//	vcgen display on --id 2
//	vcgen display state --id 7
//
// capture - Record replies from the real tool for offline replay:
//
//	vcgen capture --output responses.json
//
// # Global Flags
//
//	--binary      Path to vcgencmd (env: VCGEN_BINARY)
//	--replay      Answer from a captured response file (env: VCGEN_REPLAY)
//	--timeout     Time limit for a command (env: VCGEN_TIMEOUT)
//	--log-level   debug, info, warn, error (env: LOG_LEVEL)
//
// Per-command flags --output (-o) and --format (-t) select the destination
// and encoding. YAML is the default; JSON and a flattened table are also
// available.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, tool failure, parse failure)
//	2  Context canceled or timeout
//
// # Build Information
//
// Version details are injected at build time:
//
//	go build -ldflags "-X github.com/picore/vcgen/pkg/cli.version=1.0.0"
package cli
