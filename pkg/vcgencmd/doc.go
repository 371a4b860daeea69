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

// Package vcgencmd provides a typed gateway to the Raspberry Pi vcgencmd tool.
//
// # Overview
//
// Each exported method on Cmd runs one vcgencmd sub-command and parses its
// text output into a Go value. Parameters that select a clock, voltage
// rail, memory region, codec or display are checked against a fixed
// allow-list before the tool is invoked, so arbitrary arguments never
// reach the process.
//
//	cmd := vcgencmd.New()
//	hz, err := cmd.MeasureClock(ctx, "arm")
//	if err != nil {
//	    return err
//	}
//
// # Errors
//
// All failures are *errors.StructuredError values from pkg/errors:
//
//   - INVALID_PARAMETER: the value is not in the category allow-list
//   - EXTERNAL_TOOL_ERROR: the tool could not be started or exited non-zero
//   - FORMAT_ERROR: the output did not have the expected shape
//
// Format errors carry the command line and raw output in their context.
//
// # Sources
//
// Sources and DisplayIDs expose the allow-lists:
//
//	clocks, _ := cmd.Sources(vcgencmd.CategoryClock)
//
// Validation lowercases the value, so "ARM" and "arm" both select the arm
// clock. Display identifiers are integers.
//
// # Runners
//
// The tool is invoked through a Runner. ExecRunner uses os/exec; a
// ReplayRunner answers from responses captured on a real device with
// Capture, which allows the parsers to be exercised anywhere:
//
//	responses, err := vcgencmd.LoadResponses("captured_responses.json")
//	cmd := vcgencmd.New(vcgencmd.WithRunner(vcgencmd.ReplayRunner{Responses: responses}))
//
// # Concurrency
//
// Cmd holds no mutable state. Each call spawns its own process; the
// gateway does not serialize concurrent calls.
package vcgencmd
