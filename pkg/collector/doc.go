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

// Package collector turns vcgencmd query results into report measurements.
//
// # Core Interface
//
//	type Collector interface {
//	    Collect(ctx context.Context) (*measurement.Measurement, error)
//	}
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation so the snapshotter can
// be tested without a device:
//
//	factory := collector.NewDefaultFactory(collector.WithCmd(cmd))
//	for _, c := range collector.All(factory) {
//	    m, err := c.Collect(ctx)
//	    ...
//	}
//
// # Available Collectors
//
//   - firmware: build strings, log levels, camera, OTP, config
//   - power: clocks, voltages, temperatures, throttle flags
//   - memory: ARM/GPU split, OOM and relocation statistics
//   - codec: hardware decoder license state
//   - display: LCD, HDMI timings, dispmanx layers, display power
//
// Each collector depends on a narrow Source interface listing the gateway
// methods it calls; *vcgencmd.Cmd satisfies all of them.
//
// Collectors invoke the tool one sub-command at a time and honor context
// cancellation between invocations.
package collector
