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

// Package measurement provides the typed reading model used by vcgen reports.
//
// # Core Types
//
// The package defines a hierarchical structure for measurements:
//   - Type: the report section (Firmware, Power, Memory, Codec, Display)
//   - Measurement: a Type and a slice of Subtypes
//   - Subtype: named collection of readings (e.g., "clock", "volts")
//   - Reading: interface over scalar values (int64, float64, string, bool)
//
// # Building Measurements
//
//	m := NewMeasurement(TypePower).
//	    WithSubtypeBuilder(
//	        NewSubtypeBuilder("clock").
//	            SetInt64("arm", 1200000000).
//	            SetInt64("core", 400000000),
//	    ).
//	    Build()
//
// # Accessing Data
//
//	hz, err := m.GetSubtype("clock").GetInt64("arm")
//
// # Serialization
//
// Readings marshal to their bare scalar value in JSON and YAML. Decoding a
// Subtype restores each value as a Reading of the decoded Go type.
package measurement
