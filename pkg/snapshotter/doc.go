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

// Package snapshotter builds the overview report of a device.
//
// A snapshot runs the firmware, power, memory, codec and display collectors
// in that order, stamps a header and serializes the result:
//
//	kind: Snapshot
//	apiVersion: vcgen.picore.dev/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v0.3.0
//	  hostname: pi-kitchen
//	measurements:
//	  - type: Firmware
//	    subtypes: [...]
//	  - type: Power
//	    subtypes: [...]
//
// # Usage
//
//	s := &snapshotter.NodeSnapshotter{
//	    Version:    version,
//	    Factory:    collector.NewDefaultFactory(collector.WithCmd(cmd)),
//	    Serializer: serializer.NewFileWriterOrStdout(serializer.FormatYAML, path),
//	}
//	if err := s.Measure(ctx); err != nil {
//	    return err
//	}
//
// Collect returns the snapshot without serializing it, which the HTTP
// handlers use.
//
// # Metrics
//
// Collection duration, per-collector duration, outcome counts and the
// measurement count of the last snapshot are exported as Prometheus
// metrics with the vcgen_snapshot_ prefix.
package snapshotter
