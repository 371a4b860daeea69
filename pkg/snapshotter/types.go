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

package snapshotter

import (
	"context"

	"github.com/picore/vcgen/pkg/header"
	"github.com/picore/vcgen/pkg/measurement"
)

// Snapshotter collects a report and writes it to its destination.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// NewSnapshot creates a new Snapshot instance with an initialized Measurements slice.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Measurements: make([]*measurement.Measurement, 0),
	}
}

// Snapshot is the overview report of one device: a header followed by one
// measurement per report section.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Measurements contains the collected measurements in report order.
	Measurements []*measurement.Measurement `json:"measurements" yaml:"measurements"`
}

// Get returns the measurement of type t, or nil when the snapshot has none.
func (s *Snapshot) Get(t measurement.Type) *measurement.Measurement {
	for _, m := range s.Measurements {
		if m != nil && m.Type == t {
			return m
		}
	}
	return nil
}
