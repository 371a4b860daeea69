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

package collector

import (
	"context"

	"github.com/picore/vcgen/pkg/measurement"
)

// Collector gathers one section of the report.
type Collector interface {
	Collect(ctx context.Context) (*measurement.Measurement, error)
}

// CollectorFunc adapts an ordinary function to the Collector interface.
type CollectorFunc func(ctx context.Context) (*measurement.Measurement, error)

// Collect implements Collector.
func (f CollectorFunc) Collect(ctx context.Context) (*measurement.Measurement, error) {
	return f(ctx)
}
