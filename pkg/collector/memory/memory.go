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

// Package memory collects the ARM/GPU memory split and GPU heap statistics.
package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/picore/vcgen/pkg/measurement"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// Subtype names of the memory measurement.
const (
	SubtypeSplit = "split"
	SubtypeOOM   = "oom"
	SubtypeReloc = "reloc"
)

// Source is the part of the vcgencmd gateway the memory collector reads.
type Source interface {
	Sources(cat vcgencmd.Category) ([]string, error)
	GetMem(ctx context.Context, region string) (int64, error)
	MemOOM(ctx context.Context) (map[string]string, error)
	MemRelocStats(ctx context.Context) (map[string]string, error)
}

// Collector gathers memory split and relocatable heap statistics.
type Collector struct {
	Source Source
}

// Collect implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	slog.Info("collecting memory information")

	regions, err := c.Source.Sources(vcgencmd.CategoryMem)
	if err != nil {
		return nil, err
	}

	split := measurement.NewSubtypeBuilder(SubtypeSplit)
	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mb, err := c.Source.GetMem(ctx, region)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s memory: %w", region, err)
		}
		split.SetInt64(region, mb)
	}

	oom, err := c.Source.MemOOM(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read oom statistics: %w", err)
	}

	reloc, err := c.Source.MemRelocStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read relocation statistics: %w", err)
	}

	return measurement.NewMeasurement(measurement.TypeMemory).
		WithSubtypeBuilder(split).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeOOM).SetStrings(oom)).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeReloc).SetStrings(reloc)).
		Build(), nil
}
