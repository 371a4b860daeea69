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

// Package codec collects the hardware decoder license state of every codec.
package codec

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/picore/vcgen/pkg/measurement"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// SubtypeEnabled is the only subtype of the codec measurement.
const SubtypeEnabled = "enabled"

// Source is the part of the vcgencmd gateway the codec collector reads.
type Source interface {
	Sources(cat vcgencmd.Category) ([]string, error)
	CodecEnabled(ctx context.Context, codec string) (bool, error)
}

// Collector gathers codec_enabled for every allow-listed codec.
type Collector struct {
	Source Source
}

// Collect implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	slog.Info("collecting codec state")

	codecs, err := c.Source.Sources(vcgencmd.CategoryCodec)
	if err != nil {
		return nil, err
	}

	b := measurement.NewSubtypeBuilder(SubtypeEnabled)
	for _, codec := range codecs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		enabled, err := c.Source.CodecEnabled(ctx, codec)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s codec state: %w", codec, err)
		}
		b.SetBool(codec, enabled)
	}

	return measurement.NewMeasurement(measurement.TypeCodec).
		WithSubtypeBuilder(b).
		Build(), nil
}
