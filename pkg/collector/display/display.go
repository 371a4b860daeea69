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

package display

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	apperrors "github.com/picore/vcgen/pkg/errors"
	"github.com/picore/vcgen/pkg/measurement"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// Subtype names of the display measurement.
const (
	SubtypeLCD         = "lcd"
	SubtypeHDMITimings = "hdmi-timings"
	SubtypeDispmanx    = "dispmanx"
	SubtypePower       = "power"
)

// Source is the part of the vcgencmd gateway the display collector reads.
type Source interface {
	DisplayIDs() []int
	GetLCDInfo(ctx context.Context) (*vcgencmd.LCDInfo, error)
	HDMITimings(ctx context.Context) (*vcgencmd.HDMITimings, error)
	DispmanxList(ctx context.Context) (map[string]string, error)
	DisplayPowerState(ctx context.Context, id int) (vcgencmd.PowerState, error)
}

// Collector gathers LCD geometry, HDMI timings, dispmanx layers and the
// power state of every display.
type Collector struct {
	Source Source
}

// Collect implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	slog.Info("collecting display information")

	lcd, err := c.Source.GetLCDInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read lcd info: %w", err)
	}

	timings, err := c.Source.HDMITimings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read hdmi timings: %w", err)
	}
	hdmi := measurement.NewSubtypeBuilder(SubtypeHDMITimings).
		SetString(measurement.KeyRaw, timings.RawData).
		SetStrings(timings.Breakdown.Map())

	layers, err := c.Source.DispmanxList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read dispmanx layers: %w", err)
	}

	power, err := c.collectPower(ctx)
	if err != nil {
		return nil, err
	}

	return measurement.NewMeasurement(measurement.TypeDisplay).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeLCD).
			SetString(measurement.KeyHeight, lcd.Height).
			SetString(measurement.KeyWidth, lcd.Width).
			SetString(measurement.KeyDepth, lcd.Depth)).
		WithSubtypeBuilder(hdmi).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeDispmanx).SetStrings(layers)).
		WithSubtypeBuilder(power).
		Build(), nil
}

// collectPower reads the power state of each display. A display whose state
// cannot be read is reported as unknown and noted in the subtype context.
func (c *Collector) collectPower(ctx context.Context) (*measurement.SubtypeBuilder, error) {
	b := measurement.NewSubtypeBuilder(SubtypePower)

	for _, id := range c.Source.DisplayIDs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key := strconv.Itoa(id)
		state, err := c.Source.DisplayPowerState(ctx, id)
		switch {
		case err == nil:
			b.SetString(key, state.String())
		case apperrors.IsCode(err, apperrors.ErrCodeFormat), apperrors.IsCode(err, apperrors.ErrCodeExternalTool):
			slog.Warn("display power state unavailable", "display", id, "error", err)
			b.SetString(key, vcgencmd.PowerUnknown.String()).Note(key, err.Error())
		default:
			return nil, fmt.Errorf("failed to read display %d power state: %w", id, err)
		}
	}

	return b, nil
}
