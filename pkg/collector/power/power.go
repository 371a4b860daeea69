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

package power

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/picore/vcgen/pkg/measurement"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// Subtype names of the power measurement.
const (
	SubtypeClock       = "clock"
	SubtypeVolts       = "volts"
	SubtypeTemperature = "temperature"
	SubtypeThrottled   = "throttled"
)

// Source is the part of the vcgencmd gateway the power collector reads.
type Source interface {
	Sources(cat vcgencmd.Category) ([]string, error)
	MeasureClock(ctx context.Context, clock string) (int64, error)
	MeasureVolts(ctx context.Context, rail string) (float64, error)
	MeasureTemp(ctx context.Context) (float64, error)
	ReadRingOsc(ctx context.Context) (*vcgencmd.RingOsc, error)
	GetThrottled(ctx context.Context) (*vcgencmd.Throttled, error)
}

// Collector gathers clock frequencies, rail voltages, temperatures and the
// throttle state.
type Collector struct {
	Source Source
}

// Collect implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	slog.Info("collecting clocks, voltages and throttling state")

	clock, err := c.collectClocks(ctx)
	if err != nil {
		return nil, err
	}

	volts, err := c.collectVolts(ctx)
	if err != nil {
		return nil, err
	}

	temp, err := c.collectTemperature(ctx)
	if err != nil {
		return nil, err
	}

	throttled, err := c.Source.GetThrottled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read throttle state: %w", err)
	}
	tb := measurement.NewSubtypeBuilder(SubtypeThrottled).
		SetString(measurement.KeyRaw, throttled.RawData).
		SetString(measurement.KeyBinary, throttled.Binary)
	for label, set := range throttled.Flags() {
		tb.SetBool(label, set)
	}

	return measurement.NewMeasurement(measurement.TypePower).
		WithSubtype(*clock).
		WithSubtype(*volts).
		WithSubtype(*temp).
		WithSubtypeBuilder(tb).
		Build(), nil
}

func (c *Collector) collectClocks(ctx context.Context) (*measurement.Subtype, error) {
	clocks, err := c.Source.Sources(vcgencmd.CategoryClock)
	if err != nil {
		return nil, err
	}

	b := measurement.NewSubtypeBuilder(SubtypeClock)
	for _, clock := range clocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hz, err := c.Source.MeasureClock(ctx, clock)
		if err != nil {
			return nil, fmt.Errorf("failed to measure %s clock: %w", clock, err)
		}
		b.SetInt64(clock, hz)
	}

	st := b.Build()
	return &st, nil
}

func (c *Collector) collectVolts(ctx context.Context) (*measurement.Subtype, error) {
	rails, err := c.Source.Sources(vcgencmd.CategoryVolts)
	if err != nil {
		return nil, err
	}

	b := measurement.NewSubtypeBuilder(SubtypeVolts)
	for _, rail := range rails {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := c.Source.MeasureVolts(ctx, rail)
		if err != nil {
			return nil, fmt.Errorf("failed to measure %s voltage: %w", rail, err)
		}
		b.SetFloat64(rail, v)
	}

	st := b.Build()
	return &st, nil
}

func (c *Collector) collectTemperature(ctx context.Context) (*measurement.Subtype, error) {
	soc, err := c.Source.MeasureTemp(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to measure temperature: %w", err)
	}

	osc, err := c.Source.ReadRingOsc(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ring oscillator: %w", err)
	}

	st := measurement.NewSubtypeBuilder(SubtypeTemperature).
		SetFloat64(measurement.KeySoC, soc).
		SetFloat64(measurement.KeyRingOscFreq, osc.FreqMHz).
		SetFloat64(measurement.KeyRingOscVolt, osc.VoltsV).
		SetFloat64(measurement.KeyRingOscTemp, osc.TempC).
		Build()
	return &st, nil
}
