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

package exporter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picore/vcgen/pkg/vcgencmd"
)

const fixturePath = "../vcgencmd/testdata/captured_responses.json"

func newReplayCmd(t *testing.T) *vcgencmd.Cmd {
	t.Helper()
	responses, err := vcgencmd.LoadResponses(fixturePath)
	require.NoError(t, err)
	return vcgencmd.New(vcgencmd.WithRunner(vcgencmd.ReplayRunner{Responses: responses}))
}

func gather(t *testing.T, c prometheus.Collector) map[string]*dto.MetricFamily {
	t.Helper()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))
	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}
	return byName
}

func value(t *testing.T, f *dto.MetricFamily, labels map[string]string) float64 {
	t.Helper()
	require.NotNil(t, f)
	for _, m := range f.GetMetric() {
		match := true
		for _, lp := range m.GetLabel() {
			if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
				match = false
			}
		}
		if match {
			return m.GetGauge().GetValue()
		}
	}
	t.Fatalf("no %s sample with labels %v", f.GetName(), labels)
	return 0
}

func TestCollector_Replay(t *testing.T) {
	families := gather(t, New(newReplayCmd(t)))

	assert.InDelta(t, 47.2, value(t, families["vcgen_soc_temperature_celsius"], nil), 1e-9)
	assert.Equal(t, 1200000000.0, value(t, families["vcgen_clock_frequency_hertz"], map[string]string{"clock": "arm"}))
	assert.Equal(t, 0.0, value(t, families["vcgen_clock_frequency_hertz"], map[string]string{"clock": "h264"}))
	assert.Equal(t, 1.3125, value(t, families["vcgen_voltage_volts"], map[string]string{"rail": "core"}))
	assert.Equal(t, 948.0*1024*1024, value(t, families["vcgen_memory_split_bytes"], map[string]string{"region": "arm"}))
	assert.Equal(t, 76.0*1024*1024, value(t, families["vcgen_memory_split_bytes"], map[string]string{"region": "gpu"}))
	assert.Equal(t, 1.0, value(t, families["vcgen_scrape_success"], nil))

	assert.Len(t, families["vcgen_clock_frequency_hertz"].GetMetric(), 12)
	assert.Len(t, families["vcgen_voltage_volts"].GetMetric(), 4)
	assert.Len(t, families["vcgen_throttled"].GetMetric(), len(vcgencmd.ThrottleBits))

	throttled := families["vcgen_throttled"]
	assert.Equal(t, 1.0, value(t, throttled, map[string]string{"bit": "16"}))
	assert.Equal(t, 1.0, value(t, throttled, map[string]string{"bit": "18"}))
	assert.Equal(t, 0.0, value(t, throttled, map[string]string{"bit": "0"}))
	assert.Equal(t, 0.0, value(t, throttled, map[string]string{"bit": "19"}))
}

func TestCollector_PartialFailure(t *testing.T) {
	src := &stubSource{
		temp:    51.5,
		voltErr: errors.New("tool crashed"),
	}
	families := gather(t, New(src))

	assert.Equal(t, 51.5, value(t, families["vcgen_soc_temperature_celsius"], nil))
	assert.Equal(t, 0.0, value(t, families["vcgen_scrape_success"], nil))
	assert.NotContains(t, families, "vcgen_voltage_volts")
	assert.Contains(t, families, "vcgen_clock_frequency_hertz")
	assert.Contains(t, families, "vcgen_scrape_duration_seconds")
}

func TestCollector_Timeout(t *testing.T) {
	src := &stubSource{temp: 40}
	c := New(src, WithTimeout(25*time.Millisecond))
	assert.Equal(t, 25*time.Millisecond, c.timeout)

	gather(t, c)
	require.NotNil(t, src.ctx)
	deadline, ok := src.ctx.Deadline()
	require.True(t, ok, "scrape context should carry a deadline")
	assert.WithinDuration(t, time.Now(), deadline, time.Second)

	ignored := New(src, WithTimeout(0))
	assert.Greater(t, ignored.timeout, time.Duration(0))
}

func TestCollector_Lint(t *testing.T) {
	problems, err := testutil.CollectAndLint(New(newReplayCmd(t)))
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestCollector_MemorySplitInBytes(t *testing.T) {
	families := gather(t, New(&stubSource{temp: 40}))

	assert.NotContains(t, families, "vcgen_memory_split_megabytes")
	assert.Equal(t, 512.0*1024*1024, value(t, families["vcgen_memory_split_bytes"], map[string]string{"region": "arm"}))
}

type stubSource struct {
	ctx     context.Context
	temp    float64
	voltErr error
}

func (s *stubSource) Sources(cat vcgencmd.Category) ([]string, error) {
	switch cat {
	case vcgencmd.CategoryClock:
		return []string{"arm"}, nil
	case vcgencmd.CategoryVolts:
		return []string{"core"}, nil
	case vcgencmd.CategoryMem:
		return []string{"arm", "gpu"}, nil
	default:
		return nil, errors.New("unexpected category")
	}
}

func (s *stubSource) MeasureTemp(ctx context.Context) (float64, error) {
	s.ctx = ctx
	return s.temp, nil
}

func (s *stubSource) MeasureClock(context.Context, string) (int64, error) {
	return 600000000, nil
}

func (s *stubSource) MeasureVolts(context.Context, string) (float64, error) {
	if s.voltErr != nil {
		return 0, s.voltErr
	}
	return 1.2, nil
}

func (s *stubSource) GetMem(context.Context, string) (int64, error) {
	return 512, nil
}

func (s *stubSource) GetThrottled(context.Context) (*vcgencmd.Throttled, error) {
	return &vcgencmd.Throttled{RawData: "0x0", Breakdown: map[int]bool{}}, nil
}
