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
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/picore/vcgen/pkg/defaults"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

const namespace = "vcgen"

// Source is the subset of the gateway read on each scrape.
type Source interface {
	Sources(cat vcgencmd.Category) ([]string, error)
	MeasureTemp(ctx context.Context) (float64, error)
	MeasureClock(ctx context.Context, clock string) (int64, error)
	MeasureVolts(ctx context.Context, rail string) (float64, error)
	GetMem(ctx context.Context, region string) (int64, error)
	GetThrottled(ctx context.Context) (*vcgencmd.Throttled, error)
}

// Collector implements prometheus.Collector for firmware readings.
type Collector struct {
	source  Source
	timeout time.Duration
	mu      sync.Mutex

	tempDesc      *prometheus.Desc
	clockDesc     *prometheus.Desc
	voltsDesc     *prometheus.Desc
	memDesc       *prometheus.Desc
	throttledDesc *prometheus.Desc

	scrapeSuccessDesc  *prometheus.Desc
	scrapeDurationDesc *prometheus.Desc
}

// Option configures a Collector.
type Option func(*Collector)

// WithTimeout bounds the time a single scrape may spend querying the device.
func WithTimeout(d time.Duration) Option {
	return func(c *Collector) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a Collector reading from source.
func New(source Source, opts ...Option) *Collector {
	c := &Collector{
		source:  source,
		timeout: defaults.ScrapeTimeout,

		tempDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "soc", "temperature_celsius"),
			"SoC temperature in degrees Celsius",
			nil, nil,
		),
		clockDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "clock", "frequency_hertz"),
			"Current frequency of a clock source in hertz",
			[]string{"clock"}, nil,
		),
		voltsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "voltage_volts"),
			"Current voltage of a supply rail in volts",
			[]string{"rail"}, nil,
		),
		memDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "memory", "split_bytes"),
			"Memory assigned to a region in bytes",
			[]string{"region"}, nil,
		),
		throttledDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "throttled"),
			"Throttle condition bit of get_throttled (1 when set)",
			[]string{"bit", "flag"}, nil,
		),

		scrapeSuccessDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "scrape", "success"),
			"Whether every reading of the last scrape succeeded",
			nil, nil,
		),
		scrapeDurationDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "scrape", "duration_seconds"),
			"Duration of the last scrape in seconds",
			nil, nil,
		),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.tempDesc
	ch <- c.clockDesc
	ch <- c.voltsDesc
	ch <- c.memDesc
	ch <- c.throttledDesc
	ch <- c.scrapeSuccessDesc
	ch <- c.scrapeDurationDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		ch <- prometheus.MustNewConstMetric(c.scrapeDurationDesc, prometheus.GaugeValue, v)
	}))
	defer timer.ObserveDuration()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	failed := 0
	fail := func(reading string, err error) {
		failed++
		slog.Warn("failed to read metric",
			slog.String("reading", reading),
			slog.String("error", err.Error()))
	}

	if v, err := c.source.MeasureTemp(ctx); err != nil {
		fail("temperature", err)
	} else {
		ch <- prometheus.MustNewConstMetric(c.tempDesc, prometheus.GaugeValue, v)
	}

	c.eachSource(vcgencmd.CategoryClock, fail, func(clock string) error {
		v, err := c.source.MeasureClock(ctx, clock)
		if err != nil {
			return err
		}
		ch <- prometheus.MustNewConstMetric(c.clockDesc, prometheus.GaugeValue, float64(v), clock)
		return nil
	})

	c.eachSource(vcgencmd.CategoryVolts, fail, func(rail string) error {
		v, err := c.source.MeasureVolts(ctx, rail)
		if err != nil {
			return err
		}
		ch <- prometheus.MustNewConstMetric(c.voltsDesc, prometheus.GaugeValue, v, rail)
		return nil
	})

	c.eachSource(vcgencmd.CategoryMem, fail, func(region string) error {
		v, err := c.source.GetMem(ctx, region)
		if err != nil {
			return err
		}
		ch <- prometheus.MustNewConstMetric(c.memDesc, prometheus.GaugeValue, float64(v)*bytesPerMegabyte, region)
		return nil
	})

	if t, err := c.source.GetThrottled(ctx); err != nil {
		fail("throttled", err)
	} else {
		for _, bit := range vcgencmd.ThrottleBits {
			ch <- prometheus.MustNewConstMetric(c.throttledDesc, prometheus.GaugeValue,
				boolToFloat(t.Breakdown[bit]), strconv.Itoa(bit), vcgencmd.ThrottleLabel(bit))
		}
	}

	success := 1.0
	if failed > 0 {
		success = 0
	}
	ch <- prometheus.MustNewConstMetric(c.scrapeSuccessDesc, prometheus.GaugeValue, success)
}

// eachSource calls read for every allowed value of cat. A failing value is
// reported through fail and does not stop the remaining values.
func (c *Collector) eachSource(cat vcgencmd.Category, fail func(string, error), read func(string) error) {
	values, err := c.source.Sources(cat)
	if err != nil {
		fail(cat.String(), err)
		return
	}
	for _, v := range values {
		if err := read(v); err != nil {
			fail(cat.String()+"/"+v, err)
		}
	}
}

// get_mem reports whole megabytes.
const bytesPerMegabyte = 1024 * 1024

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
