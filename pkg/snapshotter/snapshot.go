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
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/picore/vcgen/pkg/collector"
	"github.com/picore/vcgen/pkg/header"
	"github.com/picore/vcgen/pkg/serializer"
)

// NodeSnapshotter collects the overview report of the local device.
// Collectors run one after another so that at most one vcgencmd process
// is active at a time.
type NodeSnapshotter struct {
	// Version is the tool version recorded in the snapshot header.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is the serializer to use for output. If nil, a default stdout JSON serializer is used.
	Serializer serializer.Serializer

	// Metadata holds extra header metadata entries, e.g. the tool path.
	Metadata map[string]string
}

type step struct {
	name   string
	create func() collector.Collector
}

func (n *NodeSnapshotter) steps() []step {
	return []step{
		{"firmware", n.Factory.CreateFirmwareCollector},
		{"power", n.Factory.CreatePowerCollector},
		{"memory", n.Factory.CreateMemoryCollector},
		{"codec", n.Factory.CreateCodecCollector},
		{"display", n.Factory.CreateDisplayCollector},
	}
}

// Measure collects the snapshot and serializes it with the configured
// Serializer. If any collector fails, nothing is written.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap, err := n.Collect(ctx)
	if err != nil {
		return err
	}

	if n.Serializer == nil {
		n.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := n.Serializer.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Collect runs every collector in report order and returns the snapshot.
func (n *NodeSnapshotter) Collect(ctx context.Context) (*Snapshot, error) {
	if n.Factory == nil {
		n.Factory = collector.NewDefaultFactory()
	}

	slog.Debug("starting device snapshot")

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	snap := NewSnapshot()
	snap.Init(header.KindSnapshot, n.Version)
	if host, err := os.Hostname(); err == nil {
		snap.Metadata[header.KeyHostname] = host
	} else {
		slog.Warn("failed to read hostname", slog.String("error", err.Error()))
	}
	for k, v := range n.Metadata {
		snap.Metadata[k] = v
	}

	for _, s := range n.steps() {
		if err := ctx.Err(); err != nil {
			snapshotCollectionTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("snapshot canceled before %s: %w", s.name, err)
		}

		collectorStart := time.Now()
		m, err := s.create().Collect(ctx)
		snapshotCollectorDuration.WithLabelValues(s.name).Observe(time.Since(collectorStart).Seconds())
		if err != nil {
			slog.Error("collector failed", slog.String("collector", s.name), slog.String("error", err.Error()))
			snapshotCollectionTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("failed to collect %s: %w", s.name, err)
		}
		snap.Measurements = append(snap.Measurements, m)
	}

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	snapshotMeasurementCount.Set(float64(len(snap.Measurements)))

	slog.Debug("snapshot collection complete", slog.Int("measurements", len(snap.Measurements)))

	return snap, nil
}
