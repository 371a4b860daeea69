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
	"errors"
	"testing"

	"github.com/picore/vcgen/pkg/collector"
	"github.com/picore/vcgen/pkg/header"
	"github.com/picore/vcgen/pkg/measurement"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

func TestNewSnapshot(t *testing.T) {
	snap := NewSnapshot()
	if snap.Measurements == nil {
		t.Error("Measurements should be initialized")
	}
	if len(snap.Measurements) != 0 {
		t.Errorf("Measurements length = %d, want 0", len(snap.Measurements))
	}
	if snap.Get(measurement.TypePower) != nil {
		t.Error("Get on empty snapshot should return nil")
	}
}

func TestNodeSnapshotter_Measure(t *testing.T) {
	t.Run("collects in report order", func(t *testing.T) {
		factory := &mockFactory{}
		s := &mockSerializer{}
		snapshotter := &NodeSnapshotter{
			Version:    "1.0.0",
			Factory:    factory,
			Serializer: s,
			Metadata:   map[string]string{header.KeyBinary: "/usr/bin/vcgencmd"},
		}

		if err := snapshotter.Measure(context.Background()); err != nil {
			t.Fatalf("Measure() error = %v", err)
		}
		if !s.serialized {
			t.Fatal("snapshot was not serialized")
		}

		want := []string{"firmware", "power", "memory", "codec", "display"}
		if len(factory.calls) != len(want) {
			t.Fatalf("calls = %v, want %v", factory.calls, want)
		}
		for i := range want {
			if factory.calls[i] != want[i] {
				t.Errorf("call %d = %s, want %s", i, factory.calls[i], want[i])
			}
		}

		snap, ok := s.data.(*Snapshot)
		if !ok {
			t.Fatalf("serialized %T, want *Snapshot", s.data)
		}
		if snap.Kind != header.KindSnapshot {
			t.Errorf("Kind = %s, want %s", snap.Kind, header.KindSnapshot)
		}
		if snap.APIVersion != header.APIVersion {
			t.Errorf("APIVersion = %s", snap.APIVersion)
		}
		if snap.Metadata[header.KeyVersion] != "1.0.0" {
			t.Errorf("version = %s", snap.Metadata[header.KeyVersion])
		}
		if snap.Metadata[header.KeyBinary] != "/usr/bin/vcgencmd" {
			t.Errorf("binary = %s", snap.Metadata[header.KeyBinary])
		}
		if len(snap.Measurements) != 5 {
			t.Errorf("Measurements = %d, want 5", len(snap.Measurements))
		}
	})

	t.Run("stops at first collector error", func(t *testing.T) {
		factory := &mockFactory{failOn: "memory"}
		s := &mockSerializer{}
		snapshotter := &NodeSnapshotter{Factory: factory, Serializer: s}

		err := snapshotter.Measure(context.Background())
		if err == nil {
			t.Fatal("Measure() should return error when collector fails")
		}
		if s.serialized {
			t.Error("nothing should be serialized on failure")
		}
		if len(factory.calls) != 3 {
			t.Errorf("calls = %v, want collection to stop after memory", factory.calls)
		}
	})

	t.Run("serializer error", func(t *testing.T) {
		snapshotter := &NodeSnapshotter{
			Factory:    &mockFactory{},
			Serializer: &mockSerializer{err: errors.New("disk full")},
		}
		if err := snapshotter.Measure(context.Background()); err == nil {
			t.Error("expected serializer error")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		factory := &mockFactory{}
		snapshotter := &NodeSnapshotter{Factory: factory, Serializer: &mockSerializer{}}
		if err := snapshotter.Measure(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Measure() error = %v, want context.Canceled", err)
		}
		if len(factory.calls) != 0 {
			t.Errorf("no collector should run, got %v", factory.calls)
		}
	})
}

func TestNodeSnapshotter_CollectReplay(t *testing.T) {
	responses, err := vcgencmd.LoadResponses("../vcgencmd/testdata/captured_responses.json")
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}
	cmd := vcgencmd.New(vcgencmd.WithRunner(vcgencmd.ReplayRunner{Responses: responses}))

	snapshotter := &NodeSnapshotter{
		Version: "test",
		Factory: collector.NewDefaultFactory(collector.WithCmd(cmd)),
	}

	snap, err := snapshotter.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	for _, mt := range measurement.Types {
		if snap.Get(mt) == nil {
			t.Errorf("missing %s measurement", mt)
		}
	}

	temp, err := snap.Get(measurement.TypePower).GetSubtype("temperature").GetFloat64(measurement.KeySoC)
	if err != nil || temp != 47.2 {
		t.Errorf("soc temperature = %v, %v; want 47.2", temp, err)
	}
}

type mockSerializer struct {
	serialized bool
	data       any
	err        error
}

func (m *mockSerializer) Serialize(_ context.Context, data any) error {
	if m.err != nil {
		return m.err
	}
	m.serialized = true
	m.data = data
	return nil
}

type mockFactory struct {
	calls  []string
	failOn string
}

func (m *mockFactory) create(name string, t measurement.Type) collector.Collector {
	return collector.CollectorFunc(func(context.Context) (*measurement.Measurement, error) {
		m.calls = append(m.calls, name)
		if name == m.failOn {
			return nil, errors.New(name + " failed")
		}
		return measurement.NewMeasurement(t).
			WithSubtypeBuilder(measurement.NewSubtypeBuilder("test").SetBool("ok", true)).
			Build(), nil
	})
}

func (m *mockFactory) CreateFirmwareCollector() collector.Collector {
	return m.create("firmware", measurement.TypeFirmware)
}

func (m *mockFactory) CreatePowerCollector() collector.Collector {
	return m.create("power", measurement.TypePower)
}

func (m *mockFactory) CreateMemoryCollector() collector.Collector {
	return m.create("memory", measurement.TypeMemory)
}

func (m *mockFactory) CreateCodecCollector() collector.Collector {
	return m.create("codec", measurement.TypeCodec)
}

func (m *mockFactory) CreateDisplayCollector() collector.Collector {
	return m.create("display", measurement.TypeDisplay)
}
