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
	"github.com/picore/vcgen/pkg/collector/codec"
	"github.com/picore/vcgen/pkg/collector/display"
	"github.com/picore/vcgen/pkg/collector/firmware"
	"github.com/picore/vcgen/pkg/collector/memory"
	"github.com/picore/vcgen/pkg/collector/power"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateFirmwareCollector() Collector
	CreatePowerCollector() Collector
	CreateMemoryCollector() Collector
	CreateCodecCollector() Collector
	CreateDisplayCollector() Collector
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithCmd sets the gateway the collectors read from.
func WithCmd(cmd *vcgencmd.Cmd) Option {
	return func(f *DefaultFactory) {
		if cmd != nil {
			f.Cmd = cmd
		}
	}
}

// DefaultFactory creates collectors backed by a vcgencmd gateway.
type DefaultFactory struct {
	Cmd *vcgencmd.Cmd
}

// NewDefaultFactory creates a factory. Without WithCmd the collectors run
// the vcgencmd binary found on PATH.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Cmd: vcgencmd.New(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateFirmwareCollector creates a firmware collector.
func (f *DefaultFactory) CreateFirmwareCollector() Collector {
	return &firmware.Collector{Source: f.Cmd}
}

// CreatePowerCollector creates a power collector.
func (f *DefaultFactory) CreatePowerCollector() Collector {
	return &power.Collector{Source: f.Cmd}
}

// CreateMemoryCollector creates a memory collector.
func (f *DefaultFactory) CreateMemoryCollector() Collector {
	return &memory.Collector{Source: f.Cmd}
}

// CreateCodecCollector creates a codec collector.
func (f *DefaultFactory) CreateCodecCollector() Collector {
	return &codec.Collector{Source: f.Cmd}
}

// CreateDisplayCollector creates a display collector.
func (f *DefaultFactory) CreateDisplayCollector() Collector {
	return &display.Collector{Source: f.Cmd}
}

// All returns one collector per report section, in report order.
func All(f Factory) []Collector {
	return []Collector{
		f.CreateFirmwareCollector(),
		f.CreatePowerCollector(),
		f.CreateMemoryCollector(),
		f.CreateCodecCollector(),
		f.CreateDisplayCollector(),
	}
}
