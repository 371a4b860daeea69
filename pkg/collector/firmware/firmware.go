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

package firmware

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/picore/vcgen/pkg/measurement"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// Subtype names of the firmware measurement.
const (
	SubtypeVersion   = "version"
	SubtypeLogStatus = "log-status"
	SubtypeCamera    = "camera"
	SubtypeOTP       = "otp"
	SubtypeConfigInt = "config-int"
	SubtypeConfigStr = "config-str"
)

// Source is the part of the vcgencmd gateway the firmware collector reads.
type Source interface {
	Version(ctx context.Context) (string, error)
	VcosVersion(ctx context.Context) (string, error)
	VcosLogStatus(ctx context.Context) (map[string]string, error)
	GetCamera(ctx context.Context) (*vcgencmd.Camera, error)
	OtpDump(ctx context.Context) (map[string]string, error)
	GetConfig(ctx context.Context, name string) (map[string]string, error)
}

// Collector gathers firmware build, logging, camera, OTP and configuration data.
type Collector struct {
	Source Source
}

// Collect implements the Collector interface.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	slog.Info("collecting firmware information")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	version, err := c.Source.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read firmware version: %w", err)
	}
	vcos, err := c.Source.VcosVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read vcos version: %w", err)
	}

	logStatus, err := c.Source.VcosLogStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read vcos log status: %w", err)
	}

	camera, err := c.Source.GetCamera(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read camera state: %w", err)
	}

	otp, err := c.Source.OtpDump(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read otp: %w", err)
	}

	configInt, err := c.Source.GetConfig(ctx, "int")
	if err != nil {
		return nil, fmt.Errorf("failed to read integer config: %w", err)
	}
	configStr, err := c.Source.GetConfig(ctx, "str")
	if err != nil {
		return nil, fmt.Errorf("failed to read string config: %w", err)
	}

	return measurement.NewMeasurement(measurement.TypeFirmware).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeVersion).
			SetString(measurement.KeyFirmwareVersion, strings.TrimSpace(version)).
			SetString(measurement.KeyVcosVersion, strings.TrimSpace(vcos))).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeLogStatus).SetStrings(logStatus)).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeCamera).
			SetString(measurement.KeySupported, camera.Supported).
			SetString(measurement.KeyDetected, camera.Detected)).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeOTP).SetStrings(otp)).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeConfigInt).SetStrings(configInt)).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(SubtypeConfigStr).SetStrings(configStr)).
		Build(), nil
}
