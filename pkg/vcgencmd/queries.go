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

package vcgencmd

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	apperrors "github.com/picore/vcgen/pkg/errors"
)

// VcosVersion returns the VideoCore OS build information as printed.
func (c *Cmd) VcosVersion(ctx context.Context) (string, error) {
	return c.run(ctx, "vcos", "version")
}

// VcosLogStatus returns the VideoCore log level of each log category.
func (c *Cmd) VcosLogStatus(ctx context.Context) (map[string]string, error) {
	return query(ctx, c, keyValueLines(" - "), "vcos", "log", "status")
}

// Version returns the firmware build date and version as printed.
func (c *Cmd) Version(ctx context.Context) (string, error) {
	return c.run(ctx, "version")
}

// GetCamera returns camera support and detection state.
func (c *Cmd) GetCamera(ctx context.Context) (*Camera, error) {
	return query(ctx, c, parseCamera, "get_camera")
}

// GetThrottled returns the decoded throttle bitfield.
func (c *Cmd) GetThrottled(ctx context.Context) (*Throttled, error) {
	return query(ctx, c, parseThrottled, "get_throttled")
}

// GetThrottledFlags returns the throttle state keyed by label.
func (c *Cmd) GetThrottledFlags(ctx context.Context) (map[string]bool, error) {
	t, err := c.GetThrottled(ctx)
	if err != nil {
		return nil, err
	}
	return t.Flags(), nil
}

// MeasureTemp returns the SoC temperature in degrees Celsius.
func (c *Cmd) MeasureTemp(ctx context.Context) (float64, error) {
	return query(ctx, c, parseFloatValue, "measure_temp")
}

// MeasureClock returns the frequency of a clock in Hz.
func (c *Cmd) MeasureClock(ctx context.Context, clock string) (int64, error) {
	name, err := c.validate(CategoryClock, clock)
	if err != nil {
		return 0, err
	}
	return query(ctx, c, parseIntValue, "measure_clock", name)
}

// MeasureVolts returns the voltage of a rail in volts.
func (c *Cmd) MeasureVolts(ctx context.Context, rail string) (float64, error) {
	name, err := c.validate(CategoryVolts, rail)
	if err != nil {
		return 0, err
	}
	return query(ctx, c, parseFloatValue, "measure_volts", name)
}

// OtpDump returns the one-time-programmable memory rows keyed by row number.
func (c *Cmd) OtpDump(ctx context.Context) (map[string]string, error) {
	return query(ctx, c, keyValueLines(":"), "otp_dump")
}

// GetMem returns the memory split of a region in megabytes.
func (c *Cmd) GetMem(ctx context.Context, region string) (int64, error) {
	name, err := c.validate(CategoryMem, region)
	if err != nil {
		return 0, err
	}
	return query(ctx, c, parseIntValue, "get_mem", name)
}

// CodecEnabled reports whether hardware decoding of a codec is licensed.
func (c *Cmd) CodecEnabled(ctx context.Context, codec string) (bool, error) {
	name, err := c.validate(CategoryCodec, codec)
	if err != nil {
		return false, err
	}
	return query(ctx, c, parseEnabled, "codec_enabled", name)
}

// GetConfig returns firmware configuration values. The argument is a
// config type ("int" or "str") or a single setting name; it is passed
// through as one argument and must be a non-empty token. Each output line
// is one setting and its value may contain spaces.
func (c *Cmd) GetConfig(ctx context.Context, name string) (map[string]string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidParameter,
			"config type or name must be a single non-empty token",
			map[string]any{"value": name})
	}
	return query(ctx, c, keyValueLines("="), "get_config", name)
}

// GetLCDInfo returns the geometry of the attached LCD.
func (c *Cmd) GetLCDInfo(ctx context.Context) (*LCDInfo, error) {
	return query(ctx, c, parseLCDInfo, "get_lcd_info")
}

// MemOOM returns GPU out-of-memory statistics.
func (c *Cmd) MemOOM(ctx context.Context) (map[string]string, error) {
	return query(ctx, c, keyValueLines(":"), "mem_oom")
}

// MemRelocStats returns GPU relocatable heap statistics.
func (c *Cmd) MemRelocStats(ctx context.Context) (map[string]string, error) {
	return query(ctx, c, keyValueLines(":"), "mem_reloc_stats")
}

// ReadRingOsc returns the ring oscillator reading.
func (c *Cmd) ReadRingOsc(ctx context.Context) (*RingOsc, error) {
	return query(ctx, c, parseRingOsc, "read_ring_osc")
}

// HDMITimings returns the current HDMI timings.
func (c *Cmd) HDMITimings(ctx context.Context) (*HDMITimings, error) {
	return query(ctx, c, parseHDMITimings, "hdmi_timings")
}

// DispmanxList returns the dispmanx layer description. An empty map means
// no layers were reported.
func (c *Cmd) DispmanxList(ctx context.Context) (map[string]string, error) {
	return query(ctx, c, parseDispmanx, "dispmanx_list")
}

// DisplayPowerOn powers on a display.
func (c *Cmd) DisplayPowerOn(ctx context.Context, id int) error {
	return c.setDisplayPower(ctx, id, "1")
}

// DisplayPowerOff powers off a display.
func (c *Cmd) DisplayPowerOff(ctx context.Context, id int) error {
	return c.setDisplayPower(ctx, id, "0")
}

func (c *Cmd) setDisplayPower(ctx context.Context, id int, state string) error {
	if err := c.validateDisplay(id); err != nil {
		return err
	}
	_, err := c.run(ctx, "display_power", state, strconv.Itoa(id))
	return err
}

// DisplayPowerState returns the power state of a display.
func (c *Cmd) DisplayPowerState(ctx context.Context, id int) (PowerState, error) {
	if err := c.validateDisplay(id); err != nil {
		return "", err
	}
	return query(ctx, c, parsePowerState, "display_power", "-1", strconv.Itoa(id))
}
