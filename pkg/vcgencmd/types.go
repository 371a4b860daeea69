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

// Camera is the camera support and detection state reported by get_camera.
type Camera struct {
	Supported string `json:"supported" yaml:"supported"`
	Detected  string `json:"detected" yaml:"detected"`
}

// ThrottleBits lists the bit positions of the get_throttled bitfield that
// carry meaning, in ascending order.
var ThrottleBits = []int{0, 1, 2, 3, 16, 17, 18, 19}

var throttleLabels = map[int]string{
	0:  "Under-voltage detected",
	1:  "Arm frequency capped",
	2:  "Currently throttled",
	3:  "Soft temperature limit active",
	16: "Under-voltage has occurred",
	17: "Arm frequency capping has occurred",
	18: "Throttling has occurred",
	19: "Soft temperature limit has occurred",
}

// ThrottleLabel returns the human-readable label of a throttle bit, or an
// empty string for a bit without meaning.
func ThrottleLabel(bit int) string {
	return throttleLabels[bit]
}

// Throttled is the decoded get_throttled bitfield.
type Throttled struct {
	// RawData is the hex value as printed by the tool, e.g. "0x50000".
	RawData string `json:"raw_data" yaml:"raw_data"`
	// Binary is the value as a zero-padded 20 digit binary string.
	Binary string `json:"binary" yaml:"binary"`
	// Breakdown maps each bit in ThrottleBits to its state.
	Breakdown map[int]bool `json:"breakdown" yaml:"breakdown"`
}

// Flags maps each throttle label to its state.
func (t *Throttled) Flags() map[string]bool {
	flags := make(map[string]bool, len(t.Breakdown))
	for bit, set := range t.Breakdown {
		flags[throttleLabels[bit]] = set
	}
	return flags
}

// LCDInfo is the attached LCD geometry reported by get_lcd_info.
type LCDInfo struct {
	Height string `json:"height" yaml:"height"`
	Width  string `json:"width" yaml:"width"`
	Depth  string `json:"depth" yaml:"depth"`
}

// RingOsc is the ring oscillator reading reported by read_ring_osc.
type RingOsc struct {
	FreqMHz float64 `json:"freq_mhz" yaml:"freq_mhz"`
	VoltsV  float64 `json:"volts_v" yaml:"volts_v"`
	TempC   float64 `json:"temp_c" yaml:"temp_c"`
}

// HDMITimingFieldNames lists the hdmi_timings fields in output order.
var HDMITimingFieldNames = []string{
	"h_active_pixels",
	"h_sync_polarity",
	"h_front_porch",
	"h_sync_pulse",
	"h_back_porch",
	"v_active_lines",
	"v_sync_polarity",
	"v_front_porch",
	"v_sync_pulse",
	"v_back_porch",
	"v_sync_offset_a",
	"v_sync_offset_b",
	"pixel_rep",
	"frame_rate",
	"interlaced",
	"pixel_freq",
	"aspect_ratio",
}

// HDMITimingFields is the positional breakdown of hdmi_timings.
type HDMITimingFields struct {
	HActivePixels string `json:"h_active_pixels" yaml:"h_active_pixels"`
	HSyncPolarity string `json:"h_sync_polarity" yaml:"h_sync_polarity"`
	HFrontPorch   string `json:"h_front_porch" yaml:"h_front_porch"`
	HSyncPulse    string `json:"h_sync_pulse" yaml:"h_sync_pulse"`
	HBackPorch    string `json:"h_back_porch" yaml:"h_back_porch"`
	VActiveLines  string `json:"v_active_lines" yaml:"v_active_lines"`
	VSyncPolarity string `json:"v_sync_polarity" yaml:"v_sync_polarity"`
	VFrontPorch   string `json:"v_front_porch" yaml:"v_front_porch"`
	VSyncPulse    string `json:"v_sync_pulse" yaml:"v_sync_pulse"`
	VBackPorch    string `json:"v_back_porch" yaml:"v_back_porch"`
	VSyncOffsetA  string `json:"v_sync_offset_a" yaml:"v_sync_offset_a"`
	VSyncOffsetB  string `json:"v_sync_offset_b" yaml:"v_sync_offset_b"`
	PixelRep      string `json:"pixel_rep" yaml:"pixel_rep"`
	FrameRate     string `json:"frame_rate" yaml:"frame_rate"`
	Interlaced    string `json:"interlaced" yaml:"interlaced"`
	PixelFreq     string `json:"pixel_freq" yaml:"pixel_freq"`
	AspectRatio   string `json:"aspect_ratio" yaml:"aspect_ratio"`
}

// Map returns the fields keyed by their names in HDMITimingFieldNames.
func (f HDMITimingFields) Map() map[string]string {
	vals := f.values()
	m := make(map[string]string, len(HDMITimingFieldNames))
	for i, name := range HDMITimingFieldNames {
		m[name] = vals[i]
	}
	return m
}

func (f HDMITimingFields) values() []string {
	return []string{
		f.HActivePixels, f.HSyncPolarity, f.HFrontPorch, f.HSyncPulse, f.HBackPorch,
		f.VActiveLines, f.VSyncPolarity, f.VFrontPorch, f.VSyncPulse, f.VBackPorch,
		f.VSyncOffsetA, f.VSyncOffsetB, f.PixelRep, f.FrameRate, f.Interlaced,
		f.PixelFreq, f.AspectRatio,
	}
}

// HDMITimings is the hdmi_timings output and its breakdown.
type HDMITimings struct {
	RawData   string           `json:"raw_data" yaml:"raw_data"`
	Breakdown HDMITimingFields `json:"breakdown" yaml:"breakdown"`
}

// PowerState is the power state of a display.
type PowerState string

// String returns the string representation of the PowerState.
func (p PowerState) String() string {
	return string(p)
}

const (
	PowerOn  PowerState = "on"
	PowerOff PowerState = "off"
	// PowerUnknown is never returned by the gateway; reports use it for
	// displays whose state could not be read.
	PowerUnknown PowerState = "unknown"
)
