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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/picore/vcgen/pkg/errors"
)

func TestKeyValueLines(t *testing.T) {
	tests := []struct {
		name string
		sep  string
		in   string
		want map[string]string
	}{
		{
			name: "colon",
			sep:  ":",
			in:   "alloc failures:     0\ncompactions:        0\n",
			want: map[string]string{"alloc failures": "0", "compactions": "0"},
		},
		{
			name: "value keeps later separators",
			sep:  ":",
			in:   "a:b:c\n",
			want: map[string]string{"a": "b:c"},
		},
		{
			name: "dash keeps hyphenated names",
			sep:  " - ",
			in:   "mmal-opaque            - error\nwdog - warn\n",
			want: map[string]string{"mmal-opaque": "error", "wdog": "warn"},
		},
		{
			name: "blank lines skipped",
			sep:  ":",
			in:   "\n08:00000000\n\n   \n09:00000001",
			want: map[string]string{"08": "00000000", "09": "00000001"},
		},
		{
			name: "empty",
			sep:  ":",
			in:   "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := keyValueLines(tt.sep)(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyValueLines_EntryPerLine(t *testing.T) {
	in := "oom events: 0\nlifetime oom required: 0 Mbytes\n\ntotal time in oom handler: 0 ms\n"

	got, err := keyValueLines(":")(in)
	require.NoError(t, err)

	lines := 0
	for _, l := range strings.Split(in, "\n") {
		if strings.TrimSpace(l) != "" {
			lines++
		}
	}
	assert.Len(t, got, lines)
}

func TestKeyValueLines_MissingSeparator(t *testing.T) {
	_, err := keyValueLines(":")("08:00000000\ngarbage\n")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}

func TestParseKeyValueTokens(t *testing.T) {
	got, err := parseKeyValueTokens("supported=1 detected=0 interfaces=\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"supported":  "1",
		"detected":   "0",
		"interfaces": "",
	}, got)

	_, err = parseKeyValueTokens("supported=1 oops")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}

func TestParseFloatValue(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"temp=47.2'C\n", 47.2, false},
		{"volt=1.3125V\n", 1.3125, false},
		{"volt=1.2000V", 1.2, false},
		{"volt=V", 0, true},
		{"no separator", 0, true},
		{"temp=1.2.3'C", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFloatValue(tt.in)
			if tt.wantErr {
				assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseIntValue(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"frequency(48)=1200000000\n", 1200000000, false},
		{"frequency(28)=0\n", 0, false},
		{"arm=948M\n", 948, false},
		{"gpu=76M", 76, false},
		{"frequency(48)=", 0, true},
		{"frequency", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIntValue(tt.in)
			if tt.wantErr {
				assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCamera(t *testing.T) {
	got, err := parseCamera("supported=0 detected=0\n")
	require.NoError(t, err)
	assert.Equal(t, &Camera{Supported: "0", Detected: "0"}, got)

	_, err = parseCamera("supported=1\n")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}

func TestParseThrottled(t *testing.T) {
	got, err := parseThrottled("throttled=0x50000\n")
	require.NoError(t, err)

	assert.Equal(t, "0x50000", got.RawData)
	assert.Equal(t, "01010000000000000000", got.Binary)
	assert.Equal(t, map[int]bool{
		0: false, 1: false, 2: false, 3: false,
		16: true, 17: false, 18: true, 19: false,
	}, got.Breakdown)

	flags := got.Flags()
	assert.True(t, flags["Under-voltage has occurred"])
	assert.True(t, flags["Throttling has occurred"])
	assert.False(t, flags["Currently throttled"])
	assert.Len(t, flags, len(ThrottleBits))
}

func TestParseThrottled_Values(t *testing.T) {
	tests := []struct {
		in      string
		binary  string
		set     []int
		wantErr bool
	}{
		{in: "throttled=0x0", binary: "00000000000000000000"},
		{in: "throttled=0xf000f", binary: "11110000000000001111", set: ThrottleBits},
		{in: "throttled=0x4", binary: "00000000000000000100", set: []int{2}},
		{in: "throttled=50005", binary: "01010000000000000101", set: []int{0, 2, 16, 18}},
		{in: "throttled=0x80050000", binary: "01010000000000000000", set: []int{16, 18}},
		{in: "throttled=0xzz", wantErr: true},
		{in: "throttled", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseThrottled(tt.in)
			if tt.wantErr {
				assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.binary, got.Binary)
			assert.Len(t, got.Binary, 20)
			assert.Equal(t, strings.TrimPrefix(tt.in, "throttled="), got.RawData)
			for _, bit := range ThrottleBits {
				want := false
				for _, s := range tt.set {
					if s == bit {
						want = true
					}
				}
				assert.Equal(t, want, got.Breakdown[bit], "bit %d", bit)
			}
		})
	}
}

func TestThrottleLabel(t *testing.T) {
	assert.Equal(t, "Under-voltage detected", ThrottleLabel(0))
	assert.Equal(t, "Soft temperature limit has occurred", ThrottleLabel(19))
	assert.Empty(t, ThrottleLabel(5))
}

func TestParseEnabled(t *testing.T) {
	got, err := parseEnabled("H264=enabled\n")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = parseEnabled("H264=disabled\n")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = parseEnabled("H264=maybe\n")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}

func TestParseLCDInfo(t *testing.T) {
	got, err := parseLCDInfo("720 480 24\n")
	require.NoError(t, err)
	assert.Equal(t, &LCDInfo{Height: "720", Width: "480", Depth: "24"}, got)

	got, err = parseLCDInfo("0 0 0 no display\n")
	require.NoError(t, err)
	assert.Equal(t, &LCDInfo{Height: "0", Width: "0", Depth: "0"}, got)

	_, err = parseLCDInfo("720 480")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))

	_, err = parseLCDInfo("no lcd attached")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}

func TestParseRingOsc(t *testing.T) {
	got, err := parseRingOsc("ring_osc(1)=3.510MHz (@1.3125V) (47.2'C)\n")
	require.NoError(t, err)
	assert.InDelta(t, 3.51, got.FreqMHz, 1e-9)
	assert.InDelta(t, 1.3125, got.VoltsV, 1e-9)
	assert.InDelta(t, 47.2, got.TempC, 1e-9)

	_, err = parseRingOsc("ring_osc(1)=3.510MHz")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}

func TestParseHDMITimings(t *testing.T) {
	got, err := parseHDMITimings("hdmi_timings=1920 1 88 44 148 1080 1 4 5 36 0 0 0 60 0 148500000 3\n")
	require.NoError(t, err)

	assert.Equal(t, "1920 1 88 44 148 1080 1 4 5 36 0 0 0 60 0 148500000 3", got.RawData)
	assert.Equal(t, "1920", got.Breakdown.HActivePixels)
	assert.Equal(t, "1080", got.Breakdown.VActiveLines)
	assert.Equal(t, "148500000", got.Breakdown.PixelFreq)
	assert.Equal(t, "3", got.Breakdown.AspectRatio)

	m := got.Breakdown.Map()
	assert.Len(t, m, len(HDMITimingFieldNames))
	assert.Equal(t, "60", m["frame_rate"])

	_, err = parseHDMITimings("hdmi_timings=0 1 0")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}

func TestParseDispmanx(t *testing.T) {
	got, err := parseDispmanx("display:2 format:XRGB8888 transform:0 layer:-127 size:1920 1080 src:0,0,1920,1080 dst:0,0,1920,1080 cost:1154 lbm:0\n")
	require.NoError(t, err)

	assert.Equal(t, "2", got["display"])
	assert.Equal(t, "-127", got["layer"])
	assert.Equal(t, "1920", got["size"])
	assert.Equal(t, "1080", got["resolution"])
	assert.Equal(t, "0,0,1920,1080", got["src"])
	assert.Len(t, got, 10)
}

func TestParseDispmanx_MissingSeparator(t *testing.T) {
	_, err := parseDispmanx("display:2 orphan")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}

func TestParseDispmanx_Empty(t *testing.T) {
	got, err := parseDispmanx("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = parseDispmanx("\n  \n")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLabelResolution(t *testing.T) {
	assert.Equal(t, "1920 resolution:1080", labelResolution("1920 1080"))
	assert.Equal(t, "a 1", labelResolution("a 1"))
	assert.Equal(t, "1  2", labelResolution("1  2"))
}

func TestParsePowerState(t *testing.T) {
	got, err := parsePowerState("display_power=1\n")
	require.NoError(t, err)
	assert.Equal(t, PowerOn, got)

	got, err = parsePowerState("display_power=0 2\n")
	require.NoError(t, err)
	assert.Equal(t, PowerOff, got)

	_, err = parsePowerState("display_power=-1\n")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))

	_, err = parsePowerState("display_power=\n")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}
