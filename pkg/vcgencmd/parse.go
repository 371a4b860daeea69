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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	apperrors "github.com/picore/vcgen/pkg/errors"
)

// parser turns the stdout of one sub-command into a typed result.
type parser[T any] func(out string) (T, error)

// query runs args and parses the output. Parse failures carry the command
// line and raw output in their error context.
func query[T any](ctx context.Context, c *Cmd, parse parser[T], args ...string) (T, error) {
	var zero T

	out, err := c.run(ctx, args...)
	if err != nil {
		return zero, err
	}

	v, err := parse(out)
	if err != nil {
		parseErrorsTotal.WithLabelValues(args[0]).Inc()
		var se *apperrors.StructuredError
		if errors.As(err, &se) {
			if se.Context == nil {
				se.Context = make(map[string]any)
			}
			se.Context["command"] = strings.Join(append([]string{c.binary}, args...), " ")
			se.Context["output"] = out
		}
		return zero, err
	}
	return v, nil
}

func formatError(format string, args ...any) error {
	return apperrors.New(apperrors.ErrCodeFormat, fmt.Sprintf(format, args...))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// keyValueLines returns a parser for line-oriented "key<sep>value" output.
// Blank lines are skipped, each remaining line is split once on sep and
// both sides are trimmed.
func keyValueLines(sep string) parser[map[string]string] {
	return func(out string) (map[string]string, error) {
		m := make(map[string]string)
		for line := range strings.SplitSeq(out, "\n") {
			if isBlank(line) {
				continue
			}
			k, v, ok := strings.Cut(line, sep)
			if !ok {
				return nil, formatError("line %q has no %q separator", strings.TrimSpace(line), sep)
			}
			m[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
		return m, nil
	}
}

// parseKeyValueTokens parses whitespace separated "key=value" tokens as
// printed by get_camera.
func parseKeyValueTokens(out string) (map[string]string, error) {
	m := make(map[string]string)
	for _, tok := range strings.Fields(out) {
		k, v, ok := strings.Cut(tok, "=")
		if !ok {
			return nil, formatError("token %q has no '=' separator", tok)
		}
		m[k] = v
	}
	return m, nil
}

// valueOf returns the text after the first '=' in out.
func valueOf(out string) (string, error) {
	_, v, ok := strings.Cut(out, "=")
	if !ok {
		return "", formatError("output %q has no '=' separator", strings.TrimSpace(out))
	}
	return v, nil
}

// numeric keeps only the digits and dots of s.
func numeric(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
}

func toFloat(s string) (float64, error) {
	n := numeric(s)
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0, formatError("%q is not a number", strings.TrimSpace(s))
	}
	return f, nil
}

func toInt(s string) (int64, error) {
	n := numeric(s)
	i, err := strconv.ParseInt(n, 10, 64)
	if err != nil {
		return 0, formatError("%q is not an integer", strings.TrimSpace(s))
	}
	return i, nil
}

// parseFloatValue handles "name=<number><unit>" output such as
// "temp=47.2'C" or "volt=1.3125V".
func parseFloatValue(out string) (float64, error) {
	v, err := valueOf(out)
	if err != nil {
		return 0, err
	}
	return toFloat(v)
}

// parseIntValue handles "name=<integer><unit>" output such as
// "frequency(48)=1200000000" or "arm=948M".
func parseIntValue(out string) (int64, error) {
	v, err := valueOf(out)
	if err != nil {
		return 0, err
	}
	return toInt(v)
}

func parseCamera(out string) (*Camera, error) {
	m, err := parseKeyValueTokens(out)
	if err != nil {
		return nil, err
	}
	supported, ok := m["supported"]
	if !ok {
		return nil, formatError("missing supported field")
	}
	detected, ok := m["detected"]
	if !ok {
		return nil, formatError("missing detected field")
	}
	return &Camera{Supported: supported, Detected: detected}, nil
}

// throttleMask keeps the 20 bits of get_throttled that carry meaning.
const throttleMask = 1<<20 - 1

// parseThrottled decodes "throttled=0x50000". Bits above 19 are ignored;
// RawData still shows them.
func parseThrottled(out string) (*Throttled, error) {
	v, err := valueOf(out)
	if err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(v)
	hex := strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	n, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return nil, formatError("%q is not a hexadecimal value", raw)
	}

	t := &Throttled{
		RawData:   raw,
		Binary:    fmt.Sprintf("%020b", n&throttleMask),
		Breakdown: make(map[int]bool, len(ThrottleBits)),
	}
	for _, bit := range ThrottleBits {
		t.Breakdown[bit] = n&(1<<uint(bit)) != 0
	}
	return t, nil
}

func parseEnabled(out string) (bool, error) {
	v, err := valueOf(out)
	if err != nil {
		return false, err
	}
	switch s := strings.TrimSpace(v); s {
	case "enabled":
		return true, nil
	case "disabled":
		return false, nil
	default:
		return false, formatError("codec state %q is neither enabled nor disabled", s)
	}
}

// parseLCDInfo reads "<height> <width> <depth>"; trailing fields are ignored.
func parseLCDInfo(out string) (*LCDInfo, error) {
	fields := strings.Fields(out)
	if len(fields) < 3 {
		return nil, formatError("expected at least 3 fields, got %d", len(fields))
	}
	for _, f := range fields[:3] {
		if _, err := strconv.Atoi(f); err != nil {
			return nil, formatError("field %q is not an integer", f)
		}
	}
	return &LCDInfo{Height: fields[0], Width: fields[1], Depth: fields[2]}, nil
}

// parseRingOsc reads "ring_osc(1)=3.510MHz (@1.3125V) (47.2'C)".
func parseRingOsc(out string) (*RingOsc, error) {
	v, err := valueOf(out)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(v)
	if len(fields) < 3 {
		return nil, formatError("expected 3 fields, got %d", len(fields))
	}

	var vals [3]float64
	for i, f := range fields[:3] {
		if vals[i], err = toFloat(f); err != nil {
			return nil, err
		}
	}
	return &RingOsc{FreqMHz: vals[0], VoltsV: vals[1], TempC: vals[2]}, nil
}

func parseHDMITimings(out string) (*HDMITimings, error) {
	v, err := valueOf(out)
	if err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(v)
	f := strings.Fields(raw)
	if len(f) < len(HDMITimingFieldNames) {
		return nil, formatError("expected %d fields, got %d", len(HDMITimingFieldNames), len(f))
	}
	return &HDMITimings{
		RawData: raw,
		Breakdown: HDMITimingFields{
			HActivePixels: f[0],
			HSyncPolarity: f[1],
			HFrontPorch:   f[2],
			HSyncPulse:    f[3],
			HBackPorch:    f[4],
			VActiveLines:  f[5],
			VSyncPolarity: f[6],
			VFrontPorch:   f[7],
			VSyncPulse:    f[8],
			VBackPorch:    f[9],
			VSyncOffsetA:  f[10],
			VSyncOffsetB:  f[11],
			PixelRep:      f[12],
			FrameRate:     f[13],
			Interlaced:    f[14],
			PixelFreq:     f[15],
			AspectRatio:   f[16],
		},
	}, nil
}

// parseDispmanx reads the dispmanx_list layer description. The tool prints
// the layer resolution as a bare "<w> <h>" pair, so the whitespace between
// the two numbers is labelled before the "key:value" tokens are split.
func parseDispmanx(out string) (map[string]string, error) {
	m := make(map[string]string)
	for _, tok := range strings.Fields(labelResolution(strings.TrimSpace(out))) {
		k, v, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, formatError("token %q has no ':' separator", tok)
		}
		m[k] = v
	}
	return m, nil
}

// labelResolution replaces every single whitespace character that sits
// between two digits with " resolution:".
func labelResolution(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if unicode.IsSpace(r) && i > 0 && i+1 < len(runes) &&
			unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
			b.WriteString(" resolution:")
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func parsePowerState(out string) (PowerState, error) {
	v, err := valueOf(out)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return "", formatError("missing display power value")
	}
	switch fields[0] {
	case "1":
		return PowerOn, nil
	case "0":
		return PowerOff, nil
	default:
		return "", formatError("display power value %q is neither 0 nor 1", fields[0])
	}
}
