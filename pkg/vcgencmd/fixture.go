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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	apperrors "github.com/picore/vcgen/pkg/errors"
)

// Response is one captured tool invocation.
type Response struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// Responses maps the space-joined sub-command arguments, e.g.
// "measure_clock arm", to the captured output.
type Responses map[string]Response

// CaptureCommands is the set of invocations recorded by Capture by default.
// It covers every query sub-command with every allow-listed parameter.
var CaptureCommands = [][]string{
	{"vcos", "version"},
	{"vcos", "log", "status"},
	{"version"},
	{"get_camera"},
	{"get_throttled"},
	{"measure_temp"},
	{"measure_clock", "arm"},
	{"measure_clock", "core"},
	{"measure_clock", "h264"},
	{"measure_clock", "isp"},
	{"measure_clock", "v3d"},
	{"measure_clock", "uart"},
	{"measure_clock", "pwm"},
	{"measure_clock", "emmc"},
	{"measure_clock", "pixel"},
	{"measure_clock", "vec"},
	{"measure_clock", "hdmi"},
	{"measure_clock", "dpi"},
	{"measure_volts", "core"},
	{"measure_volts", "sdram_c"},
	{"measure_volts", "sdram_i"},
	{"measure_volts", "sdram_p"},
	{"otp_dump"},
	{"get_mem", "arm"},
	{"get_mem", "gpu"},
	{"codec_enabled", "agif"},
	{"codec_enabled", "flac"},
	{"codec_enabled", "h263"},
	{"codec_enabled", "h264"},
	{"codec_enabled", "mjpa"},
	{"codec_enabled", "mjpb"},
	{"codec_enabled", "mjpg"},
	{"codec_enabled", "mpg2"},
	{"codec_enabled", "mpg4"},
	{"codec_enabled", "mvc0"},
	{"codec_enabled", "pcm"},
	{"codec_enabled", "thra"},
	{"codec_enabled", "vorb"},
	{"codec_enabled", "vp6"},
	{"codec_enabled", "vp8"},
	{"codec_enabled", "wmv9"},
	{"codec_enabled", "wvc1"},
	{"get_config", "int"},
	{"get_config", "str"},
	{"get_config", "arm_freq"},
	{"get_lcd_info"},
	{"mem_oom"},
	{"mem_reloc_stats"},
	{"read_ring_osc"},
	{"hdmi_timings"},
	{"dispmanx_list"},
	{"display_power", "-1", "0"},
	{"display_power", "-1", "1"},
	{"display_power", "-1", "2"},
	{"display_power", "-1", "3"},
	{"display_power", "-1", "7"},
}

// LoadResponses reads a captured response file.
func LoadResponses(path string) (Responses, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound,
			fmt.Sprintf("failed to open response file %q", path), err)
	}
	defer f.Close()

	return ReadResponses(f)
}

// NewReplay returns a Cmd answering every query from the response file at
// path. It is used to run the CLI and daemon away from the device.
func NewReplay(path string, opts ...Option) (*Cmd, error) {
	responses, err := LoadResponses(path)
	if err != nil {
		return nil, err
	}
	return New(append(opts, WithRunner(ReplayRunner{Responses: responses}))...), nil
}

// ReadResponses decodes captured responses from r.
func ReadResponses(r io.Reader) (Responses, error) {
	var resp Responses
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFormat, "failed to decode captured responses", err)
	}
	return resp, nil
}

// Write encodes the responses as indented JSON.
func (r Responses) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to encode captured responses", err)
	}
	return nil
}

// ReplayRunner answers invocations from captured responses instead of
// running the tool. Invocations without a captured response fail.
type ReplayRunner struct {
	Responses Responses
}

// Run implements Runner.
func (r ReplayRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	key := strings.Join(args, " ")
	resp, ok := r.Responses[key]
	if !ok {
		return nil, nil, apperrors.New(apperrors.ErrCodeNotFound,
			fmt.Sprintf("no captured response for %q", key))
	}
	return []byte(resp.Stdout), []byte(resp.Stderr), nil
}

// Capture runs each command against the tool and records its output.
// Commands that exit unsuccessfully are recorded with whatever they
// printed; failing to start the tool aborts the capture.
func Capture(ctx context.Context, runner Runner, binary string, commands [][]string) (Responses, error) {
	responses := make(Responses, len(commands))
	for _, args := range commands {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, "capture canceled", err)
		}

		stdout, stderr, err := runner.Run(ctx, binary, args...)
		if err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				return nil, apperrors.WrapWithContext(apperrors.ErrCodeExternalTool,
					"failed to run capture command", err,
					map[string]any{"binary": binary, "args": args})
			}
			slog.Warn("capture command exited unsuccessfully",
				"args", args, "exitCode", exitErr.ExitCode())
		}

		responses[strings.Join(args, " ")] = Response{
			Stdout: string(stdout),
			Stderr: string(stderr),
		}
	}
	return responses, nil
}
