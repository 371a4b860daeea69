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
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/picore/vcgen/pkg/errors"
)

func TestLoadResponses_CoversCaptureCommands(t *testing.T) {
	responses, err := LoadResponses(fixturePath)
	require.NoError(t, err)

	for _, args := range CaptureCommands {
		_, ok := responses[strings.Join(args, " ")]
		assert.True(t, ok, "missing %v", args)
	}
}

func TestLoadResponses_Missing(t *testing.T) {
	_, err := LoadResponses(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestReadResponses_Invalid(t *testing.T) {
	_, err := ReadResponses(strings.NewReader("{not json"))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFormat))
}

func TestResponses_WriteRead(t *testing.T) {
	in := Responses{
		"measure_temp": {Stdout: "temp=47.2'C\n"},
		"version":      {Stdout: "v", Stderr: "w"},
	}

	var buf bytes.Buffer
	require.NoError(t, in.Write(&buf))

	out, err := ReadResponses(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReplayRunner(t *testing.T) {
	r := ReplayRunner{Responses: Responses{
		"get_mem arm": {Stdout: "arm=948M\n", Stderr: ""},
	}}

	stdout, _, err := r.Run(context.Background(), "vcgencmd", "get_mem", "arm")
	require.NoError(t, err)
	assert.Equal(t, "arm=948M\n", string(stdout))

	_, _, err = r.Run(context.Background(), "vcgencmd", "get_mem", "gpu")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = r.Run(ctx, "vcgencmd", "get_mem", "arm")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCapture(t *testing.T) {
	r := RunnerFunc(func(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
		assert.Equal(t, "vcgencmd", name)
		return []byte(strings.Join(args, "|")), nil, nil
	})

	commands := [][]string{{"measure_temp"}, {"measure_clock", "arm"}}
	got, err := Capture(context.Background(), r, "vcgencmd", commands)
	require.NoError(t, err)

	assert.Equal(t, Responses{
		"measure_temp":      {Stdout: "measure_temp"},
		"measure_clock arm": {Stdout: "measure_clock|arm"},
	}, got)
}

func TestCapture_StartFailure(t *testing.T) {
	r := RunnerFunc(func(context.Context, string, ...string) ([]byte, []byte, error) {
		return nil, nil, errors.New("executable file not found")
	})

	_, err := Capture(context.Background(), r, "vcgencmd", CaptureCommands)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeExternalTool))
}

func TestCapture_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Capture(ctx, ExecRunner{}, "vcgencmd", CaptureCommands)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTimeout))
}

func TestNewReplay(t *testing.T) {
	c, err := NewReplay(fixturePath, WithBinary("/opt/vc/bin/vcgencmd"))
	require.NoError(t, err)
	assert.Equal(t, "/opt/vc/bin/vcgencmd", c.Binary())

	temp, err := c.MeasureTemp(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 47.2, temp)

	_, err = NewReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}
