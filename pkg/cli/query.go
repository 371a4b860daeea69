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

package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/picore/vcgen/pkg/defaults"
	apperrors "github.com/picore/vcgen/pkg/errors"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// operation is one query reachable from "vcgen query". param names the
// category of its argument, or is empty for queries without one.
type operation struct {
	param string
	run   func(ctx context.Context, c *vcgencmd.Cmd, arg string) (any, error)
}

func noArg[T any](fn func(*vcgencmd.Cmd, context.Context) (T, error)) func(context.Context, *vcgencmd.Cmd, string) (any, error) {
	return func(ctx context.Context, c *vcgencmd.Cmd, _ string) (any, error) {
		return fn(c, ctx)
	}
}

func withArg[T any](fn func(*vcgencmd.Cmd, context.Context, string) (T, error)) func(context.Context, *vcgencmd.Cmd, string) (any, error) {
	return func(ctx context.Context, c *vcgencmd.Cmd, arg string) (any, error) {
		return fn(c, ctx, arg)
	}
}

var operations = map[string]operation{
	"version":         {run: noArg((*vcgencmd.Cmd).Version)},
	"vcos_version":    {run: noArg((*vcgencmd.Cmd).VcosVersion)},
	"vcos_log_status": {run: noArg((*vcgencmd.Cmd).VcosLogStatus)},
	"get_camera":      {run: noArg((*vcgencmd.Cmd).GetCamera)},
	"get_throttled":   {run: noArg((*vcgencmd.Cmd).GetThrottled)},
	"measure_temp":    {run: noArg((*vcgencmd.Cmd).MeasureTemp)},
	"measure_clock":   {param: string(vcgencmd.CategoryClock), run: withArg((*vcgencmd.Cmd).MeasureClock)},
	"measure_volts":   {param: string(vcgencmd.CategoryVolts), run: withArg((*vcgencmd.Cmd).MeasureVolts)},
	"otp_dump":        {run: noArg((*vcgencmd.Cmd).OtpDump)},
	"get_mem":         {param: string(vcgencmd.CategoryMem), run: withArg((*vcgencmd.Cmd).GetMem)},
	"codec_enabled":   {param: string(vcgencmd.CategoryCodec), run: withArg((*vcgencmd.Cmd).CodecEnabled)},
	"get_config":      {param: "name", run: withArg((*vcgencmd.Cmd).GetConfig)},
	"get_lcd_info":    {run: noArg((*vcgencmd.Cmd).GetLCDInfo)},
	"mem_oom":         {run: noArg((*vcgencmd.Cmd).MemOOM)},
	"mem_reloc_stats": {run: noArg((*vcgencmd.Cmd).MemRelocStats)},
	"read_ring_osc":   {run: noArg((*vcgencmd.Cmd).ReadRingOsc)},
	"hdmi_timings":    {run: noArg((*vcgencmd.Cmd).HDMITimings)},
	"dispmanx_list":   {run: noArg((*vcgencmd.Cmd).DispmanxList)},
	"display_power": {
		param: string(vcgencmd.CategoryDisplayID),
		run: func(ctx context.Context, c *vcgencmd.Cmd, arg string) (any, error) {
			id, err := parseDisplayID(arg)
			if err != nil {
				return nil, err
			}
			return c.DisplayPowerState(ctx, id)
		},
	},
}

func operationNames() []string {
	names := make([]string, 0, len(operations))
	for n := range operations {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// queryResult is the printed form of a single query.
type queryResult struct {
	Operation string `json:"operation" yaml:"operation"`
	Param     string `json:"param,omitempty" yaml:"param,omitempty"`
	Result    any    `json:"result" yaml:"result"`
}

func queryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "query",
		EnableShellCompletion: true,
		Usage:                 "Run one diagnostic query",
		ArgsUsage:             "<operation> [param]",
		Description: fmt.Sprintf(`Run a single vcgencmd query and print the parsed result.

Operations:
  %s

Operations taking a parameter accept only the values listed by
"vcgen sources"; get_config takes a config name or "int" / "str".
display_power reads the power state of a display without changing it.

Examples:
  vcgen query measure_temp
  vcgen query measure_clock arm --format json
  vcgen query codec_enabled H264`, strings.Join(operationNames(), "\n  ")),
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opName := cmd.Args().Get(0)
			op, ok := operations[opName]
			if !ok {
				return apperrors.NewWithContext(apperrors.ErrCodeInvalidParameter,
					fmt.Sprintf("unknown operation %q, must be one of %v", opName, operationNames()),
					map[string]any{"value": opName})
			}

			arg := cmd.Args().Get(1)
			if op.param != "" && arg == "" {
				return apperrors.New(apperrors.ErrCodeInvalidParameter,
					fmt.Sprintf("%s requires a %s parameter", opName, op.param))
			}
			if op.param == "" && arg != "" {
				return apperrors.New(apperrors.ErrCodeInvalidParameter,
					fmt.Sprintf("%s takes no parameter", opName))
			}

			gw, err := newGateway(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(ctx, cmd, defaults.CollectorTimeout)
			defer cancel()

			result, err := op.run(ctx, gw, arg)
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, queryResult{Operation: opName, Param: arg, Result: result})
		},
	}
}

// parseDisplayID converts a display identifier argument. Range checks are
// left to the gateway so the error lists the allowed identifiers.
func parseDisplayID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeInvalidParameter,
			fmt.Sprintf("invalid display id %q", arg), err, map[string]any{"value": arg})
	}
	return id, nil
}
