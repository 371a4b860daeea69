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

package display

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picore/vcgen/pkg/measurement"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

func loadResponses(t *testing.T) vcgencmd.Responses {
	t.Helper()
	responses, err := vcgencmd.LoadResponses("../../vcgencmd/testdata/captured_responses.json")
	require.NoError(t, err)
	return responses
}

func TestCollector_Collect(t *testing.T) {
	cmd := vcgencmd.New(vcgencmd.WithRunner(vcgencmd.ReplayRunner{Responses: loadResponses(t)}))

	m, err := (&Collector{Source: cmd}).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, measurement.TypeDisplay, m.Type)

	height, err := m.GetSubtype(SubtypeLCD).GetString(measurement.KeyHeight)
	require.NoError(t, err)
	assert.Equal(t, "720", height)

	hdmi := m.GetSubtype(SubtypeHDMITimings)
	assert.Len(t, hdmi.Data, len(vcgencmd.HDMITimingFieldNames)+1)
	sync, err := hdmi.GetString("h_sync_polarity")
	require.NoError(t, err)
	assert.Equal(t, "1", sync)

	assert.Empty(t, m.GetSubtype(SubtypeDispmanx).Data)

	power := m.GetSubtype(SubtypePower)
	require.NotNil(t, power)
	for _, id := range []string{"0", "1", "2", "7"} {
		state, err := power.GetString(id)
		require.NoError(t, err)
		assert.Equal(t, "off", state, id)
	}
	state, err := power.GetString("3")
	require.NoError(t, err)
	assert.Equal(t, "on", state)
	assert.Empty(t, power.Context)
}

func TestCollector_UnparseablePowerState(t *testing.T) {
	responses := loadResponses(t)
	responses["display_power -1 7"] = vcgencmd.Response{Stdout: "display_power=-1\n"}
	delete(responses, "display_power -1 2")
	cmd := vcgencmd.New(vcgencmd.WithRunner(vcgencmd.ReplayRunner{Responses: responses}))

	m, err := (&Collector{Source: cmd}).Collect(context.Background())
	require.NoError(t, err)

	power := m.GetSubtype(SubtypePower)
	for _, id := range []string{"2", "7"} {
		state, err := power.GetString(id)
		require.NoError(t, err)
		assert.Equal(t, vcgencmd.PowerUnknown.String(), state, id)
		assert.NotEmpty(t, power.Context[id], id)
	}
}

func TestCollector_LCDFailure(t *testing.T) {
	responses := loadResponses(t)
	responses["get_lcd_info"] = vcgencmd.Response{Stdout: "\n"}
	cmd := vcgencmd.New(vcgencmd.WithRunner(vcgencmd.ReplayRunner{Responses: responses}))

	_, err := (&Collector{Source: cmd}).Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lcd")
}
