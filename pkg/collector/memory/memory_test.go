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

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/picore/vcgen/pkg/errors"
	"github.com/picore/vcgen/pkg/measurement"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

func TestCollector_Collect(t *testing.T) {
	responses, err := vcgencmd.LoadResponses("../../vcgencmd/testdata/captured_responses.json")
	require.NoError(t, err)
	cmd := vcgencmd.New(vcgencmd.WithRunner(vcgencmd.ReplayRunner{Responses: responses}))

	m, err := (&Collector{Source: cmd}).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, measurement.TypeMemory, m.Type)

	arm, err := m.GetSubtype(SubtypeSplit).GetInt64("arm")
	require.NoError(t, err)
	assert.Equal(t, int64(948), arm)

	gpu, err := m.GetSubtype(SubtypeSplit).GetInt64("gpu")
	require.NoError(t, err)
	assert.Equal(t, int64(76), gpu)

	assert.Len(t, m.GetSubtype(SubtypeOOM).Data, 4)
	assert.Len(t, m.GetSubtype(SubtypeReloc).Data, 3)
}

func TestCollector_ToolFailure(t *testing.T) {
	cmd := vcgencmd.New(vcgencmd.WithRunner(vcgencmd.ReplayRunner{Responses: vcgencmd.Responses{}}))

	_, err := (&Collector{Source: cmd}).Collect(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeExternalTool))
}
