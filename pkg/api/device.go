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

package api

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/picore/vcgen/pkg/vcgencmd"
)

// serialRunner lets one tool process run at a time. HTTP handlers and
// scrapes share a single mailbox to the firmware.
type serialRunner struct {
	next vcgencmd.Runner
	sem  *semaphore.Weighted
}

func newSerialRunner(next vcgencmd.Runner) *serialRunner {
	return &serialRunner{next: next, sem: semaphore.NewWeighted(1)}
}

// Run waits for the previous invocation to finish or ctx to end.
func (r *serialRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, nil, err
	}
	defer r.sem.Release(1)

	return r.next.Run(ctx, name, args...)
}
