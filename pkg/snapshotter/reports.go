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

package snapshotter

import (
	"github.com/picore/vcgen/pkg/header"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

// ThrottledReport is the decoded throttle state with its labeled flags.
type ThrottledReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Throttled *vcgencmd.Throttled `json:"throttled" yaml:"throttled"`
	Flags     map[string]bool     `json:"flags" yaml:"flags"`
}

// NewThrottledReport wraps t in a document header.
func NewThrottledReport(version string, t *vcgencmd.Throttled) *ThrottledReport {
	r := &ThrottledReport{Throttled: t, Flags: t.Flags()}
	r.Init(header.KindThrottled, version)
	return r
}

// SourceList is the allow-list of one or more categories.
type SourceList struct {
	header.Header `json:",inline" yaml:",inline"`

	Sources map[vcgencmd.Category][]string `json:"sources" yaml:"sources"`
}

// NewSourceList lists the accepted values of each category in cats, or of
// every category when cats is empty.
func NewSourceList(version string, cmd *vcgencmd.Cmd, cats ...vcgencmd.Category) (*SourceList, error) {
	if len(cats) == 0 {
		cats = vcgencmd.Categories
	}

	l := &SourceList{Sources: make(map[vcgencmd.Category][]string, len(cats))}
	for _, cat := range cats {
		values, err := cmd.Sources(cat)
		if err != nil {
			return nil, err
		}
		l.Sources[cat] = values
	}
	l.Init(header.KindSources, version)
	return l, nil
}
