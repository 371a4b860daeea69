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
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "github.com/picore/vcgen/pkg/errors"
)

// Category names a family of restricted sub-command parameters.
type Category string

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

const (
	CategoryClock     Category = "clock"
	CategoryVolts     Category = "volts"
	CategoryMem       Category = "mem"
	CategoryCodec     Category = "codec"
	CategoryDisplayID Category = "display_id"
)

// Categories is the list of all recognized parameter categories.
var Categories = []Category{
	CategoryClock,
	CategoryVolts,
	CategoryMem,
	CategoryCodec,
	CategoryDisplayID,
}

// ParseCategory parses a string into a Category.
// Returns the Category and true if parsing succeeds, or empty Category and false otherwise.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// catalog is the fixed allow-list of parameter values per category.
// It is never mutated after construction; accessors hand out copies.
type catalog struct {
	clock      []string
	volts      []string
	mem        []string
	codec      []string
	displayIDs []int
}

func newCatalog() catalog {
	return catalog{
		clock: []string{"arm", "core", "h264", "isp", "v3d", "uart", "pwm", "emmc", "pixel", "vec", "hdmi", "dpi"},
		volts: []string{"core", "sdram_c", "sdram_i", "sdram_p"},
		mem:   []string{"arm", "gpu"},
		codec: []string{
			"agif", "flac", "h263", "h264", "mjpa", "mjpb", "mjpg", "mpg2", "mpg4",
			"mvc0", "pcm", "thra", "vorb", "vp6", "vp8", "wmv9", "wvc1",
		},
		displayIDs: []int{0, 1, 2, 3, 7},
	}
}

func (c catalog) values(cat Category) ([]string, bool) {
	switch cat {
	case CategoryClock:
		return c.clock, true
	case CategoryVolts:
		return c.volts, true
	case CategoryMem:
		return c.mem, true
	case CategoryCodec:
		return c.codec, true
	case CategoryDisplayID:
		ids := make([]string, len(c.displayIDs))
		for i, id := range c.displayIDs {
			ids[i] = strconv.Itoa(id)
		}
		return ids, true
	default:
		return nil, false
	}
}

// Sources returns the accepted values for a category. Display identifiers
// are returned in their decimal string form; see DisplayIDs for integers.
func (c *Cmd) Sources(cat Category) ([]string, error) {
	vals, ok := c.sources.values(cat)
	if !ok {
		return nil, apperrors.NewWithContext(
			apperrors.ErrCodeInvalidParameter,
			fmt.Sprintf("invalid source type %q, must be one of %v", cat, Categories),
			map[string]any{
				"value":   string(cat),
				"allowed": Categories,
			},
		)
	}
	return slices.Clone(vals), nil
}

// DisplayIDs returns the accepted display identifiers.
func (c *Cmd) DisplayIDs() []int {
	return slices.Clone(c.sources.displayIDs)
}

// validate case-normalizes value and checks it against the category allow-list.
func (c *Cmd) validate(cat Category, value string) (string, error) {
	allowed, ok := c.sources.values(cat)
	if !ok {
		return "", apperrors.New(apperrors.ErrCodeInternal, fmt.Sprintf("unknown category %q", cat))
	}
	normalized := cases.Lower(language.Und).String(strings.TrimSpace(value))
	if !slices.Contains(allowed, normalized) {
		return "", invalidParameter(cat, value, allowed)
	}
	return normalized, nil
}

func (c *Cmd) validateDisplay(id int) error {
	if !slices.Contains(c.sources.displayIDs, id) {
		allowed, _ := c.sources.values(CategoryDisplayID)
		return invalidParameter(CategoryDisplayID, strconv.Itoa(id), allowed)
	}
	return nil
}

func invalidParameter(cat Category, value string, allowed []string) error {
	validationRejects.WithLabelValues(string(cat)).Inc()
	return apperrors.NewWithContext(
		apperrors.ErrCodeInvalidParameter,
		fmt.Sprintf("%s must be one of %v", value, allowed),
		map[string]any{
			"category": string(cat),
			"value":    value,
			"allowed":  slices.Clone(allowed),
		},
	)
}
