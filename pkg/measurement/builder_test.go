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

package measurement

import (
	"testing"
)

func TestSubtypeBuilder(t *testing.T) {
	t.Run("basic build", func(t *testing.T) {
		st := NewSubtypeBuilder(testSubtypeClock).
			SetInt64("arm", 1200000000).
			SetInt64("h264", 0).
			Build()

		if st.Name != testSubtypeClock {
			t.Errorf("Name = %v, want clock", st.Name)
		}
		if len(st.Data) != 2 {
			t.Errorf("Data length = %d, want 2", len(st.Data))
		}
		if st.Context != nil {
			t.Errorf("Context = %v, want nil", st.Context)
		}
	})

	t.Run("string map", func(t *testing.T) {
		st := NewSubtypeBuilder("reloc").
			SetStrings(map[string]string{"compactions": "0", "alloc failures": "0"}).
			Build()

		if v, err := st.GetString("alloc failures"); err != nil || v != "0" {
			t.Errorf("GetString = %v, %v", v, err)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		st := NewSubtypeBuilder("power").
			SetString("0", "off").
			SetString("0", "on").
			Build()

		if v, _ := st.GetString("0"); v != "on" {
			t.Errorf("0 = %v, want on", v)
		}
	})

	t.Run("notes", func(t *testing.T) {
		st := NewSubtypeBuilder("power").
			SetString("7", "unknown").
			Note("7", "unexpected output").
			Build()

		if st.Context["7"] != "unexpected output" {
			t.Errorf("Context = %v", st.Context)
		}
	})
}

func TestMeasurementBuilder(t *testing.T) {
	m := NewMeasurement(TypeMemory).
		WithSubtype(NewSubtypeBuilder("split").SetInt64("arm", 948).Build()).
		WithSubtypeBuilder(NewSubtypeBuilder("oom").SetString("oom events", "0")).
		Build()

	if m.Type != TypeMemory {
		t.Errorf("Type = %v, want Memory", m.Type)
	}
	if len(m.Subtypes) != 2 {
		t.Fatalf("Subtypes = %d, want 2", len(m.Subtypes))
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestMeasurementBuilder_Empty(t *testing.T) {
	m := NewMeasurement(TypeCodec).Build()
	if m.Subtypes == nil {
		t.Error("Subtypes should be empty, not nil")
	}
	if err := m.Validate(); err == nil {
		t.Error("expected validation error for measurement without subtypes")
	}
}
