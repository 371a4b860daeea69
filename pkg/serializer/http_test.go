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

package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gopkg.in/yaml.v3"
)

type testBody struct {
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code" yaml:"code"`
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, testBody{Message: "ok", Code: 200})

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var result testBody
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result.Message != "ok" || result.Code != 200 {
		t.Errorf("unexpected body: %+v", result)
	}
}

func TestRespondJSON_StatusCodes(t *testing.T) {
	for _, code := range []int{http.StatusCreated, http.StatusBadRequest, http.StatusBadGateway, http.StatusServiceUnavailable} {
		w := httptest.NewRecorder()
		RespondJSON(w, code, testBody{Code: code})
		if w.Code != code {
			t.Errorf("expected status %d, got %d", code, w.Code)
		}
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, make(chan int))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct == "application/json" {
		t.Error("content type should not be set for failed encodings")
	}
}

func TestRespondYAML(t *testing.T) {
	w := httptest.NewRecorder()
	RespondYAML(w, http.StatusOK, testBody{Message: "ok", Code: 1})

	if ct := w.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Errorf("expected Content-Type application/yaml, got %s", ct)
	}

	var result testBody
	if err := yaml.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result.Code != 1 {
		t.Errorf("unexpected body: %+v", result)
	}
}

func TestRespond_Negotiation(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"", "application/json"},
		{"application/json", "application/json"},
		{"application/yaml", "application/yaml"},
		{"text/yaml", "application/yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			w := httptest.NewRecorder()

			Respond(w, r, http.StatusOK, testBody{Message: "ok"})

			if ct := w.Header().Get("Content-Type"); ct != tt.want {
				t.Errorf("Content-Type = %s, want %s", ct, tt.want)
			}
		})
	}
}
