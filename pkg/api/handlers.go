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
	"net/http"
	"strings"

	"github.com/picore/vcgen/pkg/collector"
	"github.com/picore/vcgen/pkg/defaults"
	apperrors "github.com/picore/vcgen/pkg/errors"
	"github.com/picore/vcgen/pkg/header"
	"github.com/picore/vcgen/pkg/serializer"
	"github.com/picore/vcgen/pkg/server"
	"github.com/picore/vcgen/pkg/snapshotter"
	"github.com/picore/vcgen/pkg/vcgencmd"
)

type handlers struct {
	cmd     *vcgencmd.Cmd
	version string
}

// handleSnapshot serves GET /v1/snapshot, the full device report.
func (h *handlers) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if !getOnly(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SnapshotHandlerTimeout)
	defer cancel()

	s := &snapshotter.NodeSnapshotter{
		Version:  h.version,
		Factory:  collector.NewDefaultFactory(collector.WithCmd(h.cmd)),
		Metadata: map[string]string{header.KeyBinary: h.cmd.Binary()},
	}

	snap, err := s.Collect(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to collect snapshot", nil)
		return
	}

	serializer.Respond(w, r, http.StatusOK, snap)
}

// handleThrottled serves GET /v1/throttled.
func (h *handlers) handleThrottled(w http.ResponseWriter, r *http.Request) {
	if !getOnly(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
	defer cancel()

	t, err := h.cmd.GetThrottled(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to read throttle state", nil)
		return
	}

	serializer.Respond(w, r, http.StatusOK, snapshotter.NewThrottledReport(h.version, t))
}

// handleSources serves GET /v1/sources[?category=clock]. The category
// parameter may be repeated or comma separated.
func (h *handlers) handleSources(w http.ResponseWriter, r *http.Request) {
	if !getOnly(w, r) {
		return
	}

	var cats []vcgencmd.Category
	for _, raw := range r.URL.Query()["category"] {
		for name := range strings.SplitSeq(raw, ",") {
			cat, ok := vcgencmd.ParseCategory(name)
			if !ok {
				server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidParameter,
					"unknown source category", false, map[string]any{
						"value":   name,
						"allowed": vcgencmd.Categories,
					})
				return
			}
			cats = append(cats, cat)
		}
	}

	list, err := snapshotter.NewSourceList(h.version, h.cmd, cats...)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to list sources", nil)
		return
	}

	serializer.Respond(w, r, http.StatusOK, list)
}

func getOnly(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}
