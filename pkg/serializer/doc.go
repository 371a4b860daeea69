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

// Package serializer writes vcgen documents as JSON, YAML or a table.
//
// The package supports three output formats:
//   - JSON: indented machine-readable output
//   - YAML: human-readable output
//   - Table: FIELD/VALUE rows with flattened, dot-separated keys
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer serializer.Close(w)
//	if err := w.Serialize(ctx, snap); err != nil {
//		return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// HTTP responses are encoded into a buffer before the status is written, so
// an encoding failure never produces a partial body.
package serializer
