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

// Package firmware collects VideoCore firmware information.
//
// The measurement has the subtypes:
//   - version: firmware and vcos build strings
//   - log-status: log level per VideoCore log category
//   - camera: camera support and detection
//   - otp: one-time-programmable memory rows
//   - config-int, config-str: firmware configuration values
package firmware
