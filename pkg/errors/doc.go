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

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeExternalTool,
//	    "vcgencmd invocation failed",
//	    runErr,
//	    map[string]interface{}{
//	        "command": "vcgencmd measure_clock arm",
//	        "exitCode": 255,
//	    },
//	)
//
// Callers branch on the code rather than the message:
//
//	if errors.IsCode(err, errors.ErrCodeInvalidParameter) {
//	    // caller passed a value outside the allow-list
//	}
package errors
