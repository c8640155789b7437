// Copyright 2025 go-highway Authors
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

// Command edgehist prints second-derivative ("edge strength") histograms of
// images, the texture statistic computed by package texture.
//
// Usage:
//
//	edgehist hist --step 1 --indent 1 frame0.png frame1.png
//	edgehist hist --format json scan.tiff
//	edgehist info
//
// Color images are reduced to 8-bit luma before scoring. PNG, JPEG, GIF,
// TIFF, BMP and WebP inputs are supported.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("edgehist failed", "error", err)
		os.Exit(1)
	}
}
