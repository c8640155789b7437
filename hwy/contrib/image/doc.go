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

// Package image provides single-channel 2D image types with strided rows.
//
// An Image either owns its pixels, with rows padded to a multiple of the
// vector width (NewImage), or wraps a caller-owned buffer whose stride was
// chosen elsewhere (Wrap), such as a decoded frame or a luma plane.
//
//	img := image.NewImage[uint8](1920, 1080)
//	for y := 0; y < img.Height(); y++ {
//	    row := img.RowSlice(y)
//	    // ...
//	}
//
// Images decoded with the standard library are converted with FromStd,
// which reduces color to 8-bit luma.
//
// # Regions
//
// Rect describes a rectangular region. Inset shrinks a rectangle by a
// border on every side, which is how kernels that sample neighbors select
// the pixels whose neighborhoods are fully in bounds.
package image
