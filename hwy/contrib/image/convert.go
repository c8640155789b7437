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

package image

import (
	stdimage "image"
	"image/color"
)

// FromStd converts a decoded standard library image to 8-bit luma.
// Gray and YCbCr sources are copied plane to plane; everything else goes
// through color.GrayModel.
func FromStd(src stdimage.Image) *Image[uint8] {
	b := src.Bounds()
	dst := NewImage[uint8](b.Dx(), b.Dy())
	if dst.width == 0 {
		return dst
	}

	switch s := src.(type) {
	case *stdimage.Gray:
		for y := 0; y < dst.height; y++ {
			off := s.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.RowSlice(y), s.Pix[off:off+dst.width])
		}
	case *stdimage.YCbCr:
		for y := 0; y < dst.height; y++ {
			off := s.YOffset(b.Min.X, b.Min.Y+y)
			copy(dst.RowSlice(y), s.Y[off:off+dst.width])
		}
	default:
		for y := 0; y < dst.height; y++ {
			row := dst.RowSlice(y)
			for x := range row {
				row[x] = color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
			}
		}
	}
	return dst
}
