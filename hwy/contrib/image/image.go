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
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-edgehist/hwy"
)

// Image is a single-channel 2D array stored row-major with a stride.
type Image[T hwy.Lanes] struct {
	data        []T
	width       int
	height      int
	stride      int // elements per row (includes padding)
	bytesPerRow int
}

// NewImage creates a new image with the specified dimensions.
// Rows are padded to the vector width so whole-vector loads at the end of a
// row stay inside the row.
func NewImage[T hwy.Lanes](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	stride := hwy.AlignedSize[T](width)
	return &Image[T]{
		data:        make([]T, stride*height),
		width:       width,
		height:      height,
		stride:      stride,
		bytesPerRow: stride * elemSize[T](),
	}
}

// Wrap creates an Image over caller-owned data without copying.
// Row y occupies data[y*stride : y*stride+width]; bytes between width and
// stride are never read. Wrap panics if the geometry does not fit in data.
func Wrap[T hwy.Lanes](data []T, width, height, stride int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}
	if stride < width {
		panic(fmt.Sprintf("image.Wrap: stride %d smaller than width %d", stride, width))
	}
	if need := (height-1)*stride + width; len(data) < need {
		panic(fmt.Sprintf("image.Wrap: %dx%d with stride %d needs %d elements, have %d",
			width, height, stride, need, len(data)))
	}
	return &Image[T]{
		data:        data,
		width:       width,
		height:      height,
		stride:      stride,
		bytesPerRow: stride * elemSize[T](),
	}
}

func elemSize[T hwy.Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// BytesPerRow returns the number of bytes per row.
func (img *Image[T]) BytesPerRow() int {
	return img.bytesPerRow
}

// Pix returns the backing slice, starting at the first pixel of row 0.
// The last row may be shorter than Stride.
func (img *Image[T]) Pix() []T {
	return img.data
}

// Row returns a mutable slice for the specified row, including any padding
// that exists after the last pixel.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	end := min(start+img.stride, len(img.data))
	return img.data[start:end]
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual image width (excluding padding).
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at position (x, y), or zero outside the image.
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at position (x, y). Out-of-bounds writes are ignored.
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// Fill sets all pixels to the specified value. Padding is left untouched.
func (img *Image[T]) Fill(value T) {
	for y := 0; y < img.height; y++ {
		row := img.RowSlice(y)
		for i := range row {
			row[i] = value
		}
	}
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// Area returns the number of pixels in the rectangle, or 0 if it is empty.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Inset shrinks the rectangle by n on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X0: r.X0 + n, Y0: r.Y0 + n, X1: r.X1 - n, Y1: r.Y1 - n}
}

// Bounds returns the bounding rectangle of the image.
func (img *Image[T]) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}
