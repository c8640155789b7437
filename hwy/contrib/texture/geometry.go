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

package texture

import (
	"fmt"

	"github.com/ajroetker/go-edgehist/hwy"
	"github.com/ajroetker/go-edgehist/hwy/contrib/image"
)

// GeometryError describes image geometry that violates a precondition.
// The histogram functions panic with a *GeometryError.
type GeometryError struct {
	Width, Height int
	Stride        int
	Step, Indent  int
	Reason        string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("texture: invalid geometry %dx%d (stride %d, step %d, indent %d): %s",
		e.Width, e.Height, e.Stride, e.Step, e.Indent, e.Reason)
}

// MinProcessingWidth returns the narrowest interior row the vector kernel
// accepts, which is one vector of bytes.
func MinProcessingWidth() int {
	return hwy.MaxLanes[uint8]()
}

// CheckGeometry reports whether width, height, step and indent satisfy the
// preconditions of AbsSecondDerivativeHistogram. It returns nil or a
// *GeometryError.
func CheckGeometry(width, height, step, indent int) error {
	return checkGeometry(width, height, width, step, indent, MinProcessingWidth())
}

func checkGeometry(width, height, stride, step, indent, minWidth int) error {
	fail := func(format string, args ...any) error {
		return &GeometryError{
			Width: width, Height: height, Stride: stride,
			Step: step, Indent: indent,
			Reason: fmt.Sprintf(format, args...),
		}
	}
	switch {
	case step < 1:
		return fail("step must be at least 1")
	case indent < step:
		return fail("indent must be at least step")
	case width <= 2*indent:
		return fail("width must exceed 2*indent")
	case height <= 2*indent:
		return fail("height must exceed 2*indent")
	case width < minWidth+2*indent:
		return fail("width must be at least %d+2*indent", minWidth)
	case stride < width:
		return fail("stride must be at least width")
	}
	return nil
}

// checkBuffer verifies that a strided grid fits in n elements.
func checkBuffer(n, width, height, stride int) error {
	if need := (height-1)*stride + width; n < need {
		return &GeometryError{
			Width: width, Height: height, Stride: stride,
			Reason: fmt.Sprintf("buffer holds %d bytes, need %d", n, need),
		}
	}
	return nil
}

func mustGeometry(srcLen, width, height, stride, step, indent, minWidth int) {
	if err := checkGeometry(width, height, stride, step, indent, minWidth); err != nil {
		panic(err)
	}
	if err := checkBuffer(srcLen, width, height, stride); err != nil {
		panic(err)
	}
}

// InteriorRect returns the pixels whose neighbors at distance step stay in
// bounds after excluding indent pixels on every side: columns
// [indent, width-indent) and rows [indent, height-indent).
// It panics with a *GeometryError if the geometry is invalid.
func InteriorRect(width, height, step, indent int) image.Rect {
	if err := CheckGeometry(width, height, step, indent); err != nil {
		panic(err)
	}
	return image.Rect{X0: 0, Y0: 0, X1: width, Y1: height}.Inset(indent)
}

// InteriorPixels returns the number of samples a histogram over the
// interior holds: (width-2*indent) * (height-2*indent).
func InteriorPixels(width, height, indent int) int {
	return image.Rect{X0: 0, Y0: 0, X1: width, Y1: height}.Inset(indent).Area()
}
