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
	"github.com/ajroetker/go-edgehist/hwy"
	"github.com/ajroetker/go-edgehist/hwy/contrib/image"
)

// HistogramSize is the number of bins, one per byte value.
const HistogramSize = 256

// Histogram holds one counter per byte value.
type Histogram [HistogramSize]uint32

// Total returns the number of samples counted.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h {
		total += uint64(c)
	}
	return total
}

// AbsSecondDerivativeHistogram overwrites histogram with the counts of
// max(sdX, sdY) over the interior of the width x height image stored in src
// with the given stride. See the package documentation for the score and
// the geometry preconditions; violations panic with a *GeometryError.
//
// The histogram sums to (width-2*indent)*(height-2*indent).
func AbsSecondDerivativeHistogram(src []uint8, width, height, stride, step, indent int, histogram *Histogram) {
	mustGeometry(len(src), width, height, stride, step, indent, MinProcessingWidth())
	absSecondDerivativeHistogram(selectKernel(src, stride), src, width, height, stride, step, indent, histogram)
}

// EdgeHistogram is AbsSecondDerivativeHistogram over an Image.
func EdgeHistogram(img *image.Image[uint8], step, indent int) Histogram {
	var hist Histogram
	AbsSecondDerivativeHistogram(img.Pix(), img.Width(), img.Height(), img.Stride(), step, indent, &hist)
	return hist
}

// absSecondDerivativeHistogram expects validated geometry.
//
// The staging row mirrors a full image row: score x of the current row
// lives at row[x], so row[indent:] holds the interior. Blocks that start at
// a multiple of the vector width within the row are the body and go through
// k; the partial blocks at either end are recomputed with the unaligned
// kernel so that every block is a whole vector. Their overlap with the body
// rewrites identical scores.
func absSecondDerivativeHistogram(k rowKernel, src []uint8, width, height, stride, step, indent int, histogram *Histogram) {
	lanes := hwy.MaxLanes[uint8]()

	s := acquireScratch(width)
	defer s.release()

	scores := s.row[indent:]
	width -= 2 * indent
	height -= 2 * indent
	p := indent * (stride + 1)

	bodyStart := hwy.AlignHi(indent, lanes) - indent
	bodyEnd := bodyStart + hwy.AlignLo(width-bodyStart, lanes)
	rowStep := step * stride

	var edge unalignedKernel
	for range height {
		if bodyStart != 0 {
			edge.block(src, p, step, rowStep, scores)
		}
		for col := bodyStart; col < bodyEnd; col += lanes {
			k.block(src, p+col, step, rowStep, scores[col:])
		}
		if width != bodyEnd {
			edge.block(src, p+width-lanes, step, rowStep, scores[width-lanes:])
		}

		s.parts.add(scores[:width])
		p += stride
	}

	s.parts.reduce(histogram)
}
