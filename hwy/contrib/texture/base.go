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

// BaseAbsSecondDerivativeHistogram computes the same histogram as
// AbsSecondDerivativeHistogram one pixel at a time into a single counter
// array. It has no minimum width beyond width > 2*indent.
func BaseAbsSecondDerivativeHistogram(src []uint8, width, height, stride, step, indent int, histogram *Histogram) {
	mustGeometry(len(src), width, height, stride, step, indent, 1)

	*histogram = Histogram{}
	rowStep := step * stride
	for y := indent; y < height-indent; y++ {
		for x := indent; x < width-indent; x++ {
			histogram[absSecondDerivative(src, y*stride+x, step, rowStep)]++
		}
	}
}
