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

import "fmt"

// IntensityHistogram overwrites histogram with the counts of every pixel
// value in the width x height image stored in src with the given stride.
func IntensityHistogram(src []uint8, width, height, stride int, histogram *Histogram) {
	mustPlane("IntensityHistogram", len(src), width, height, stride)

	s := acquireScratch(0)
	defer s.release()

	for y := range height {
		s.parts.add(src[y*stride : y*stride+width])
	}
	s.parts.reduce(histogram)
}

// MaskedIntensityHistogram is IntensityHistogram restricted to pixels whose
// byte in mask, a same-sized image with its own stride, equals index.
func MaskedIntensityHistogram(src []uint8, srcStride, width, height int, mask []uint8, maskStride int, index uint8, histogram *Histogram) {
	mustPlane("MaskedIntensityHistogram", len(src), width, height, srcStride)
	mustPlane("MaskedIntensityHistogram mask", len(mask), width, height, maskStride)

	s := acquireScratch(0)
	defer s.release()

	for y := range height {
		s.parts.addMasked(src[y*srcStride:y*srcStride+width], mask[y*maskStride:], index)
	}
	s.parts.reduce(histogram)
}

func mustPlane(op string, n, width, height, stride int) {
	reason := ""
	switch {
	case width <= 0 || height <= 0:
		reason = "empty image"
	case stride < width:
		reason = "stride must be at least width"
	}
	if reason != "" {
		panic(&GeometryError{
			Width: width, Height: height, Stride: stride,
			Reason: fmt.Sprintf("%s: %s", op, reason),
		})
	}
	if err := checkBuffer(n, width, height, stride); err != nil {
		panic(err)
	}
}
