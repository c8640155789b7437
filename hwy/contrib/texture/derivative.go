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

import "github.com/ajroetker/go-edgehist/hwy"

// rowKernel scores one vector of pixels. block writes the scores for the
// pixels starting at src[p] into dst[:hwy.MaxLanes[uint8]()].
//
// The two implementations differ only in which loads they are allowed to
// treat as aligned; they must produce identical scores.
type rowKernel interface {
	block(src []uint8, p, colStep, rowStep int, dst []uint8)
}

// alignedKernel requires src[p] and src[p±rowStep] to start on a vector
// boundary: the image base and stride are aligned and p is a body column.
// Horizontal neighbors are never aligned.
type alignedKernel struct{}

func (alignedKernel) block(src []uint8, p, colStep, rowStep int, dst []uint8) {
	center := hwy.Load(src[p:])
	sdX := hwy.AbsDiff(hwy.Avg(hwy.LoadU(src[p-colStep:]), hwy.LoadU(src[p+colStep:])), center)
	sdY := hwy.AbsDiff(hwy.Avg(hwy.Load(src[p-rowStep:]), hwy.Load(src[p+rowStep:])), center)
	hwy.Store(hwy.Max(sdY, sdX), dst)
}

// unalignedKernel makes no assumption about addresses. It also handles the
// partial first and last blocks of every row.
type unalignedKernel struct{}

func (unalignedKernel) block(src []uint8, p, colStep, rowStep int, dst []uint8) {
	center := hwy.LoadU(src[p:])
	sdX := hwy.AbsDiff(hwy.Avg(hwy.LoadU(src[p-colStep:]), hwy.LoadU(src[p+colStep:])), center)
	sdY := hwy.AbsDiff(hwy.Avg(hwy.LoadU(src[p-rowStep:]), hwy.LoadU(src[p+rowStep:])), center)
	hwy.Store(hwy.Max(sdY, sdX), dst)
}

// selectKernel picks the aligned kernel when the image base and every row
// start sit on a vector boundary.
func selectKernel(src []uint8, stride int) rowKernel {
	if hwy.IsAlignedPtr(src) && hwy.IsAligned[uint8](stride) {
		return alignedKernel{}
	}
	return unalignedKernel{}
}

// absSecondDerivative is the scalar score of the pixel at src[p].
func absSecondDerivative(src []uint8, p, colStep, rowStep int) uint8 {
	c := src[p]
	sdX := absDiff(avg(src[p-colStep], src[p+colStep]), c)
	sdY := absDiff(avg(src[p-rowStep], src[p+rowStep]), c)
	return max(sdX, sdY)
}

func avg(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b) + 1) >> 1)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
