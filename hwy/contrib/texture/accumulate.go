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

// numPartials is the number of independent counter arrays. Four
// consecutive columns increment four different arrays, so no increment
// waits on the store of the previous one when neighboring pixels share a
// score.
const numPartials = 4

type partialHistograms [numPartials]Histogram

func (p *partialHistograms) reset() {
	*p = partialHistograms{}
}

// add counts values round-robin by position: column 4k+j goes to partial
// j, and the trailing len%4 values go to partial 0.
func (p *partialHistograms) add(values []uint8) {
	h0, h1, h2, h3 := &p[0], &p[1], &p[2], &p[3]
	n := hwy.AlignLo(len(values), numPartials)
	col := 0
	for ; col < n; col += numPartials {
		v := values[col : col+numPartials : col+numPartials]
		h0[v[0]]++
		h1[v[1]]++
		h2[v[2]]++
		h3[v[3]]++
	}
	for ; col < len(values); col++ {
		h0[values[col]]++
	}
}

// addMasked counts values[i] only where mask[i] == index, with the same
// column-to-partial assignment as add.
func (p *partialHistograms) addMasked(values, mask []uint8, index uint8) {
	mask = mask[:len(values)]
	n := hwy.AlignLo(len(values), numPartials)
	col := 0
	for ; col < n; col += numPartials {
		for j := range numPartials {
			if mask[col+j] == index {
				p[j][values[col+j]]++
			}
		}
	}
	for ; col < len(values); col++ {
		if mask[col] == index {
			p[0][values[col]]++
		}
	}
}

// reduce writes the bin-wise sum of the partials into dst, one vector of
// counters at a time.
func (p *partialHistograms) reduce(dst *Histogram) {
	h0, h1, h2, h3 := p[0][:], p[1][:], p[2][:], p[3][:]
	hwy.ProcessWithTailNoMask[uint32](HistogramSize, func(i int) {
		sum01 := hwy.Add(hwy.Load(h0[i:]), hwy.Load(h1[i:]))
		sum23 := hwy.Add(hwy.Load(h2[i:]), hwy.Load(h3[i:]))
		hwy.Store(hwy.Add(sum01, sum23), dst[i:])
	})
}
