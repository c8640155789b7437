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
	"github.com/ajroetker/go-edgehist/hwy/contrib/image"
	"github.com/ajroetker/go-edgehist/hwy/contrib/workerpool"
)

// Batch computes EdgeHistogram for every frame. Frames are distributed over
// pool, one frame per task; a nil pool runs them in order on the calling
// goroutine. Results are indexed like frames and are identical to calling
// EdgeHistogram on each frame.
//
// All frames are validated before any work starts, so a *GeometryError
// panic is raised on the calling goroutine.
func Batch(pool *workerpool.Pool, frames []*image.Image[uint8], step, indent int) []Histogram {
	for _, f := range frames {
		mustGeometry(len(f.Pix()), f.Width(), f.Height(), f.Stride(), step, indent, MinProcessingWidth())
	}

	out := make([]Histogram, len(frames))
	run := func(i int) {
		f := frames[i]
		src := f.Pix()
		absSecondDerivativeHistogram(selectKernel(src, f.Stride()), src,
			f.Width(), f.Height(), f.Stride(), step, indent, &out[i])
	}

	if pool == nil {
		for i := range frames {
			run(i)
		}
		return out
	}
	pool.ParallelForAtomic(len(frames), run)
	return out
}
