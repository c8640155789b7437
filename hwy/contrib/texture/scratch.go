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
	"sync"

	"github.com/ajroetker/go-edgehist/hwy"
)

// scratch is the per-call working memory: one staging row of scores and
// the partial histograms. It is taken from scratchPool at the start of a
// call and returned by a deferred release, so it is never shared between
// concurrent calls and never outlives one.
type scratch struct {
	row   []uint8
	parts partialHistograms
}

var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

// acquireScratch returns scratch whose row holds rowLen bytes rounded up to
// the vector width, with zeroed partial histograms. Row contents are
// unspecified; every score is written before it is read.
func acquireScratch(rowLen int) *scratch {
	s := scratchPool.Get().(*scratch)
	size := hwy.AlignedSize[uint8](rowLen)
	if cap(s.row) < size {
		s.row = make([]uint8, size)
	}
	s.row = s.row[:size]
	s.parts.reset()
	return s
}

func (s *scratch) release() {
	scratchPool.Put(s)
}
