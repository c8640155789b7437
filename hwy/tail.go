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

package hwy

import "unsafe"

// AlignLo rounds n down to a multiple of align. align must be a power of two.
func AlignLo(n, align int) int {
	return n &^ (align - 1)
}

// AlignHi rounds n up to a multiple of align. align must be a power of two.
func AlignHi(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// AlignedSize rounds up size to the next multiple of vector width.
// This is useful for allocating buffers that will be processed in whole
// vectors, so that the last block may run past the logical end.
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned returns true if size is a multiple of vector width.
func IsAligned[T Lanes](size int) bool {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return true
	}
	return size%maxLanes == 0
}

// IsAlignedPtr reports whether the first element of s sits on a vector-width
// boundary. An empty slice is considered aligned.
func IsAlignedPtr[T Lanes](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%uintptr(currentWidth) == 0
}

// ProcessWithTailNoMask calls fullFn for every full vector in [0, size) and,
// when size is not a multiple of the vector width, once more at
// size-MaxLanes so the last vector overlaps the previous one instead of
// running past the end. When size is smaller than one vector, fullFn(0)
// is called once and the caller must provide enough slack.
func ProcessWithTailNoMask[T Lanes](size int, fullFn func(offset int)) {
	maxLanes := MaxLanes[T]()

	if size < maxLanes {
		fullFn(0)
		return
	}

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	if size%maxLanes > 0 {
		fullFn(size - maxLanes)
	}
}
