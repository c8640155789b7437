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

// AbsDiff computes the absolute difference |a - b| for each element.
// For unsigned types this is max(a,b) - min(a,b) and never wraps.
func AbsDiff[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = absDiff(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Avg computes the rounded average (a + b + 1) >> 1 for each element
// without overflowing the lane type. Ties round up, matching the x86
// PAVGB/PAVGW and ARM URHADD instructions: Avg(1, 2) == 2.
func Avg[T UnsignedInts](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = roundedAvg(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func absDiff[T Lanes](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// (a + b + 1) / 2 == a/2 + b/2 + ((a&1) | (b&1)) for unsigned a, b.
func roundedAvg[T UnsignedInts](a, b T) T {
	return a>>1 + b>>1 + (a|b)&1
}
