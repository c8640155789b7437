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

// Package texture computes byte-image histograms used as texture and detail
// statistics, for example to estimate scene complexity before encoding.
//
// # Second-Derivative Histogram
//
// AbsSecondDerivativeHistogram scores every interior pixel p of an 8-bit
// image with the larger of two directional second-derivative magnitudes
//
//	sdX = |avg(p - step, p + step) - p|
//	sdY = |avg(p - step*stride, p + step*stride) - p|
//	score = max(sdX, sdY)
//
// where avg rounds ties up, (a + b + 1) >> 1, and counts the scores in a
// 256-bin histogram. Pixels closer than indent to any border are excluded,
// so every sampled neighbor stays in bounds.
//
//	var hist texture.Histogram
//	texture.AbsSecondDerivativeHistogram(pix, width, height, stride, 1, 1, &hist)
//
// Rows are scored a vector at a time (hwy.MaxLanes[uint8]() pixels) into a
// padded staging row and counted into four partial histograms round-robin
// by column, which are summed at the end. The result is bin-for-bin equal
// to the scalar BaseAbsSecondDerivativeHistogram.
//
// # Geometry
//
// Invalid geometry is a programming error and panics with a *GeometryError:
//
//   - step >= 1 and indent >= step
//   - width > 2*indent and height > 2*indent
//   - width >= hwy.MaxLanes[uint8]() + 2*indent
//
// Use CheckGeometry to validate user supplied parameters up front.
//
// # Other Histograms
//
// IntensityHistogram and MaskedIntensityHistogram count raw pixel values
// using the same partial accumulation. Batch computes independent
// histograms for many frames on a workerpool.Pool; each individual
// histogram is still computed on a single goroutine.
package texture
