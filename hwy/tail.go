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

// FirstN creates a mask with the first n lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width.
// n is clamped to [0, NumLanes].
//
// Example:
//
//	remaining := len(data) % 8
//	if remaining > 0 {
//	    mask := hwy.FirstN[int32, [8]int32](remaining)
//	    // ... process tail lanes where mask is true
//	}
func FirstN[T MaskLanes, A LaneArray[T]](n int) Mask[T, A] {
	var m Mask[T, A]
	if n > len(m.lanes) {
		n = len(m.lanes)
	}
	t := laneTrue[T]()
	for i := 0; i < n; i++ {
		m.lanes[i] = t
	}
	return m
}

// ProcessWithTail walks an array of size elements in chunks of
// NumLanes and calls fn once per chunk with the chunk's starting index and
// a mask of the lanes that hold data. Full chunks get an all-true mask;
// the tail (if size is not a multiple of the lane count) gets FirstN.
//
// Example:
//
//	hwy.ProcessWithTail[int32, [8]int32](len(data),
//	    func(offset int, mask hwy.Mask32x8) {
//	        for i := 0; i < mask.NumLanes(); i++ {
//	            if mask.Lane(i) {
//	                output[offset+i] = data[offset+i] * 2
//	            }
//	        }
//	    },
//	)
func ProcessWithTail[T MaskLanes, A LaneArray[T]](size int, fn func(offset int, mask Mask[T, A])) {
	full := Splat[T, A](true)
	lanes := full.NumLanes()

	// Process full vectors
	fullVectors := size / lanes
	for i := range fullVectors {
		fn(i*lanes, full)
	}

	// Process tail if any
	remaining := size % lanes
	if remaining > 0 {
		fn(fullVectors*lanes, FirstN[T, A](remaining))
	}
}

// AlignedSize rounds up size to the next multiple of the lane count of
// Mask[T, A]. This is useful for allocating buffers that will be processed
// with ProcessWithTail.
func AlignedSize[T MaskLanes, A LaneArray[T]](size int) int {
	var zero A
	lanes := len(zero)
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of the lane count of Mask[T, A].
func IsAligned[T MaskLanes, A LaneArray[T]](size int) bool {
	var zero A
	return size%len(zero) == 0
}
