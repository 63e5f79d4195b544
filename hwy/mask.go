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

import "strings"

//go:generate go run ../cmd/maskgen --output . --pkg hwy

// Splat creates a mask with every lane set to value.
func Splat[T MaskLanes, A LaneArray[T]](value bool) Mask[T, A] {
	var m Mask[T, A]
	if !value {
		return m
	}
	t := laneTrue[T]()
	for i := 0; i < len(m.lanes); i++ {
		m.lanes[i] = t
	}
	return m
}

// MaskFromBools creates a mask where lane i is lanes[i].
// Lanes without a value are false; values beyond the lane count are ignored.
func MaskFromBools[T MaskLanes, A LaneArray[T]](lanes ...bool) Mask[T, A] {
	var m Mask[T, A]
	for i := 0; i < len(m.lanes) && i < len(lanes); i++ {
		m.lanes[i] = laneOf[T](lanes[i])
	}
	return m
}

// MaskFromBits creates a mask from a bitmask integer.
// Bit i of bits corresponds to lane i.
func MaskFromBits[T MaskLanes, A LaneArray[T]](bits uint64) Mask[T, A] {
	var m Mask[T, A]
	for i := 0; i < len(m.lanes) && i < 64; i++ {
		m.lanes[i] = laneOf[T](bits&(1<<i) != 0)
	}
	return m
}

// MaskFromRaw wraps lane bit patterns produced elsewhere, for example by a
// platform comparison instruction. The patterns are taken as-is; use
// IsCanonical to check them.
func MaskFromRaw[T MaskLanes, A LaneArray[T]](lanes A) Mask[T, A] {
	return Mask[T, A]{lanes: lanes}
}

// Bits converts the mask to a bitmask integer.
// Lane i corresponds to bit i of the result.
func (m Mask[T, A]) Bits() uint64 {
	var result uint64
	for i := 0; i < len(m.lanes) && i < 64; i++ {
		if m.lanes[i] != 0 {
			result |= 1 << i
		}
	}
	return result
}

// Bools returns the lanes as a freshly allocated slice.
func (m Mask[T, A]) Bools() []bool {
	result := make([]bool, len(m.lanes))
	for i := range result {
		result[i] = m.lanes[i] != 0
	}
	return result
}

// String formats the mask as its lanes, e.g. "[T F T F]".
func (m Mask[T, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < len(m.lanes); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if m.lanes[i] != 0 {
			sb.WriteByte('T')
		} else {
			sb.WriteByte('F')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
