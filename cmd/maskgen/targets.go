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

package main

import (
	"fmt"
	"math/bits"

	"github.com/samber/lo"
)

// MaxVecWidth is the widest vector, in bytes, that the hwy.LaneArray
// constraint can back: 64 lanes of int8.
const MaxVecWidth = 64

// LaneType describes the element type backing one mask lane.
type LaneType struct {
	GoType string // "int8", "int16", "int32", "int64"
	Bits   int    // canonical pattern width
}

// LaneTypes lists the lane types of hwy.MaskLanes, narrowest first.
var LaneTypes = []LaneType{
	{GoType: "int8", Bits: 8},
	{GoType: "int16", Bits: 16},
	{GoType: "int32", Bits: 32},
	{GoType: "int64", Bits: 64},
}

// Target is a vector width masks are generated for.
type Target struct {
	Name     string
	VecWidth int // bytes
}

// LanesFor returns the number of lanes of the given lane type in this target.
func (t Target) LanesFor(lane LaneType) int {
	return t.VecWidth * 8 / lane.Bits
}

// Targets returns one target per power-of-two byte width from 2 up to maxBytes.
func Targets(maxBytes int) ([]Target, error) {
	if maxBytes < 2 || maxBytes > MaxVecWidth || bits.OnesCount(uint(maxBytes)) != 1 {
		return nil, fmt.Errorf("max width %d bytes: must be a power of two in [2, %d]", maxBytes, MaxVecWidth)
	}
	var targets []Target
	for w := 2; w <= maxBytes; w *= 2 {
		targets = append(targets, Target{Name: fmt.Sprintf("%dbit", w*8), VecWidth: w})
	}
	return targets, nil
}

// Shape is one concrete mask type: a lane type and a lane count.
type Shape struct {
	Lane  LaneType
	Lanes int
}

// TypeName returns the alias name, e.g. "Mask32x4".
func (s Shape) TypeName() string {
	return fmt.Sprintf("Mask%dx%d", s.Lane.Bits, s.Lanes)
}

// ArrayType returns the backing array type, e.g. "[4]int32".
func (s Shape) ArrayType() string {
	return fmt.Sprintf("[%d]%s", s.Lanes, s.Lane.GoType)
}

// TypeArgs returns the instantiation arguments, e.g. "int32, [4]int32".
func (s Shape) TypeArgs() string {
	return s.Lane.GoType + ", " + s.ArrayType()
}

// TotalBits returns the full vector width in bits.
func (s Shape) TotalBits() int {
	return s.Lanes * s.Lane.Bits
}

// Shapes returns every mask shape with at least two lanes for targets up to
// maxBytes, grouped by lane type and ordered by lane count.
func Shapes(maxBytes int) ([]Shape, error) {
	targets, err := Targets(maxBytes)
	if err != nil {
		return nil, err
	}
	return lo.FlatMap(LaneTypes, func(lane LaneType, _ int) []Shape {
		return lo.FilterMap(targets, func(t Target, _ int) (Shape, bool) {
			n := t.LanesFor(lane)
			return Shape{Lane: lane, Lanes: n}, n >= 2
		})
	}), nil
}
