// Package hwy provides portable SIMD mask vectors and their boolean algebra.
//
// It follows the Highway C++ library's design philosophy: write once,
// run optimally everywhere. A mask vector holds N lanes, and every lane is
// either all bits set (true) or all bits clear (false), so the same bitwise
// instructions used for data lanes implement AND, OR and XOR on masks.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-highway-masks/hwy"
//
//	// Build masks
//	t := hwy.SplatMask32x4(true)
//	v := hwy.MaskFromBools[int32, [4]int32](true, false, true, false)
//
//	// Combine them, with other masks or with plain bools
//	a := hwy.MaskAnd(v, t)
//	b := hwy.MaskXorBool(v, true)
//	v.OrAssign(false)
//
//	// Compare whole vectors
//	same := hwy.MaskEqual(a, v)
package hwy

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// MaskLanes is a constraint for the lane types a mask can be backed by.
// The lane type fixes the canonical bit width: a true lane is ^T(0)
// (all bits set) and a false lane is T(0).
type MaskLanes interface {
	SignedInts
}

// LaneArray is a constraint for the fixed-size arrays backing a mask.
// The array length is the lane count N.
type LaneArray[T MaskLanes] interface {
	~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

// Mask is a fixed-width mask vector of len(A) lanes, each holding a
// canonical true/false bit pattern of type T.
//
// Mask is a plain value: copies never share lanes, and two masks of the
// same type can be compared with ==. The zero value has every lane false.
//
// Mask instances are normally created with Splat, MaskFromBools,
// MaskFromBits or FirstN, or through the per-width aliases such as Mask32x4.
type Mask[T MaskLanes, A LaneArray[T]] struct {
	lanes A
}

// laneTrue returns the canonical true pattern for T.
func laneTrue[T MaskLanes]() T {
	return ^T(0)
}

// laneOf converts a bool to the canonical pattern for T.
func laneOf[T MaskLanes](b bool) T {
	if b {
		return ^T(0)
	}
	return 0
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T, A]) NumLanes() int {
	return len(m.lanes)
}

// Lane returns whether lane i is true.
// Out-of-range indices report false.
func (m Mask[T, A]) Lane(i int) bool {
	if i < 0 || i >= len(m.lanes) {
		return false
	}
	return m.lanes[i] != 0
}

// Raw returns a copy of the lane bit patterns.
func (m Mask[T, A]) Raw() A {
	return m.lanes
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T, A]) AllTrue() bool {
	for i := 0; i < len(m.lanes); i++ {
		if m.lanes[i] == 0 {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T, A]) AnyTrue() bool {
	for i := 0; i < len(m.lanes); i++ {
		if m.lanes[i] != 0 {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T, A]) CountTrue() int {
	count := 0
	for i := 0; i < len(m.lanes); i++ {
		if m.lanes[i] != 0 {
			count++
		}
	}
	return count
}

// IsCanonical reports whether every lane holds exactly the all-ones or
// all-zeros pattern. Masks built by this package always are; a mask built
// from foreign bit patterns may not be.
func (m Mask[T, A]) IsCanonical() bool {
	t := laneTrue[T]()
	for i := 0; i < len(m.lanes); i++ {
		if m.lanes[i] != 0 && m.lanes[i] != t {
			return false
		}
	}
	return true
}
