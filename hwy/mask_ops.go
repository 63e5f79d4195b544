package hwy

// This file holds the boolean algebra over masks. Only the mask-mask forms
// touch lanes. The bool forms broadcast the scalar with Splat and forward,
// so they cannot disagree with the mask-mask truth table.
//
// Lanes are combined as full-width bit patterns. Since every lane is either
// all ones or all zeros, bitwise AND/OR/XOR/NOT of the patterns is exactly
// the logical operation, and the result stays canonical.

// MaskAnd performs lane-wise AND on two masks.
func MaskAnd[T MaskLanes, A LaneArray[T]](a, b Mask[T, A]) Mask[T, A] {
	var result Mask[T, A]
	for i := 0; i < len(result.lanes); i++ {
		result.lanes[i] = a.lanes[i] & b.lanes[i]
	}
	return result
}

// MaskOr performs lane-wise OR on two masks.
func MaskOr[T MaskLanes, A LaneArray[T]](a, b Mask[T, A]) Mask[T, A] {
	var result Mask[T, A]
	for i := 0; i < len(result.lanes); i++ {
		result.lanes[i] = a.lanes[i] | b.lanes[i]
	}
	return result
}

// MaskXor performs lane-wise XOR on two masks.
func MaskXor[T MaskLanes, A LaneArray[T]](a, b Mask[T, A]) Mask[T, A] {
	var result Mask[T, A]
	for i := 0; i < len(result.lanes); i++ {
		result.lanes[i] = a.lanes[i] ^ b.lanes[i]
	}
	return result
}

// MaskNot inverts every lane of a mask.
func MaskNot[T MaskLanes, A LaneArray[T]](mask Mask[T, A]) Mask[T, A] {
	var result Mask[T, A]
	for i := 0; i < len(result.lanes); i++ {
		result.lanes[i] = ^mask.lanes[i]
	}
	return result
}

// MaskAndNot performs (~a) & b on masks.
func MaskAndNot[T MaskLanes, A LaneArray[T]](a, b Mask[T, A]) Mask[T, A] {
	var result Mask[T, A]
	for i := 0; i < len(result.lanes); i++ {
		result.lanes[i] = b.lanes[i] &^ a.lanes[i]
	}
	return result
}

// MaskEqual reports whether every lane of a matches the same lane of b.
func MaskEqual[T MaskLanes, A LaneArray[T]](a, b Mask[T, A]) bool {
	return a.lanes == b.lanes
}

// MaskNotEqual reports whether any lane of a differs from the same lane of b.
func MaskNotEqual[T MaskLanes, A LaneArray[T]](a, b Mask[T, A]) bool {
	return !MaskEqual(a, b)
}

// MaskAndBool returns MaskAnd(v, Splat(s)).
func MaskAndBool[T MaskLanes, A LaneArray[T]](v Mask[T, A], s bool) Mask[T, A] {
	return MaskAnd(v, Splat[T, A](s))
}

// BoolAndMask returns MaskAnd(Splat(s), v).
func BoolAndMask[T MaskLanes, A LaneArray[T]](s bool, v Mask[T, A]) Mask[T, A] {
	return MaskAnd(Splat[T, A](s), v)
}

// MaskOrBool returns MaskOr(v, Splat(s)).
func MaskOrBool[T MaskLanes, A LaneArray[T]](v Mask[T, A], s bool) Mask[T, A] {
	return MaskOr(v, Splat[T, A](s))
}

// BoolOrMask returns MaskOr(Splat(s), v).
func BoolOrMask[T MaskLanes, A LaneArray[T]](s bool, v Mask[T, A]) Mask[T, A] {
	return MaskOr(Splat[T, A](s), v)
}

// MaskXorBool returns MaskXor(v, Splat(s)).
func MaskXorBool[T MaskLanes, A LaneArray[T]](v Mask[T, A], s bool) Mask[T, A] {
	return MaskXor(v, Splat[T, A](s))
}

// BoolXorMask returns MaskXor(Splat(s), v).
func BoolXorMask[T MaskLanes, A LaneArray[T]](s bool, v Mask[T, A]) Mask[T, A] {
	return MaskXor(Splat[T, A](s), v)
}

// And is the method form of MaskAnd.
func (m Mask[T, A]) And(other Mask[T, A]) Mask[T, A] {
	return MaskAnd(m, other)
}

// Or is the method form of MaskOr.
func (m Mask[T, A]) Or(other Mask[T, A]) Mask[T, A] {
	return MaskOr(m, other)
}

// Xor is the method form of MaskXor.
func (m Mask[T, A]) Xor(other Mask[T, A]) Mask[T, A] {
	return MaskXor(m, other)
}

// Not is the method form of MaskNot.
func (m Mask[T, A]) Not() Mask[T, A] {
	return MaskNot(m)
}

// AndNot returns (~m) & other.
func (m Mask[T, A]) AndNot(other Mask[T, A]) Mask[T, A] {
	return MaskAndNot(m, other)
}

// Eq is the method form of MaskEqual.
func (m Mask[T, A]) Eq(other Mask[T, A]) bool {
	return MaskEqual(m, other)
}

// Ne is the method form of MaskNotEqual.
func (m Mask[T, A]) Ne(other Mask[T, A]) bool {
	return MaskNotEqual(m, other)
}

// AndAssign replaces m with MaskAndBool(m, s).
func (m *Mask[T, A]) AndAssign(s bool) {
	*m = MaskAndBool(*m, s)
}

// OrAssign replaces m with MaskOrBool(m, s).
func (m *Mask[T, A]) OrAssign(s bool) {
	*m = MaskOrBool(*m, s)
}

// XorAssign replaces m with MaskXorBool(m, s).
func (m *Mask[T, A]) XorAssign(s bool) {
	*m = MaskXorBool(*m, s)
}

// AndAssignMask replaces m with MaskAnd(m, other).
func (m *Mask[T, A]) AndAssignMask(other Mask[T, A]) {
	*m = MaskAnd(*m, other)
}

// OrAssignMask replaces m with MaskOr(m, other).
func (m *Mask[T, A]) OrAssignMask(other Mask[T, A]) {
	*m = MaskOr(*m, other)
}

// XorAssignMask replaces m with MaskXor(m, other).
func (m *Mask[T, A]) XorAssignMask(other Mask[T, A]) {
	*m = MaskXor(*m, other)
}
