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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The helpers in this file are instantiated for every generated mask width
// by mask_gen_test.go.

// sampleMasks returns the uniform masks, two alternating patterns and a set
// of pseudo-random masks of the given width.
func sampleMasks[T MaskLanes, A LaneArray[T]](count int) []Mask[T, A] {
	masks := []Mask[T, A]{
		Splat[T, A](true),
		Splat[T, A](false),
		MaskFromBits[T, A](0x5555555555555555),
		MaskFromBits[T, A](0xAAAAAAAAAAAAAAAA),
		FirstN[T, A](1),
	}
	f := fuzz.NewWithSeed(int64(len(Splat[T, A](false).lanes))).NilChance(0).NumElements(64, 64)
	for i := 0; i < count; i++ {
		var lanes []bool
		f.Fuzz(&lanes)
		masks = append(masks, MaskFromBools[T, A](lanes...))
	}
	return masks
}

// laneWise computes the expected lanes of op applied to a and b.
func laneWise[T MaskLanes, A LaneArray[T]](a, b Mask[T, A], op func(x, y bool) bool) []bool {
	want := make([]bool, a.NumLanes())
	for i := range want {
		want[i] = op(a.Lane(i), b.Lane(i))
	}
	return want
}

func testMaskAlgebra[T MaskLanes, A LaneArray[T]](t *testing.T) {
	tm := Splat[T, A](true)
	fm := Splat[T, A](false)
	masks := sampleMasks[T, A](16)

	t.Run("Distinct", func(t *testing.T) {
		assert.True(t, tm.Ne(fm))
		assert.True(t, MaskNotEqual(tm, fm))
		assert.False(t, MaskEqual(tm, fm))
		assert.False(t, tm == fm)
	})

	t.Run("TruthTable", func(t *testing.T) {
		for _, a := range []bool{false, true} {
			for _, b := range []bool{false, true} {
				va, vb := Splat[T, A](a), Splat[T, A](b)
				wantAnd, wantOr, wantXor := Splat[T, A](a && b), Splat[T, A](a || b), Splat[T, A](a != b)

				assert.Equal(t, wantAnd, MaskAnd(va, vb), "%v & %v", a, b)
				assert.Equal(t, wantAnd, MaskAndBool(va, b), "%v & %v", a, b)
				assert.Equal(t, wantAnd, BoolAndMask(a, vb), "%v & %v", a, b)

				assert.Equal(t, wantOr, MaskOr(va, vb), "%v | %v", a, b)
				assert.Equal(t, wantOr, MaskOrBool(va, b), "%v | %v", a, b)
				assert.Equal(t, wantOr, BoolOrMask(a, vb), "%v | %v", a, b)

				assert.Equal(t, wantXor, MaskXor(va, vb), "%v ^ %v", a, b)
				assert.Equal(t, wantXor, MaskXorBool(va, b), "%v ^ %v", a, b)
				assert.Equal(t, wantXor, BoolXorMask(a, vb), "%v ^ %v", a, b)
			}
		}
	})

	t.Run("LaneWise", func(t *testing.T) {
		and := func(x, y bool) bool { return x && y }
		or := func(x, y bool) bool { return x || y }
		xor := func(x, y bool) bool { return x != y }
		andNot := func(x, y bool) bool { return !x && y }

		for _, a := range masks {
			for _, b := range masks {
				if diff := cmp.Diff(laneWise(a, b, and), MaskAnd(a, b).Bools()); diff != "" {
					t.Fatalf("MaskAnd(%v, %v) mismatch (-want +got):\n%s", a, b, diff)
				}
				if diff := cmp.Diff(laneWise(a, b, or), MaskOr(a, b).Bools()); diff != "" {
					t.Fatalf("MaskOr(%v, %v) mismatch (-want +got):\n%s", a, b, diff)
				}
				if diff := cmp.Diff(laneWise(a, b, xor), MaskXor(a, b).Bools()); diff != "" {
					t.Fatalf("MaskXor(%v, %v) mismatch (-want +got):\n%s", a, b, diff)
				}
				if diff := cmp.Diff(laneWise(a, b, andNot), MaskAndNot(a, b).Bools()); diff != "" {
					t.Fatalf("MaskAndNot(%v, %v) mismatch (-want +got):\n%s", a, b, diff)
				}
			}
		}
	})

	t.Run("IdentityAnnihilator", func(t *testing.T) {
		for _, v := range masks {
			assert.Equal(t, v, MaskAndBool(v, true), "v & true")
			assert.Equal(t, fm, MaskAndBool(v, false), "v & false")
			assert.Equal(t, tm, MaskOrBool(v, true), "v | true")
			assert.Equal(t, v, MaskOrBool(v, false), "v | false")
			assert.Equal(t, v, MaskXorBool(v, false), "v ^ false")
			assert.Equal(t, MaskNot(v), MaskXorBool(v, true), "v ^ true")

			assert.Equal(t, v, v.And(tm))
			assert.Equal(t, fm, v.And(fm))
			assert.Equal(t, tm, v.Or(tm))
			assert.Equal(t, v, v.Or(fm))
			assert.Equal(t, v, v.Xor(fm))
			assert.Equal(t, v.Not(), v.Xor(tm))
		}
	})

	t.Run("OperandOrder", func(t *testing.T) {
		for _, v := range masks {
			for _, s := range []bool{false, true} {
				assert.Equal(t, MaskAndBool(v, s), BoolAndMask(s, v), "and %v", s)
				assert.Equal(t, MaskOrBool(v, s), BoolOrMask(s, v), "or %v", s)
				assert.Equal(t, MaskXorBool(v, s), BoolXorMask(s, v), "xor %v", s)
			}
		}
	})

	t.Run("XorSelfInverse", func(t *testing.T) {
		for _, v := range masks {
			assert.Equal(t, fm, MaskXor(v, v))
			assert.Equal(t, v, MaskNot(MaskNot(v)))
		}
	})

	t.Run("AssignEquivalence", func(t *testing.T) {
		for _, v := range masks {
			for _, s := range []bool{false, true} {
				got := v
				got.AndAssign(s)
				assert.Equal(t, MaskAndBool(v, s), got, "AndAssign(%v)", s)

				got = v
				got.OrAssign(s)
				assert.Equal(t, MaskOrBool(v, s), got, "OrAssign(%v)", s)

				got = v
				got.XorAssign(s)
				assert.Equal(t, MaskXorBool(v, s), got, "XorAssign(%v)", s)
			}
			for _, w := range masks[:4] {
				got := v
				got.AndAssignMask(w)
				assert.Equal(t, MaskAnd(v, w), got)

				got = v
				got.OrAssignMask(w)
				assert.Equal(t, MaskOr(v, w), got)

				got = v
				got.XorAssignMask(w)
				assert.Equal(t, MaskXor(v, w), got)
			}
		}
	})

	t.Run("Canonical", func(t *testing.T) {
		for _, a := range masks {
			require.True(t, a.IsCanonical(), "input %v", a)
			for _, b := range masks {
				for _, r := range []Mask[T, A]{
					MaskAnd(a, b), MaskOr(a, b), MaskXor(a, b),
					MaskAndNot(a, b), MaskNot(a),
				} {
					if !r.IsCanonical() {
						t.Fatalf("non-canonical result %v from %v and %v", r.Raw(), a, b)
					}
				}
			}
		}
	})
}

func testSplatConstructor[T MaskLanes, A LaneArray[T]](t *testing.T, splat func(bool) Mask[T, A], lanes int) {
	m := splat(true)
	require.Equal(t, lanes, m.NumLanes())
	assert.Equal(t, Splat[T, A](true), m)
	assert.True(t, m.AllTrue())
	assert.Equal(t, lanes, m.CountTrue())

	wantBits := ^uint64(0)
	if lanes < 64 {
		wantBits = 1<<lanes - 1
	}
	assert.Equal(t, wantBits, m.Bits())

	raw := m.Raw()
	for i := 0; i < len(raw); i++ {
		if raw[i] != ^T(0) {
			t.Errorf("Splat(true): lane %d: got %#x, want all bits set", i, raw[i])
		}
	}

	f := splat(false)
	var zero Mask[T, A]
	assert.Equal(t, zero, f)
	assert.False(t, f.AnyTrue())
	assert.Zero(t, f.Bits())
}
