// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// interleave builds the Morton key of a 2-D point, x taking the even bits.
func interleave(x, y uint64, bits int) uint64 {
	var key uint64
	for b := 0; b < bits; b++ {
		key |= ((x >> b) & 1) << (2 * b)
		key |= ((y >> b) & 1) << (2*b + 1)
	}
	return key
}

func TestLess_ZOrderTable(t *testing.T) {
	t.Parallel()

	for ax := uint64(0); ax < 8; ax++ {
		for ay := uint64(0); ay < 8; ay++ {
			for bx := uint64(0); bx < 8; bx++ {
				for by := uint64(0); by < 8; by++ {
					a, b := []uint64{ax, ay}, []uint64{bx, by}
					want := interleave(ax, ay, 3) < interleave(bx, by, 3)
					require.Equal(t, want, Less(a, b), "a=%v b=%v", a, b)
				}
			}
		}
	}

	require.True(t, Less([]uint64{0, 0}, []uint64{1, 0}))
	require.True(t, Less([]uint64{1, 0}, []uint64{0, 1}))
	require.True(t, Less([]uint64{1, 1}, []uint64{2, 0}))
	require.False(t, Less([]uint64{2, 0}, []uint64{1, 1}))
}

func TestHighestDifferingBit(t *testing.T) {
	t.Parallel()

	_, ok := HighestDifferingBit([]uint64{5, 9}, []uint64{5, 9})
	require.False(t, ok)

	bit, ok := HighestDifferingBit([]uint64{0, 0}, []uint64{1, 0})
	require.True(t, ok)
	require.Equal(t, 0, bit)

	bit, ok = HighestDifferingBit([]uint64{4, 1}, []uint64{4, 17})
	require.True(t, ok)
	require.Equal(t, 4, bit)

	bit, ok = HighestDifferingBit([]uint64{1 << 63, 0, 0}, []uint64{0, 0, 0})
	require.True(t, ok)
	require.Equal(t, 63, bit)
}

func TestLess_Properties(t *testing.T) {
	t.Parallel()

	p := func(v [3]uint16) []uint64 {
		return []uint64{uint64(v[0]), uint64(v[1]), uint64(v[2])}
	}

	irreflexive := func(a [3]uint16) bool {
		return !Less(p(a), p(a)) && Compare(p(a), p(a)) == 0
	}
	require.NoError(t, quick.Check(irreflexive, nil))

	antisymmetric := func(a, b [3]uint16) bool {
		if a == b {
			return true
		}
		ab, ba := Less(p(a), p(b)), Less(p(b), p(a))
		return ab != ba && Compare(p(a), p(b)) == -Compare(p(b), p(a))
	}
	require.NoError(t, quick.Check(antisymmetric, nil))

	transitive := func(a, b, c [3]uint16) bool {
		if Less(p(a), p(b)) && Less(p(b), p(c)) {
			return Less(p(a), p(c))
		}
		return true
	}
	require.NoError(t, quick.Check(transitive, &quick.Config{MaxCount: 2000}))
}

func TestChildIndex_MatchesAreaChild(t *testing.T) {
	t.Parallel()

	root := cube(3, []uint64{0, 0, 0}, 16)
	for x := uint64(0); x < 16; x++ {
		for y := uint64(0); y < 16; y++ {
			for z := uint64(0); z < 16; z++ {
				pos := []uint64{x, y, z}
				_, idx, ok := root.ChildContaining(pos)
				require.True(t, ok)
				require.Equal(t, childIndex(pos, 3), idx)
				require.True(t, root.Child(idx).Contains(pos))
			}
		}
	}
}
