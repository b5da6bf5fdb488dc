// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArea_ContainsHalfOpen(t *testing.T) {
	t.Parallel()

	a := NewArea([]uint64{4, 8}, []uint64{8, 12})
	require.True(t, a.Contains([]uint64{4, 8}))
	require.True(t, a.Contains([]uint64{7, 11}))
	require.False(t, a.Contains([]uint64{8, 8}))
	require.False(t, a.Contains([]uint64{4, 12}))
	require.False(t, a.Contains([]uint64{3, 9}))
}

func TestArea_Overlaps(t *testing.T) {
	t.Parallel()

	a := NewArea([]uint64{0, 0}, []uint64{4, 4})
	cases := []struct {
		name  string
		other Area
		want  bool
	}{
		{"same", a, true},
		{"inside", NewArea([]uint64{1, 1}, []uint64{2, 2}), true},
		{"enclosing", NewArea([]uint64{0, 0}, []uint64{10, 10}), true},
		{"corner", NewArea([]uint64{3, 3}, []uint64{5, 5}), true},
		{"touching edge", NewArea([]uint64{4, 0}, []uint64{8, 4}), false},
		{"touching corner", NewArea([]uint64{4, 4}, []uint64{8, 8}), false},
		{"disjoint", NewArea([]uint64{6, 6}, []uint64{8, 8}), false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, a.Overlaps(tc.other), tc.name)
		require.Equal(t, tc.want, tc.other.Overlaps(a), tc.name)
	}
}

func TestArea_ChildrenPartition(t *testing.T) {
	t.Parallel()

	root := cube(2, []uint64{8, 16}, 8)
	require.Equal(t, uint64(8), root.Side())

	require.Equal(t, []uint64{8, 16}, root.Child(0).Min())
	require.Equal(t, []uint64{12, 20}, root.Child(0).Max())
	require.Equal(t, []uint64{12, 16}, root.Child(1).Min())
	require.Equal(t, []uint64{8, 20}, root.Child(2).Min())
	require.Equal(t, []uint64{12, 20}, root.Child(3).Min())
	require.Equal(t, []uint64{16, 24}, root.Child(3).Max())

	for x := uint64(8); x < 16; x++ {
		for y := uint64(16); y < 24; y++ {
			p := []uint64{x, y}
			holders := 0
			for i := 0; i < 4; i++ {
				if root.Child(i).Contains(p) {
					holders++
					child, idx, ok := root.ChildContaining(p)
					require.True(t, ok)
					require.Equal(t, i, idx)
					require.Equal(t, root.Child(i), child)
				}
			}
			require.Equal(t, 1, holders)
		}
	}

	_, _, ok := root.ChildContaining([]uint64{16, 16})
	require.False(t, ok)
}

func TestArea_Empty(t *testing.T) {
	t.Parallel()

	require.False(t, NewArea([]uint64{0}, []uint64{1}).Empty())
	require.True(t, NewArea([]uint64{3, 0}, []uint64{3, 5}).Empty())
	require.Panics(t, func() { NewArea([]uint64{0}, []uint64{1, 2}) })
}
