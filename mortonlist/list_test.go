// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mortonlist

import (
	"math/rand"
	"testing"

	spatial "github.com/absolutelightning/go-spatial-tree"
	"github.com/stretchr/testify/require"
)

func ordinals(p []int16) []uint64 {
	return []uint64{spatial.ToOrdinal(p[0]), spatial.ToOrdinal(p[1])}
}

func requireSorted(t *testing.T, l *List[int16, int], want map[int][]int16) {
	t.Helper()
	ids := l.IDs()
	require.Len(t, ids, len(want))
	for i := 1; i < len(ids); i++ {
		require.False(t, spatial.Less(ordinals(want[ids[i]]), ordinals(want[ids[i-1]])))
	}
}

func TestList_InsertBatch(t *testing.T) {
	t.Parallel()

	l, err := New[int16, int](2)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	want := make(map[int][]int16)
	id := 0
	for round := 0; round < 3; round++ {
		var batch []Entry[int16, int]
		for i := 0; i < 500; i++ {
			p := []int16{int16(rng.Intn(8000) - 4000), int16(rng.Intn(8000) - 4000)}
			batch = append(batch, Entry[int16, int]{ID: id, Pos: p})
			want[id] = p
			id++
		}
		batch = append(batch, Entry[int16, int]{ID: -1, Pos: []int16{30000, 0}})
		failed := l.InsertBatch(batch)
		require.Len(t, failed, 1)
		require.ErrorIs(t, failed[0].Err, spatial.ErrOutOfBounds)
		requireSorted(t, l, want)
	}

	require.Equal(t, 1500, l.Len())
	for id, p := range want {
		got, ok := l.FindByID(id)
		require.True(t, ok)
		require.Equal(t, p, got)

		found, ok := l.FindByPosition(p)
		require.True(t, ok)
		require.Equal(t, p, want[found])
	}
	_, ok := l.FindByID(-1)
	require.False(t, ok)

	failed := l.InsertBatch([]Entry[int16, int]{{ID: 3, Pos: []int16{0, 0}}, {ID: 9999, Pos: []int16{0}}})
	require.Len(t, failed, 2)
	require.ErrorIs(t, failed[0].Err, spatial.ErrDuplicateID)
	require.ErrorIs(t, failed[1].Err, spatial.ErrDimensionMismatch)
}

func TestList_Insert(t *testing.T) {
	t.Parallel()

	l, err := New[int16, int](2)
	require.NoError(t, err)
	l.Reserve(100)

	want := make(map[int][]int16)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 300; i++ {
		p := []int16{int16(rng.Intn(200) - 100), int16(rng.Intn(200) - 100)}
		require.NoError(t, l.Insert(i, p))
		want[i] = p
	}
	requireSorted(t, l, want)

	_, ok := l.FindByPosition([]int16{1000, 1000})
	require.False(t, ok)
	require.ErrorIs(t, l.Insert(1, []int16{0, 0}), spatial.ErrDuplicateID)
	require.ErrorIs(t, l.Insert(1000, []int16{-20000, 0}), spatial.ErrOutOfBounds)

	_, err = New[int16, int](0)
	require.ErrorIs(t, err, spatial.ErrInvalidDimension)
}

func TestList_TiesKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	l, err := New[uint8, string](2)
	require.NoError(t, err)
	require.NoError(t, l.Insert("first", []uint8{3, 3}))
	require.NoError(t, l.Insert("second", []uint8{3, 3}))
	require.Empty(t, l.InsertBatch([]Entry[uint8, string]{{ID: "third", Pos: []uint8{3, 3}}}))

	require.Equal(t, []string{"first", "second", "third"}, l.IDs())
	id, ok := l.FindByPosition([]uint8{3, 3})
	require.True(t, ok)
	require.Equal(t, "first", id)
}
