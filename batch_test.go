// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBatch_Commit(t *testing.T) {
	t.Parallel()

	tree := newTestTree[int16, int](t, 2, WithMaxItemsPerNode(4))
	rng := rand.New(rand.NewSource(21))
	positions := randomPositions(rng, 2000, 2, -5000, 5000)

	b := tree.Batch()
	for i, p := range positions {
		b.Add(i, p)
	}
	b.Add(5000, []int16{20000, 0})
	b.Add(5001, []int16{1, 2, 3})
	b.Add(7, []int16{0, 0})
	require.Equal(t, 2003, b.Len())

	res := b.Commit()
	require.Equal(t, 2000, res.Inserted)
	require.Len(t, res.Failed, 3)
	require.Equal(t, 5000, res.Failed[0].ID)
	require.ErrorIs(t, res.Failed[0].Err, ErrOutOfBounds)
	require.Equal(t, 5001, res.Failed[1].ID)
	require.ErrorIs(t, res.Failed[1].Err, ErrDimensionMismatch)
	require.Equal(t, 7, res.Failed[2].ID)
	require.ErrorIs(t, res.Failed[2].Err, ErrDuplicateID)
	require.Zero(t, b.Len())

	require.Equal(t, 2000, tree.Len())
	for i, p := range positions {
		got, ok := tree.FindByID(i)
		require.True(t, ok)
		require.Equal(t, p, got)
	}
	_, ok := tree.FindByID(5000)
	require.False(t, ok)
	require.NoError(t, tree.IntegrityCheck())

	st := tree.Stats()
	require.Less(t, st.DescentSteps, st.ReusedLevels)
}

func TestBatch_Empty(t *testing.T) {
	t.Parallel()

	tree := newTestTree[int16, int](t, 2)
	res := tree.Batch().Commit()
	require.Zero(t, res.Inserted)
	require.Empty(t, res.Failed)
	require.Zero(t, tree.Len())
}
