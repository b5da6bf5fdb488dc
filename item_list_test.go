// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemLists(t *testing.T) {
	t.Parallel()

	for _, storage := range []ItemStorage{GrowableItems, FixedItems} {
		l := newItemLists(storage, 3)
		l.grow(4)
		for h := ItemHandle(0); h < 5; h++ {
			l.add(2, h)
		}
		l.add(3, 9)

		require.Equal(t, 5, l.len(2), storage.String())
		require.Equal(t, 1, l.len(3))
		require.Zero(t, l.len(0))
		require.Equal(t, []ItemHandle{0, 1, 2, 3, 4}, l.appendTo(nil, 2))
		require.Equal(t, []ItemHandle{7, 9}, l.appendTo([]ItemHandle{7}, 3))

		l.clear(2)
		require.Zero(t, l.len(2))
		require.Empty(t, l.appendTo(nil, 2))

		l.grow(8)
		l.add(7, 1)
		require.Equal(t, []ItemHandle{1}, l.appendTo(nil, 7))
		require.Equal(t, 1, l.len(3))
	}

	require.Equal(t, "ItemStorage(7)", ItemStorage(7).String())
}
