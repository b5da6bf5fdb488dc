// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomain_Signed(t *testing.T) {
	t.Parallel()

	d := newDomain[int8]()
	require.True(t, d.signed)
	require.Equal(t, uint(8), d.bits)
	require.Equal(t, uint64(64), d.bias)
	require.Equal(t, uint64(128), d.limit())

	prev := int64(-1)
	for v := math.MinInt8; v <= math.MaxInt8; v++ {
		o := d.ordinal(int8(v))
		inside := v >= -64 && v < 64
		require.Equal(t, inside, o < d.limit(), "value %d ordinal %d", v, o)
		if inside {
			require.Greater(t, int64(o), prev)
			prev = int64(o)
			require.Equal(t, int8(v), d.coordinate(o))
		}
	}

	require.Equal(t, int8(-64), MinCoordinate[int8]())
	require.Equal(t, int8(63), MaxCoordinate[int8]())
}

func TestDomain_Unsigned(t *testing.T) {
	t.Parallel()

	d := newDomain[uint16]()
	require.False(t, d.signed)
	require.Zero(t, d.bias)
	require.Equal(t, uint64(1<<15), d.limit())
	require.Equal(t, uint64(1234), d.ordinal(1234))
	require.Equal(t, uint16(1234), d.coordinate(1234))
	require.Equal(t, uint16(0), MinCoordinate[uint16]())
	require.Equal(t, uint16(1<<15-1), MaxCoordinate[uint16]())
}

func TestDomain_Wide(t *testing.T) {
	t.Parallel()

	d := newDomain[int64]()
	require.Equal(t, uint64(1)<<62, d.bias)
	require.Equal(t, uint64(1)<<63, d.limit())
	require.Equal(t, uint64(0), d.ordinal(-(1 << 62)))
	require.GreaterOrEqual(t, d.ordinal(math.MinInt64), d.limit())
	require.GreaterOrEqual(t, d.ordinal(math.MaxInt64), d.limit())
	require.Equal(t, int64(-5), d.coordinate(d.ordinal(-5)))

	u := newDomain[uint64]()
	require.Equal(t, ^uint64(0), u.mask)
	require.Equal(t, uint(63), u.rootLevel)
}

func TestDomain_Clamp(t *testing.T) {
	t.Parallel()

	d := newDomain[int8]()
	require.Equal(t, uint64(0), d.clamp(-100))
	require.Equal(t, uint64(0), d.clamp(-64))
	require.Equal(t, uint64(64), d.clamp(0))
	require.Equal(t, uint64(127), d.clamp(63))
	require.Equal(t, uint64(128), d.clamp(64))
	require.Equal(t, uint64(128), d.clamp(127))

	u := newDomain[uint8]()
	require.Equal(t, uint64(5), u.clamp(5))
	require.Equal(t, uint64(128), u.clamp(200))

	w := newDomain[int64]()
	require.Equal(t, uint64(0), w.clamp(math.MinInt64))
	require.Equal(t, w.limit(), w.clamp(math.MaxInt64))
}
