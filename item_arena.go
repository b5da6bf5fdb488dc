// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

// ItemHandle addresses an item in the item arena. Handles are assigned in
// insertion order and never reused.
type ItemHandle uint32

// itemArena stores item positions in one flat slab of dim ordinals per item
// and the external ids in a parallel slice.
type itemArena[ID comparable] struct {
	dim    int
	coords []uint64
	ids    []ID
}

func newItemArena[ID comparable](dim int) itemArena[ID] {
	return itemArena[ID]{dim: dim}
}

func (a *itemArena[ID]) len() int {
	return len(a.ids)
}

func (a *itemArena[ID]) append(pos []uint64, id ID) ItemHandle {
	h := ItemHandle(len(a.ids))
	a.coords = append(a.coords, pos[:a.dim]...)
	a.ids = append(a.ids, id)
	return h
}

// position returns a view into the slab. It must not be retained across
// appends.
func (a *itemArena[ID]) position(h ItemHandle) []uint64 {
	off := int(h) * a.dim
	return a.coords[off : off+a.dim : off+a.dim]
}

func (a *itemArena[ID]) id(h ItemHandle) ID {
	return a.ids[h]
}

func (a *itemArena[ID]) reserve(n int) {
	if free := cap(a.ids) - len(a.ids); free < n {
		ids := make([]ID, len(a.ids), len(a.ids)+n)
		copy(ids, a.ids)
		a.ids = ids
		coords := make([]uint64, len(a.coords), len(a.coords)+n*a.dim)
		copy(coords, a.coords)
		a.coords = coords
	}
}
