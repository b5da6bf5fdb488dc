// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import "fmt"

// ItemStorage selects how the item list of every node is stored. The choice
// is made once, when the tree is built.
type ItemStorage int

const (
	// GrowableItems gives every node its own growable slice.
	GrowableItems ItemStorage = iota
	// FixedItems reserves a fixed block of MaxItemsPerNode slots per node in
	// one shared slab. Nodes that go past capacity, which only happens at the
	// deepest level or right after a split, spill into a side list.
	FixedItems
)

func (s ItemStorage) String() string {
	switch s {
	case GrowableItems:
		return "growable"
	case FixedItems:
		return "fixed"
	}
	return fmt.Sprintf("ItemStorage(%d)", int(s))
}

// itemLists holds the item handles of every node, indexed by node handle.
type itemLists interface {
	// grow makes room for node handles below nodes.
	grow(nodes int)
	len(n NodeHandle) int
	add(n NodeHandle, h ItemHandle)
	// appendTo appends the items of n to buf and returns it.
	appendTo(buf []ItemHandle, n NodeHandle) []ItemHandle
	clear(n NodeHandle)
}

func newItemLists(storage ItemStorage, capacity int) itemLists {
	if storage == FixedItems {
		return &fixedLists{capacity: capacity, spill: make(map[NodeHandle][]ItemHandle)}
	}
	return &growableLists{}
}

type growableLists struct {
	lists [][]ItemHandle
}

func (g *growableLists) grow(nodes int) {
	for len(g.lists) < nodes {
		g.lists = append(g.lists, nil)
	}
}

func (g *growableLists) len(n NodeHandle) int {
	return len(g.lists[n])
}

func (g *growableLists) add(n NodeHandle, h ItemHandle) {
	g.lists[n] = append(g.lists[n], h)
}

func (g *growableLists) appendTo(buf []ItemHandle, n NodeHandle) []ItemHandle {
	return append(buf, g.lists[n]...)
}

func (g *growableLists) clear(n NodeHandle) {
	g.lists[n] = nil
}

type fixedLists struct {
	capacity int
	slab     []ItemHandle
	counts   []uint32
	spill    map[NodeHandle][]ItemHandle
}

func (f *fixedLists) grow(nodes int) {
	if len(f.counts) >= nodes {
		return
	}
	f.counts = append(f.counts, make([]uint32, nodes-len(f.counts))...)
	f.slab = append(f.slab, make([]ItemHandle, nodes*f.capacity-len(f.slab))...)
}

func (f *fixedLists) len(n NodeHandle) int {
	return int(f.counts[n])
}

func (f *fixedLists) add(n NodeHandle, h ItemHandle) {
	c := int(f.counts[n])
	if c < f.capacity {
		f.slab[int(n)*f.capacity+c] = h
	} else {
		f.spill[n] = append(f.spill[n], h)
	}
	f.counts[n]++
}

func (f *fixedLists) appendTo(buf []ItemHandle, n NodeHandle) []ItemHandle {
	c := int(f.counts[n])
	base := int(n) * f.capacity
	buf = append(buf, f.slab[base:base+min(c, f.capacity)]...)
	if c > f.capacity {
		buf = append(buf, f.spill[n]...)
	}
	return buf
}

func (f *fixedLists) clear(n NodeHandle) {
	f.counts[n] = 0
	delete(f.spill, n)
}
