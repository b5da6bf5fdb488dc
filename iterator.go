// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

// Iterator visits every item of a tree. Leaves are visited depth first in
// child index order, which is the Morton order of their cells; items of one
// leaf come in the order they were placed there.
//
// The tree must not be modified while an iterator is in use.
type Iterator[C Coordinate, ID comparable] struct {
	tree  *Tree[C, ID]
	nodes *rawIterator
	leaf  []ItemHandle
	pos   int
}

// Iterator returns an iterator positioned before the first item.
func (t *Tree[C, ID]) Iterator() *Iterator[C, ID] {
	return &Iterator[C, ID]{
		tree:  t,
		nodes: newRawIterator(&t.nodes, t.root, nil),
	}
}

// Next returns the next item, or false once every item has been visited.
func (i *Iterator[C, ID]) Next() (ID, []C, bool) {
	var zero ID
	for i.pos >= len(i.leaf) {
		if !i.nodes.Next() {
			return zero, nil, false
		}
		n := i.nodes.Front().node
		if !i.tree.nodes.get(n).isLeaf() {
			continue
		}
		i.leaf = i.tree.lists.appendTo(i.leaf[:0], n)
		i.pos = 0
	}
	h := i.leaf[i.pos]
	i.pos++
	return i.tree.items.id(h), i.tree.coordinates(i.tree.items.position(h)), true
}

// WalkFn is called for every item by Walk. Returning true stops the walk.
type WalkFn[C Coordinate, ID comparable] func(id ID, pos []C) bool

// Walk calls fn for every item in iterator order.
func (t *Tree[C, ID]) Walk(fn WalkFn[C, ID]) {
	it := t.Iterator()
	for {
		id, pos, ok := it.Next()
		if !ok || fn(id, pos) {
			return
		}
	}
}
