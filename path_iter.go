// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

// PathStep is one node on the way from the root to a leaf.
type PathStep struct {
	Node  NodeHandle
	Area  Area
	Depth int
	Leaf  bool
}

// PathIterator walks the nodes whose areas contain a position, from the root
// down to the leaf. It always performs a full descent and leaves the cached
// path untouched.
type PathIterator[C Coordinate, ID comparable] struct {
	tree *Tree[C, ID]
	pos  [MaxDimension]uint64
	next PathStep
	done bool
}

// PathIterator returns an iterator over the path to pos. A position outside
// the root area yields an empty path.
func (t *Tree[C, ID]) PathIterator(pos []C) (*PathIterator[C, ID], error) {
	p, err := t.ordinals(pos)
	if err != nil {
		return nil, err
	}
	i := &PathIterator[C, ID]{tree: t}
	copy(i.pos[:], p)
	if !t.root.Contains(p) {
		i.done = true
		return i, nil
	}
	i.next = PathStep{Node: rootNode, Area: t.root}
	return i, nil
}

// Next returns the next step, or false after the leaf.
func (i *PathIterator[C, ID]) Next() (PathStep, bool) {
	if i.done {
		return PathStep{}, false
	}
	step := i.next
	nd := i.tree.nodes.get(step.Node)
	if nd.isLeaf() {
		step.Leaf = true
		i.done = true
		return step, true
	}
	child, idx, _ := step.Area.ChildContaining(i.pos[:i.tree.dim])
	i.next = PathStep{Node: nd.child(idx), Area: child, Depth: step.Depth + 1}
	return step, true
}
