// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"fmt"

	"go.uber.org/zap"
)

// Insert stores id at pos and returns the new item's handle. A position
// outside the root area yields an error wrapping ErrOutOfBounds and an id
// that is already present yields ErrDuplicateID; in both cases the tree is
// left untouched.
func (t *Tree[C, ID]) Insert(id ID, pos []C) (ItemHandle, error) {
	p, err := t.ordinals(pos)
	if err != nil {
		return 0, err
	}
	return t.insertOrdinal(id, p)
}

func (t *Tree[C, ID]) insertOrdinal(id ID, p []uint64) (ItemHandle, error) {
	if !t.root.Contains(p) {
		t.stats.rejectedItems++
		return 0, t.outOfBounds(p)
	}
	if _, ok := t.index[id]; ok {
		t.stats.rejectedItems++
		return 0, fmt.Errorf("%w: %v", ErrDuplicateID, id)
	}

	h := t.items.append(p, id)
	t.index[id] = h

	n, area, depth := t.findNodeCached(p)
	if t.lists.len(n) < t.maxItems || depth >= int(t.domain.rootLevel) {
		t.lists.add(n, h)
		return h, nil
	}

	// One level per overflow: the child that receives h may now be over
	// capacity and is split on its own next insertion.
	t.split(n, area, depth)
	child, idx, ok := area.ChildContaining(p)
	if !ok {
		panic(fmt.Sprintf("spatial: position %v escaped node %d area %s", p, n, area))
	}
	c := t.nodes.get(n).child(idx)
	t.lists.add(c, h)
	t.stack.push(depth+1, c, child)
	if depth+1 > t.stats.maxDepth {
		t.stats.maxDepth = depth + 1
	}
	return h, nil
}

// split turns leaf n into an internal node and redistributes its items over
// a freshly allocated block of children.
func (t *Tree[C, ID]) split(n NodeHandle, area Area, depth int) {
	first := t.nodes.allocBlock(n)
	t.lists.grow(t.nodes.len())

	nd := t.nodes.get(n)
	nd.children = first
	nd.hasChildren = true

	t.scratch = t.lists.appendTo(t.scratch[:0], n)
	t.lists.clear(n)
	for _, h := range t.scratch {
		_, idx, ok := area.ChildContaining(t.items.position(h))
		if !ok {
			panic(fmt.Sprintf("spatial: item %d outside node %d area %s", h, n, area))
		}
		t.lists.add(first+NodeHandle(idx), h)
	}
	t.stats.splits++

	if ce := t.logger.Check(zap.DebugLevel, "split leaf"); ce != nil {
		ce.Write(
			zap.Uint32("node", uint32(n)),
			zap.Uint32("children", uint32(first)),
			zap.Int("depth", depth),
			zap.Int("items", len(t.scratch)),
		)
	}
}

// findNode descends from the root to the leaf containing p.
func (t *Tree[C, ID]) findNode(p []uint64) (NodeHandle, Area, int) {
	n, area, depth := rootNode, t.root, 0
	for {
		nd := t.nodes.get(n)
		if nd.isLeaf() {
			return n, area, depth
		}
		child, idx, ok := area.ChildContaining(p)
		if !ok {
			panic(fmt.Sprintf("spatial: position %v outside node %d area %s", p, n, area))
		}
		n, area, depth = nd.child(idx), child, depth+1
	}
}

// findNodeCached finds the same leaf as findNode, but resumes the descent
// from the deepest node of the previous path that still contains p.
func (t *Tree[C, ID]) findNodeCached(p []uint64) (NodeHandle, Area, int) {
	depth := t.stack.start(p)
	e := t.stack.at(depth)
	n, area := e.node, e.area
	t.stack.truncate(depth)

	t.stats.descents++
	t.stats.reusedLevels += uint64(depth)
	for {
		nd := t.nodes.get(n)
		if nd.isLeaf() {
			if depth > t.stats.maxDepth {
				t.stats.maxDepth = depth
			}
			return n, area, depth
		}
		child, idx, ok := area.ChildContaining(p)
		if !ok {
			panic(fmt.Sprintf("spatial: position %v outside cached node %d area %s", p, n, area))
		}
		n, area, depth = nd.child(idx), child, depth+1
		t.stack.push(depth, n, area)
		t.stats.descentSteps++
	}
}
