// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"github.com/RoaringBitmap/roaring/v2"
	"go.uber.org/zap"
)

// RangeQuery returns the ids of every item inside the half-open box
// [min, max), in handle order. Bounds outside the root area are clamped.
func (t *Tree[C, ID]) RangeQuery(min, max []C) ([]ID, error) {
	hits, err := t.RangeQueryHandles(min, max)
	if err != nil {
		return nil, err
	}
	ids := make([]ID, 0, hits.GetCardinality())
	it := hits.Iterator()
	for it.HasNext() {
		ids = append(ids, t.items.id(ItemHandle(it.Next())))
	}
	return ids, nil
}

// RangeQueryHandles is RangeQuery returning the set of item handles.
func (t *Tree[C, ID]) RangeQueryHandles(min, max []C) (*roaring.Bitmap, error) {
	if len(min) != t.dim {
		return nil, dimensionMismatch(t.dim, len(min))
	}
	if len(max) != t.dim {
		return nil, dimensionMismatch(t.dim, len(max))
	}
	var lo, hi [MaxDimension]uint64
	for i := 0; i < t.dim; i++ {
		lo[i] = t.domain.clamp(min[i])
		hi[i] = t.domain.clamp(max[i])
	}
	return t.query(NewArea(lo[:t.dim], hi[:t.dim])), nil
}

// query collects the handles of every item inside q. Subtrees whose area
// does not overlap q are pruned; items of overlapping leaves are tested one
// by one since the leaf may reach past q.
func (t *Tree[C, ID]) query(q Area) *roaring.Bitmap {
	out := roaring.New()
	if q.Empty() {
		return out
	}
	it := newRawIterator(&t.nodes, t.root, func(a Area) bool {
		return !a.Overlaps(q)
	})
	for it.Next() {
		e := it.Front()
		if !t.nodes.get(e.node).isLeaf() {
			continue
		}
		t.scratch = t.lists.appendTo(t.scratch[:0], e.node)
		for _, h := range t.scratch {
			if q.Contains(t.items.position(h)) {
				out.Add(uint32(h))
			}
		}
	}
	return out
}

// IntegrityCheck walks the whole tree and verifies its shape: every node is
// reachable exactly once, internal nodes hold no items, every item sits in a
// leaf whose area contains it, and the leaf item counts add up to the number
// of stored items. Failures wrap ErrIntegrity.
func (t *Tree[C, ID]) IntegrityCheck() error {
	err := t.integrityCheck()
	if err != nil {
		t.logger.Error("integrity check failed", zap.Error(err))
	}
	return err
}

func (t *Tree[C, ID]) integrityCheck() error {
	if len(t.index) != t.items.len() {
		return integrityError("id index holds %d entries, item arena %d", len(t.index), t.items.len())
	}

	seen := make([]bool, t.nodes.len())
	placed := roaring.New()
	total := 0
	stack := []rawStackEntry{{node: rootNode, area: t.root}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if int(e.node) >= len(seen) {
			return integrityError("node %d beyond arena of %d", e.node, len(seen))
		}
		if seen[e.node] {
			return integrityError("node %d reachable twice", e.node)
		}
		seen[e.node] = true

		if side := uint64(1) << (t.domain.rootLevel - uint(e.depth)); e.area.Side() != side {
			return integrityError("node %d at depth %d has side %d, want %d", e.node, e.depth, e.area.Side(), side)
		}

		nd := t.nodes.get(e.node)
		count := t.lists.len(e.node)
		if !nd.isLeaf() {
			if count != 0 {
				return integrityError("internal node %d holds %d items", e.node, count)
			}
			for i := 0; i < t.nodes.fanout; i++ {
				c := nd.child(i)
				if int(c) >= len(seen) {
					return integrityError("node %d child %d beyond arena", e.node, c)
				}
				if t.nodes.get(c).parent != e.node {
					return integrityError("node %d has parent %d, want %d", c, t.nodes.get(c).parent, e.node)
				}
				stack = append(stack, rawStackEntry{node: c, area: e.area.Child(i), depth: e.depth + 1})
			}
			continue
		}

		// Each split may push one extra item into a child before that child
		// splits in turn, so a leaf can exceed capacity by its depth.
		if e.depth < int(t.domain.rootLevel) && count > t.maxItems+e.depth {
			return integrityError("leaf %d at depth %d holds %d items, capacity %d", e.node, e.depth, count, t.maxItems)
		}
		t.scratch = t.lists.appendTo(t.scratch[:0], e.node)
		for _, h := range t.scratch {
			if int(h) >= t.items.len() {
				return integrityError("leaf %d references unknown item %d", e.node, h)
			}
			if !placed.CheckedAdd(uint32(h)) {
				return integrityError("item %d stored in more than one leaf", h)
			}
			if !e.area.Contains(t.items.position(h)) {
				return integrityError("item %d outside leaf %d area %s", h, e.node, e.area)
			}
		}
		total += count
	}

	for h, ok := range seen {
		if !ok {
			return integrityError("node %d unreachable", h)
		}
	}
	if total != t.items.len() {
		return integrityError("leaves hold %d items, item arena %d", total, t.items.len())
	}
	return nil
}
