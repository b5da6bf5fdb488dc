// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"fmt"

	"go.uber.org/zap"
)

// Tree is a hierarchical point index over Dimension integer axes: a quadtree
// for two axes, an octree for three, and so on. Nodes and items live in
// arenas addressed by handle, and the path of the previous traversal is
// cached so that spatially close operations skip most of the descent.
//
// A Tree is not safe for concurrent use; see Locked.
type Tree[C Coordinate, ID comparable] struct {
	dim      int
	maxItems int
	storage  ItemStorage
	domain   domain[C]
	root     Area

	nodes nodeArena
	items itemArena[ID]
	lists itemLists
	index map[ID]ItemHandle
	stack ancestorStack

	logger *zap.Logger
	stats  counters

	pos     [MaxDimension]uint64
	scratch []ItemHandle
}

type counters struct {
	splits        uint64
	maxDepth      int
	descents      uint64
	descentSteps  uint64
	reusedLevels  uint64
	rejectedItems uint64
}

// New returns an empty tree over dim axes. The root area spans half of the
// coordinate type's range on every axis, see MinCoordinate and MaxCoordinate.
func New[C Coordinate, ID comparable](dim int, opts ...Option) (*Tree[C, ID], error) {
	if dim < 1 || dim > MaxDimension {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDimension, dim, MaxDimension)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxItems < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, o.maxItems)
	}

	d := newDomain[C]()
	var corner [MaxDimension]uint64
	root := cube(dim, corner[:dim], d.limit())

	t := &Tree[C, ID]{
		dim:      dim,
		maxItems: o.maxItems,
		storage:  o.storage,
		domain:   d,
		root:     root,
		nodes:    newNodeArena(dim),
		items:    newItemArena[ID](dim),
		lists:    newItemLists(o.storage, o.maxItems),
		index:    make(map[ID]ItemHandle),
		stack:    newAncestorStack(root, d.rootLevel),
		logger:   o.logger,
	}
	t.lists.grow(t.nodes.len())
	if o.expected > 0 {
		t.Reserve(o.expected)
	}
	t.logger.Debug("tree created",
		zap.Int("dimension", dim),
		zap.Int("max_items_per_node", o.maxItems),
		zap.Stringer("item_storage", o.storage),
		zap.Uint("root_level", d.rootLevel),
	)
	return t, nil
}

// Dimension returns the number of axes.
func (t *Tree[C, ID]) Dimension() int { return t.dim }

// MaxItemsPerNode returns the configured leaf capacity.
func (t *Tree[C, ID]) MaxItemsPerNode() int { return t.maxItems }

// Len returns the number of items stored.
func (t *Tree[C, ID]) Len() int { return t.items.len() }

// NodeCount returns the number of nodes, internal and leaf.
func (t *Tree[C, ID]) NodeCount() int { return t.nodes.len() }

// RootArea returns the area covered by the root node, in the ordinal domain.
func (t *Tree[C, ID]) RootArea() Area { return t.root }

// Reserve grows the arenas so that n more items can be inserted without
// reallocating item storage.
func (t *Tree[C, ID]) Reserve(n int) {
	if n <= 0 {
		return
	}
	t.items.reserve(n)
	if len(t.index) == 0 {
		t.index = make(map[ID]ItemHandle, n)
	}
	// Every split of a full leaf adds one block per maxItems items.
	t.nodes.reserve((n/t.maxItems + 1) * t.nodes.fanout)
}

// ordinals validates the length of pos and maps it into the ordinal domain.
// The returned slice aliases t.pos.
func (t *Tree[C, ID]) ordinals(pos []C) ([]uint64, error) {
	if len(pos) != t.dim {
		return nil, dimensionMismatch(t.dim, len(pos))
	}
	p := t.pos[:t.dim]
	for i, c := range pos {
		p[i] = t.domain.ordinal(c)
	}
	return p, nil
}

func (t *Tree[C, ID]) coordinates(p []uint64) []C {
	out := make([]C, len(p))
	for i, o := range p {
		out[i] = t.domain.coordinate(o)
	}
	return out
}

func (t *Tree[C, ID]) outOfBounds(p []uint64) error {
	lim := t.domain.limit()
	for i, o := range p {
		if o >= lim {
			return &OutOfBoundsError{Axis: i, Ordinal: o, Limit: lim}
		}
	}
	return &OutOfBoundsError{Axis: -1, Limit: lim}
}

// FindByID returns the position an id was inserted at.
func (t *Tree[C, ID]) FindByID(id ID) ([]C, bool) {
	h, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return t.coordinates(t.items.position(h)), true
}

// Handle returns the item handle assigned to id.
func (t *Tree[C, ID]) Handle(id ID) (ItemHandle, bool) {
	h, ok := t.index[id]
	return h, ok
}

// ID returns the external id of an item handle.
func (t *Tree[C, ID]) ID(h ItemHandle) ID {
	return t.items.id(h)
}

// FindByPosition returns the id of the first item inserted at exactly pos.
func (t *Tree[C, ID]) FindByPosition(pos []C) (ID, bool) {
	var zero ID
	p, err := t.ordinals(pos)
	if err != nil || !t.root.Contains(p) {
		return zero, false
	}
	n, _, _ := t.findNodeCached(p)
	t.scratch = t.lists.appendTo(t.scratch[:0], n)
	for _, h := range t.scratch {
		if equalPositions(t.items.position(h), p) {
			return t.items.id(h), true
		}
	}
	return zero, false
}

func equalPositions(a, b []uint64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Stats is a snapshot of the tree's shape and traversal counters.
type Stats struct {
	Items    int
	Nodes    int
	Leaves   int
	Splits   uint64
	MaxDepth int

	// Descents counts cached traversals; DescentSteps the child steps they
	// took and ReusedLevels the levels they skipped thanks to the cache.
	Descents     uint64
	DescentSteps uint64
	ReusedLevels uint64

	// Rejected counts insertions refused as out of bounds or duplicate.
	Rejected uint64
}

func (t *Tree[C, ID]) Stats() Stats {
	internal := (t.nodes.len() - 1) / t.nodes.fanout
	return Stats{
		Items:        t.items.len(),
		Nodes:        t.nodes.len(),
		Leaves:       t.nodes.len() - internal,
		Splits:       t.stats.splits,
		MaxDepth:     t.stats.maxDepth,
		Descents:     t.stats.descents,
		DescentSteps: t.stats.descentSteps,
		ReusedLevels: t.stats.reusedLevels,
		Rejected:     t.stats.rejectedItems,
	}
}
