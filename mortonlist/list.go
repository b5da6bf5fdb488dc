// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package mortonlist is the flat baseline for the spatial tree: a single
// slice kept sorted by Morton order. Bulk loads sort the batch and merge it
// into place in one pass.
package mortonlist

import (
	"fmt"
	"slices"

	spatial "github.com/absolutelightning/go-spatial-tree"
)

type entry[ID comparable] struct {
	pos [spatial.MaxDimension]uint64
	id  ID
}

// Entry is one item handed to InsertBatch.
type Entry[C spatial.Coordinate, ID comparable] struct {
	ID  ID
	Pos []C
}

// Failure reports a batch entry that was not inserted.
type Failure[ID comparable] struct {
	ID  ID
	Err error
}

// List stores items sorted by the Morton order of their positions.
type List[C spatial.Coordinate, ID comparable] struct {
	dim   int
	limit uint64
	items []entry[ID]
	index map[ID][spatial.MaxDimension]uint64
}

func New[C spatial.Coordinate, ID comparable](dim int) (*List[C, ID], error) {
	if dim < 1 || dim > spatial.MaxDimension {
		return nil, fmt.Errorf("%w: %d", spatial.ErrInvalidDimension, dim)
	}
	return &List[C, ID]{
		dim:   dim,
		limit: spatial.RootLimit[C](),
		index: make(map[ID][spatial.MaxDimension]uint64),
	}, nil
}

func (l *List[C, ID]) Len() int {
	return len(l.items)
}

func (l *List[C, ID]) Reserve(n int) {
	l.items = slices.Grow(l.items, n)
}

func (l *List[C, ID]) compare(a, b entry[ID]) int {
	return spatial.Compare(a.pos[:l.dim], b.pos[:l.dim])
}

func (l *List[C, ID]) makeEntry(id ID, pos []C) (entry[ID], error) {
	e := entry[ID]{id: id}
	if len(pos) != l.dim {
		return e, fmt.Errorf("%w: expected %d coordinates, got %d", spatial.ErrDimensionMismatch, l.dim, len(pos))
	}
	for i, c := range pos {
		o := spatial.ToOrdinal(c)
		if o >= l.limit {
			return e, &spatial.OutOfBoundsError{Axis: i, Ordinal: o, Limit: l.limit}
		}
		e.pos[i] = o
	}
	if _, ok := l.index[id]; ok {
		return e, fmt.Errorf("%w: %v", spatial.ErrDuplicateID, id)
	}
	return e, nil
}

// Insert places one item at its sorted position.
func (l *List[C, ID]) Insert(id ID, pos []C) error {
	e, err := l.makeEntry(id, pos)
	if err != nil {
		return err
	}
	i, _ := slices.BinarySearchFunc(l.items, e, l.compare)
	// Step past equal positions so ties keep insertion order.
	for i < len(l.items) && l.compare(l.items[i], e) == 0 {
		i++
	}
	l.items = slices.Insert(l.items, i, e)
	l.index[id] = e.pos
	return nil
}

// InsertBatch sorts the valid entries and merges them with the stored items.
// Invalid entries are skipped and returned; they never abort the batch.
func (l *List[C, ID]) InsertBatch(batch []Entry[C, ID]) []Failure[ID] {
	var failed []Failure[ID]
	add := make([]entry[ID], 0, len(batch))
	for _, b := range batch {
		e, err := l.makeEntry(b.ID, b.Pos)
		if err != nil {
			failed = append(failed, Failure[ID]{ID: b.ID, Err: err})
			continue
		}
		l.index[b.ID] = e.pos
		add = append(add, e)
	}
	slices.SortStableFunc(add, l.compare)
	l.items = l.merge(l.items, add)
	return failed
}

// merge combines two sorted runs, taking from a first on ties.
func (l *List[C, ID]) merge(a, b []entry[ID]) []entry[ID] {
	if len(b) == 0 {
		return a
	}
	out := make([]entry[ID], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if l.compare(b[j], a[i]) < 0 {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// FindByID returns the position id was inserted at.
func (l *List[C, ID]) FindByID(id ID) ([]C, bool) {
	p, ok := l.index[id]
	if !ok {
		return nil, false
	}
	out := make([]C, l.dim)
	for i := range out {
		out[i] = spatial.FromOrdinal[C](p[i])
	}
	return out, true
}

// FindByPosition binary searches for the first item stored at exactly pos.
func (l *List[C, ID]) FindByPosition(pos []C) (ID, bool) {
	var zero ID
	if len(pos) != l.dim {
		return zero, false
	}
	var key entry[ID]
	for i, c := range pos {
		key.pos[i] = spatial.ToOrdinal(c)
	}
	i, found := slices.BinarySearchFunc(l.items, key, l.compare)
	if !found {
		return zero, false
	}
	return l.items[i].id, true
}

// IDs returns every id in Morton order.
func (l *List[C, ID]) IDs() []ID {
	out := make([]ID, len(l.items))
	for i, e := range l.items {
		out[i] = e.id
	}
	return out
}
