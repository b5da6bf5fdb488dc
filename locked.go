// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Locked serializes access to a Tree so it can be shared between goroutines.
// Operations that move the cached path take the write lock as well.
type Locked[C Coordinate, ID comparable] struct {
	mu   sync.RWMutex
	tree *Tree[C, ID]
}

// NewLocked wraps t. t must not be used directly afterwards.
func NewLocked[C Coordinate, ID comparable](t *Tree[C, ID]) *Locked[C, ID] {
	return &Locked[C, ID]{tree: t}
}

func (l *Locked[C, ID]) Insert(id ID, pos []C) (ItemHandle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Insert(id, pos)
}

// InsertBatch inserts every entry of a batch under one lock.
func (l *Locked[C, ID]) InsertBatch(fn func(b *Batch[C, ID])) BatchResult[ID] {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.tree.Batch()
	fn(b)
	return b.Commit()
}

func (l *Locked[C, ID]) FindByID(id ID) ([]C, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.FindByID(id)
}

func (l *Locked[C, ID]) FindByPosition(pos []C) (ID, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.FindByPosition(pos)
}

// RangeQuery shares the tree's scratch buffer, so it is exclusive too.
func (l *Locked[C, ID]) RangeQuery(min, max []C) ([]ID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.RangeQuery(min, max)
}

func (l *Locked[C, ID]) RangeQueryHandles(min, max []C) (*roaring.Bitmap, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.RangeQueryHandles(min, max)
}

func (l *Locked[C, ID]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

func (l *Locked[C, ID]) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Stats()
}

func (l *Locked[C, ID]) IntegrityCheck() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.IntegrityCheck()
}
