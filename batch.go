// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Batch collects insertions and applies them in Morton order, so consecutive
// inserts land in neighbouring cells and the cached path is reused.
type Batch[C Coordinate, ID comparable] struct {
	tree    *Tree[C, ID]
	entries []batchEntry[ID]
}

type batchEntry[ID comparable] struct {
	id  ID
	seq int
	pos [MaxDimension]uint64
	err error
}

// BatchError reports an entry that Commit could not insert.
type BatchError[ID comparable] struct {
	ID  ID
	Err error
}

// BatchResult summarizes a Commit. Failed is in the order entries were added.
type BatchResult[ID comparable] struct {
	Inserted int
	Failed   []BatchError[ID]
}

// Batch starts a new batch against the tree. Nothing is stored until Commit.
func (t *Tree[C, ID]) Batch() *Batch[C, ID] {
	return &Batch[C, ID]{tree: t}
}

// Add queues id at pos. A malformed position is reported by Commit.
func (b *Batch[C, ID]) Add(id ID, pos []C) {
	e := batchEntry[ID]{id: id, seq: len(b.entries)}
	p, err := b.tree.ordinals(pos)
	if err != nil {
		e.err = err
	} else {
		copy(e.pos[:], p)
	}
	b.entries = append(b.entries, e)
}

// Len returns the number of queued entries.
func (b *Batch[C, ID]) Len() int {
	return len(b.entries)
}

// Commit sorts the queued entries by Morton order and inserts them one by
// one. A failing entry leaves no trace in the tree and does not stop the
// rest of the batch. The batch is empty afterwards.
func (b *Batch[C, ID]) Commit() BatchResult[ID] {
	t := b.tree
	dim := t.dim

	// Within a batch the first entry added for an id wins.
	seen := make(map[ID]struct{}, len(b.entries))
	for i := range b.entries {
		e := &b.entries[i]
		if e.err != nil {
			continue
		}
		if _, dup := seen[e.id]; dup {
			e.err = fmt.Errorf("%w: %v", ErrDuplicateID, e.id)
			t.stats.rejectedItems++
			continue
		}
		seen[e.id] = struct{}{}
	}

	slices.SortStableFunc(b.entries, func(x, y batchEntry[ID]) int {
		return Compare(x.pos[:dim], y.pos[:dim])
	})

	var res BatchResult[ID]
	for i := range b.entries {
		e := &b.entries[i]
		if e.err == nil {
			_, e.err = t.insertOrdinal(e.id, e.pos[:dim])
		}
		if e.err == nil {
			res.Inserted++
		}
	}

	slices.SortFunc(b.entries, func(x, y batchEntry[ID]) int {
		return x.seq - y.seq
	})
	for _, e := range b.entries {
		if e.err != nil {
			res.Failed = append(res.Failed, BatchError[ID]{ID: e.id, Err: e.err})
		}
	}
	b.entries = b.entries[:0]

	if ce := t.logger.Check(zap.DebugLevel, "batch committed"); ce != nil {
		ce.Write(zap.Int("inserted", res.Inserted), zap.Int("failed", len(res.Failed)))
	}
	return res
}
