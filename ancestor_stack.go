// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

type ancestorEntry struct {
	node NodeHandle
	area Area
}

// ancestorStack remembers the root to leaf path of the last traversal,
// indexed by depth. Entries up to valid are a real path in the tree; it is a
// cache only and can always be reset to the root.
type ancestorStack struct {
	rootLevel int
	entries   []ancestorEntry
	valid     int
}

func newAncestorStack(root Area, rootLevel uint) ancestorStack {
	s := ancestorStack{
		rootLevel: int(rootLevel),
		entries:   make([]ancestorEntry, rootLevel+1),
	}
	s.entries[0] = ancestorEntry{node: rootNode, area: root}
	return s
}

// start returns the deepest cached depth whose area is guaranteed to contain
// p. Node areas at depth d form a grid aligned to 1 << (rootLevel-d), so an
// ancestor contains p exactly when p agrees with its corner on every bit at
// or above that level. All cached ancestors share the deepest corner's high
// bits, which makes one comparison enough.
func (s *ancestorStack) start(p []uint64) int {
	bit, ok := HighestDifferingBit(p, s.entries[s.valid].area.corner())
	if !ok {
		return s.valid
	}
	d := s.rootLevel - bit - 1
	if d > s.valid {
		d = s.valid
	}
	if d < 0 {
		d = 0
	}
	return d
}

func (s *ancestorStack) at(depth int) ancestorEntry {
	return s.entries[depth]
}

// truncate drops every entry below depth.
func (s *ancestorStack) truncate(depth int) {
	s.valid = depth
}

func (s *ancestorStack) push(depth int, n NodeHandle, a Area) {
	s.entries[depth] = ancestorEntry{node: n, area: a}
	s.valid = depth
}

func (s *ancestorStack) reset() {
	s.valid = 0
}
