// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

// rawIterator visits each node of the tree depth first, internal nodes
// included, children in index order. It keeps track of every node's area and
// depth. When prune is set, nodes whose area it rejects are skipped together
// with their subtrees.
type rawIterator struct {
	nodes *nodeArena

	// prune reports whether a subtree can be skipped.
	prune func(Area) bool

	// stack keeps track of nodes in the frontier.
	stack []rawStackEntry

	// pos is the current position of the iterator.
	pos rawStackEntry
}

type rawStackEntry struct {
	node  NodeHandle
	area  Area
	depth int
}

func newRawIterator(nodes *nodeArena, root Area, prune func(Area) bool) *rawIterator {
	return &rawIterator{
		nodes: nodes,
		prune: prune,
		stack: []rawStackEntry{{node: rootNode, area: root}},
	}
}

// Front returns the node that has been iterated to.
func (i *rawIterator) Front() rawStackEntry {
	return i.pos
}

// Next advances the iterator to the next node, returning false when the
// frontier is exhausted.
func (i *rawIterator) Next() bool {
	for len(i.stack) > 0 {
		n := len(i.stack)
		last := i.stack[n-1]
		i.stack = i.stack[:n-1]

		if i.prune != nil && i.prune(last.area) {
			continue
		}

		// Push the children onto the frontier, last first.
		if nd := i.nodes.get(last.node); !nd.isLeaf() {
			for c := i.nodes.fanout - 1; c >= 0; c-- {
				i.stack = append(i.stack, rawStackEntry{
					node:  nd.child(c),
					area:  last.area.Child(c),
					depth: last.depth + 1,
				})
			}
		}

		i.pos = last
		return true
	}
	i.pos = rawStackEntry{}
	return false
}
