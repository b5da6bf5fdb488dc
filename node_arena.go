// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

// NodeHandle addresses a node in the node arena. The root is always handle 0.
type NodeHandle uint32

const rootNode NodeHandle = 0

// node is a leaf until it is split; from then on it owns the contiguous block
// of children starting at children and holds no items of its own.
type node struct {
	parent      NodeHandle
	children    NodeHandle
	hasChildren bool
}

func (n *node) isLeaf() bool {
	return !n.hasChildren
}

func (n *node) child(index int) NodeHandle {
	return n.children + NodeHandle(index)
}

type nodeArena struct {
	fanout int
	nodes  []node
}

func newNodeArena(dim int) nodeArena {
	a := nodeArena{fanout: 1 << dim}
	a.nodes = append(a.nodes, node{parent: rootNode})
	return a
}

func (a *nodeArena) len() int {
	return len(a.nodes)
}

func (a *nodeArena) get(h NodeHandle) *node {
	return &a.nodes[h]
}

// allocBlock appends fanout leaves with the given parent and returns the
// handle of the first one.
func (a *nodeArena) allocBlock(parent NodeHandle) NodeHandle {
	first := NodeHandle(len(a.nodes))
	for i := 0; i < a.fanout; i++ {
		a.nodes = append(a.nodes, node{parent: parent})
	}
	return first
}

func (a *nodeArena) reserve(n int) {
	if cap(a.nodes)-len(a.nodes) < n {
		nodes := make([]node, len(a.nodes), len(a.nodes)+n)
		copy(nodes, a.nodes)
		a.nodes = nodes
	}
}
