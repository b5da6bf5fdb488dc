// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import "math/bits"

// HighestDifferingBit returns the index of the most significant bit in which
// a and b differ on any axis. ok is false when a and b are equal on every
// axis, in which case there is no such bit.
func HighestDifferingBit(a, b []uint64) (bit int, ok bool) {
	var x uint64
	for i := range a {
		x |= a[i] ^ b[i]
	}
	if x == 0 {
		return 0, false
	}
	return bits.Len64(x) - 1, true
}

// Less reports whether a comes before b in Morton (Z-order) order. It never
// builds the interleaved key: at the highest differing bit, axis i
// contributes bit i of a small word and the two words are compared.
func Less(a, b []uint64) bool {
	bit, ok := HighestDifferingBit(a, b)
	if !ok {
		return false
	}
	return childIndex(a, uint(bit)) < childIndex(b, uint(bit))
}

// Compare is the three way form of Less, suitable for slices.SortFunc.
func Compare(a, b []uint64) int {
	bit, ok := HighestDifferingBit(a, b)
	if !ok {
		return 0
	}
	if childIndex(a, uint(bit)) < childIndex(b, uint(bit)) {
		return -1
	}
	return 1
}

// childIndex gathers bit level of every axis of p into a word, axis i at
// bit i. It is both the comparison word of Less and the index of the child
// of a node at level+1 that contains p.
func childIndex(p []uint64, level uint) int {
	var w int
	for i, c := range p {
		w |= int((c>>level)&1) << i
	}
	return w
}
