// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Coordinate is the set of integer types a tree can be keyed on. Signed and
// unsigned inputs are both mapped into an unsigned ordinal domain of the same
// width before they are stored or compared.
type Coordinate interface {
	constraints.Integer
}

// domain describes the ordinal space of a coordinate type.
type domain[C Coordinate] struct {
	bits   uint
	signed bool
	bias   uint64
	mask   uint64

	// rootLevel is the level of the root area: its side length is
	// 1 << rootLevel. The level spanning the whole representable range is
	// never used.
	rootLevel uint
}

func newDomain[C Coordinate]() domain[C] {
	var zero C
	bits := uint(unsafe.Sizeof(zero)) * 8
	minusOne := zero - 1
	d := domain[C]{
		bits:      bits,
		signed:    minusOne < zero,
		mask:      ^uint64(0) >> (64 - bits),
		rootLevel: bits - 1,
	}
	if d.signed {
		d.bias = uint64(1) << (bits - 2)
	}
	return d
}

// ordinal maps v into the unsigned ordinal domain, preserving order for every
// value inside the root area.
func (d domain[C]) ordinal(v C) uint64 {
	return (uint64(v) + d.bias) & d.mask
}

// coordinate is the inverse of ordinal.
func (d domain[C]) coordinate(o uint64) C {
	return C(o - d.bias)
}

// limit is the exclusive upper bound of the root area on every axis.
func (d domain[C]) limit() uint64 {
	return uint64(1) << d.rootLevel
}

// clamp maps a query bound into [0, limit] without wrapping, so bounds that
// lie outside the root area still order correctly.
func (d domain[C]) clamp(v C) uint64 {
	lim := d.limit()
	if d.signed {
		s := int64(v)
		if s < -int64(d.bias) {
			return 0
		}
		if s >= int64(lim-d.bias) {
			return lim
		}
		return uint64(s) + d.bias
	}
	u := uint64(v)
	if u > lim {
		return lim
	}
	return u
}

// MinCoordinate returns the smallest raw coordinate inside the root area.
func MinCoordinate[C Coordinate]() C {
	d := newDomain[C]()
	return d.coordinate(0)
}

// MaxCoordinate returns the largest raw coordinate inside the root area.
func MaxCoordinate[C Coordinate]() C {
	d := newDomain[C]()
	return d.coordinate(d.limit() - 1)
}

// ToOrdinal maps a raw coordinate into the ordinal domain used by Less and
// Compare.
func ToOrdinal[C Coordinate](v C) uint64 {
	return newDomain[C]().ordinal(v)
}

// FromOrdinal is the inverse of ToOrdinal.
func FromOrdinal[C Coordinate](o uint64) C {
	return newDomain[C]().coordinate(o)
}

// RootLimit is the exclusive upper bound of the root area, in the ordinal
// domain of C, on every axis.
func RootLimit[C Coordinate]() uint64 {
	return newDomain[C]().limit()
}
