// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import (
	"fmt"
	"strings"
)

// MaxDimension is the largest number of axes a tree supports. A split
// allocates 1 << dimension children, so the bound keeps child blocks sane.
const MaxDimension = 8

// Area is an axis-aligned half-open box in the ordinal domain: min is
// inclusive and max is exclusive on every axis. Node areas are always
// hypercubes with a power of two side; query areas may be any box.
type Area struct {
	dim int
	min [MaxDimension]uint64
	max [MaxDimension]uint64
}

// NewArea builds an area from ordinal corners. It panics if the corners have
// different lengths or more than MaxDimension axes.
func NewArea(min, max []uint64) Area {
	if len(min) != len(max) || len(min) == 0 || len(min) > MaxDimension {
		panic(fmt.Sprintf("spatial: malformed area corners %d/%d", len(min), len(max)))
	}
	a := Area{dim: len(min)}
	copy(a.min[:], min)
	copy(a.max[:], max)
	return a
}

// cube returns the hypercube with the given corner and side.
func cube(dim int, corner []uint64, side uint64) Area {
	a := Area{dim: dim}
	for i := 0; i < dim; i++ {
		a.min[i] = corner[i]
		a.max[i] = corner[i] + side
	}
	return a
}

func (a Area) Dimension() int { return a.dim }

// Min returns the inclusive corner.
func (a Area) Min() []uint64 {
	out := make([]uint64, a.dim)
	copy(out, a.min[:a.dim])
	return out
}

// Max returns the exclusive corner.
func (a Area) Max() []uint64 {
	out := make([]uint64, a.dim)
	copy(out, a.max[:a.dim])
	return out
}

// Side is the extent along the first axis.
func (a Area) Side() uint64 {
	return a.max[0] - a.min[0]
}

func (a Area) corner() []uint64 {
	return a.min[:a.dim]
}

// Contains reports whether p lies inside the area. Points on the max
// boundary belong to the neighbouring area.
func (a Area) Contains(p []uint64) bool {
	for i := 0; i < a.dim; i++ {
		if p[i] < a.min[i] || p[i] >= a.max[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether the two areas share at least one point. Areas
// that only touch at a boundary do not overlap.
func (a Area) Overlaps(o Area) bool {
	for i := 0; i < a.dim; i++ {
		if o.max[i] <= a.min[i] || o.min[i] >= a.max[i] {
			return false
		}
	}
	return true
}

// Empty reports whether the area holds no point.
func (a Area) Empty() bool {
	for i := 0; i < a.dim; i++ {
		if a.max[i] <= a.min[i] {
			return true
		}
	}
	return false
}

// Child returns child index of a hypercube area: every axis is halved and
// axis i takes the upper half iff bit i of index is set.
func (a Area) Child(index int) Area {
	half := a.Side() / 2
	c := a
	for i := 0; i < a.dim; i++ {
		c.max[i] -= half
		if (index>>i)&1 == 1 {
			c.min[i] += half
			c.max[i] += half
		}
	}
	return c
}

// ChildContaining returns the child of a hypercube area that holds p,
// together with its index. ok is false when p is outside the area.
func (a Area) ChildContaining(p []uint64) (child Area, index int, ok bool) {
	if !a.Contains(p) {
		return Area{}, 0, false
	}
	half := a.Side() / 2
	c := a
	for i := 0; i < a.dim; i++ {
		if p[i] >= a.min[i]+half {
			index |= 1 << i
			c.min[i] += half
		} else {
			c.max[i] -= half
		}
	}
	return c, index, true
}

func (a Area) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < a.dim; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d..%d", a.min[i], a.max[i])
	}
	sb.WriteString(")")
	return sb.String()
}
