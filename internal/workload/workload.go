// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package workload generates positions for tests and the bench harness:
// uniform and normal samples, and a steering simulation that moves entities
// toward random targets to produce realistic, spatially local updates.
package workload

import (
	"math"
	"math/rand/v2"
	"slices"

	spatial "github.com/absolutelightning/go-spatial-tree"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform samples n positions with every coordinate drawn from [lo, hi).
func Uniform[C spatial.Coordinate](rng *rand.Rand, n, dim int, lo, hi C) [][]C {
	span := uint64(hi - lo)
	out := make([][]C, n)
	for i := range out {
		p := make([]C, dim)
		for j := range p {
			p[j] = lo + C(rng.Uint64N(span))
		}
		out[i] = p
	}
	return out
}

// Normal samples n positions with every coordinate drawn from N(0, sigma)
// and truncated toward zero.
func Normal[C spatial.Coordinate](rng *rand.Rand, n, dim int, sigma float64) [][]C {
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: rng}
	out := make([][]C, n)
	for i := range out {
		p := make([]C, dim)
		for j := range p {
			p[j] = C(int64(dist.Rand()))
		}
		out[i] = p
	}
	return out
}

// SortMorton sorts positions in place by the Morton order of their ordinals.
func SortMorton[C spatial.Coordinate](positions [][]C) {
	keys := make([][]uint64, len(positions))
	order := make([]int, len(positions))
	for i, p := range positions {
		k := make([]uint64, len(p))
		for j, c := range p {
			k[j] = spatial.ToOrdinal(c)
		}
		keys[i] = k
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return spatial.Compare(keys[a], keys[b])
	})
	sorted := make([][]C, len(positions))
	for i, j := range order {
		sorted[i] = positions[j]
	}
	copy(positions, sorted)
}

// Entity is one moving agent of a Simulation.
type Entity struct {
	Pos      r2.Vec
	Target   r2.Vec
	MaxSpeed float64
}

// Simulation moves entities toward their targets at bounded speed and picks
// a new target once one is reached.
type Simulation struct {
	Entities []Entity
	targets  distuv.Normal
}

// NewSimulation places n entities and their targets from N(0, sigma).
func NewSimulation(rng *rand.Rand, n int, sigma, maxSpeed float64) *Simulation {
	s := &Simulation{
		Entities: make([]Entity, n),
		targets:  distuv.Normal{Mu: 0, Sigma: sigma, Src: rng},
	}
	for i := range s.Entities {
		s.Entities[i] = Entity{
			Pos:      s.sample(),
			Target:   s.sample(),
			MaxSpeed: maxSpeed,
		}
	}
	return s
}

func (s *Simulation) sample() r2.Vec {
	return r2.Vec{X: s.targets.Rand(), Y: s.targets.Rand()}
}

// Step advances every entity once.
func (s *Simulation) Step() {
	for i := range s.Entities {
		e := &s.Entities[i]
		dir := r2.Sub(e.Target, e.Pos)
		if d := r2.Norm(dir); d > e.MaxSpeed {
			dir = r2.Scale(e.MaxSpeed/d, dir)
		}
		e.Pos = r2.Add(e.Pos, dir)
		if e.Pos == e.Target {
			e.Target = s.sample()
		}
	}
}

// Positions returns the entity positions rounded to integer coordinates.
func Positions[C spatial.Coordinate](s *Simulation) [][]C {
	out := make([][]C, len(s.Entities))
	for i, e := range s.Entities {
		out[i] = []C{C(int64(math.Round(e.Pos.X))), C(int64(math.Round(e.Pos.Y)))}
	}
	return out
}
