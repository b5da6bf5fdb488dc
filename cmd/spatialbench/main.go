// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Command spatialbench loads a normally distributed point set into the
// spatial tree and into the sorted Morton list baseline, then replays a
// steering simulation against the tree, printing timings for each phase.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	spatial "github.com/absolutelightning/go-spatial-tree"
	"github.com/absolutelightning/go-spatial-tree/internal/workload"
	"github.com/absolutelightning/go-spatial-tree/mortonlist"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	configPath = flag.String("config", "", "YAML tree configuration")
	numItems   = flag.Int("n", 1000*1000, "Number of points to bulk load")
	numAgents  = flag.Int("agents", 100*1000, "Number of simulated entities")
	steps      = flag.Int("steps", 10, "Simulation steps")
	seed       = flag.Uint64("seed", 0xfeed, "Random seed")
	parallel   = flag.Bool("parallel", false, "Load the tree and the baseline concurrently")
	debugLog   = flag.Bool("debug", false, "Enable debug output")
)

func main() {
	flag.Parse()

	logger := zap.NewNop()
	if *debugLog {
		l, err := zap.NewDevelopment()
		if err != nil {
			fatal(err)
		}
		logger = l
	}
	defer logger.Sync()

	cfg := spatial.DefaultConfig()
	if *configPath != "" {
		c, err := spatial.LoadConfig(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = c
	}
	if cfg.Dimension != 2 {
		fatal(fmt.Errorf("spatialbench only drives two dimensional workloads, config has %d", cfg.Dimension))
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, cfg spatial.Config, logger *zap.Logger) error {
	points := workload.Normal[int64](workload.NewRand(*seed), *numItems, cfg.Dimension, 1024)

	tree, err := spatial.New[int64, uint32](cfg.Dimension, append(cfg.Options(), spatial.WithLogger(logger))...)
	if err != nil {
		return err
	}
	list, err := mortonlist.New[int64, uint32](cfg.Dimension)
	if err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	if !*parallel {
		g.SetLimit(1)
	}
	g.Go(func() error {
		start := time.Now()
		b := tree.Batch()
		for i, p := range points {
			b.Add(uint32(i), p)
		}
		res := b.Commit()
		report("tree bulk load", time.Since(start), res.Inserted, len(res.Failed))
		return tree.IntegrityCheck()
	})
	g.Go(func() error {
		start := time.Now()
		batch := make([]mortonlist.Entry[int64, uint32], len(points))
		for i, p := range points {
			batch[i] = mortonlist.Entry[int64, uint32]{ID: uint32(i), Pos: p}
		}
		failed := list.InsertBatch(batch)
		report("list bulk load", time.Since(start), list.Len(), len(failed))
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	sim := workload.NewSimulation(workload.NewRand(*seed+1), *numAgents, 100, 4)
	for s := 0; s < *steps; s++ {
		sim.Step()
		step, err := spatial.New[int64, int](cfg.Dimension, cfg.Options()...)
		if err != nil {
			return err
		}
		start := time.Now()
		failed := 0
		for i, p := range workload.Positions[int64](sim) {
			if _, err := step.Insert(i, p); err != nil {
				failed++
			}
		}
		report(fmt.Sprintf("simulation step %d", s), time.Since(start), step.Len(), failed)
	}

	st := tree.Stats()
	color.New(color.FgHiWhite).Printf("nodes=%d leaves=%d splits=%d depth=%d reused=%d steps=%d\n",
		st.Nodes, st.Leaves, st.Splits, st.MaxDepth, st.ReusedLevels, st.DescentSteps)
	return nil
}

func report(phase string, d time.Duration, ok, failed int) {
	name := color.New(color.FgHiCyan).Sprint(phase)
	took := color.New(color.FgHiYellow).Sprint(d)
	line := fmt.Sprintf("%s: %s (%d items", name, took, ok)
	if failed > 0 {
		line += ", " + color.New(color.FgHiRed).Sprintf("%d failed", failed)
	}
	fmt.Fprintln(color.Output, line+")")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, color.New(color.FgHiRed).Sprint("error: ")+err.Error())
	os.Exit(1)
}
