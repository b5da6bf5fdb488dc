// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package spatial

import "github.com/prometheus/client_golang/prometheus"

// StatsSource is anything that can report tree statistics, such as a Locked
// tree.
type StatsSource interface {
	Stats() Stats
}

// Collector exports the statistics of one tree as Prometheus metrics. The
// source is read on every scrape, so a bare Tree must only be registered
// when scrapes cannot race with writers; use a Locked tree otherwise.
type Collector struct {
	src StatsSource

	items        *prometheus.Desc
	nodes        *prometheus.Desc
	leaves       *prometheus.Desc
	maxDepth     *prometheus.Desc
	splits       *prometheus.Desc
	descents     *prometheus.Desc
	descentSteps *prometheus.Desc
	reusedLevels *prometheus.Desc
	rejected     *prometheus.Desc
}

// NewCollector returns a collector labelling every metric with tree=name.
func NewCollector(name string, src StatsSource) *Collector {
	labels := prometheus.Labels{"tree": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("spatial", "tree", metric), help, nil, labels)
	}
	return &Collector{
		src:          src,
		items:        desc("items", "Number of items stored."),
		nodes:        desc("nodes", "Number of nodes allocated."),
		leaves:       desc("leaves", "Number of leaf nodes."),
		maxDepth:     desc("max_depth", "Deepest leaf reached."),
		splits:       desc("splits_total", "Leaf splits performed."),
		descents:     desc("descents_total", "Cached traversals performed."),
		descentSteps: desc("descent_steps_total", "Child steps taken by cached traversals."),
		reusedLevels: desc("reused_levels_total", "Levels skipped by cached traversals."),
		rejected:     desc("rejected_total", "Insertions rejected as out of bounds or duplicate."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.items
	ch <- c.nodes
	ch <- c.leaves
	ch <- c.maxDepth
	ch <- c.splits
	ch <- c.descents
	ch <- c.descentSteps
	ch <- c.reusedLevels
	ch <- c.rejected
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.items, prometheus.GaugeValue, float64(s.Items))
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(s.Nodes))
	ch <- prometheus.MustNewConstMetric(c.leaves, prometheus.GaugeValue, float64(s.Leaves))
	ch <- prometheus.MustNewConstMetric(c.maxDepth, prometheus.GaugeValue, float64(s.MaxDepth))
	ch <- prometheus.MustNewConstMetric(c.splits, prometheus.CounterValue, float64(s.Splits))
	ch <- prometheus.MustNewConstMetric(c.descents, prometheus.CounterValue, float64(s.Descents))
	ch <- prometheus.MustNewConstMetric(c.descentSteps, prometheus.CounterValue, float64(s.DescentSteps))
	ch <- prometheus.MustNewConstMetric(c.reusedLevels, prometheus.CounterValue, float64(s.ReusedLevels))
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(s.Rejected))
}
