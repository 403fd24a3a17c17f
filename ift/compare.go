package ift

import (
	"math"
	"sort"
	"time"

	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/pixelgrid"
)

// Comparison collects multiple named runs of the same IFT problem under
// different solvers or options. It is useful for picking a solver
// empirically (heap vs bucket, 4- vs 8-connected) without hand-rolling
// benchmark bookkeeping at each call site.
type Comparison struct {
	entries []comparisonEntry
}

type comparisonEntry struct {
	name     string
	result   *Result
	stats    ExecutionStats
	duration time.Duration
}

// Add records one named run's Result, ExecutionStats and wall-clock
// duration.
func (c *Comparison) Add(name string, result *Result, stats ExecutionStats, duration time.Duration) {
	c.entries = append(c.entries, comparisonEntry{name: name, result: result, stats: stats, duration: duration})
}

// Names returns the recorded run names, in the order they were added.
func (c *Comparison) Names() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.name
	}
	return out
}

// Fastest returns the name and Result of the run with the smallest
// recorded duration. Returns ok == false if no runs were added.
func (c *Comparison) Fastest() (name string, result *Result, ok bool) {
	if len(c.entries) == 0 {
		return "", nil, false
	}
	best := c.entries[0]
	for _, e := range c.entries[1:] {
		if e.duration < best.duration {
			best = e
		}
	}
	return best.name, best.result, true
}

// Report renders a table of name, pixels finalized, relaxations and
// duration per run, sorted by ascending duration.
func (c *Comparison) Report() []ComparisonRow {
	rows := make([]ComparisonRow, len(c.entries))
	for i, e := range c.entries {
		rows[i] = ComparisonRow{
			Name:            e.name,
			PixelsFinalized: e.stats.PixelsFinalized,
			Relaxations:     e.stats.Relaxations,
			Duration:        e.duration,
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Duration < rows[j].Duration })
	return rows
}

// ComparisonRow is one line of a Comparison.Report() table.
type ComparisonRow struct {
	Name            string
	PixelsFinalized int
	Relaxations     int
	Duration        time.Duration
}

// NamedConfig pairs a label with the solver and options Compare should
// run under that label.
type NamedConfig struct {
	Name    string
	Engine  Engine
	Options []Option
}

// Compare runs fn over img/seeds once per entry in configs, timing each
// run and collecting its ExecutionStats into a Comparison, letting a
// caller pick heap vs bucket (or FIFO vs LIFO) empirically on the actual
// input instead of guessing from asymptotic complexity alone.
func Compare(img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction, configs []NamedConfig) (*Comparison, error) {
	comparison := &Comparison{}
	for _, cfg := range configs {
		opts := append([]Option{WithStats()}, cfg.Options...)
		solve := Solve
		if cfg.Engine == EngineBucket {
			solve = SolveOptimized
		}
		started := time.Now()
		result, err := solve(img, seeds, fn, opts...)
		if err != nil {
			return nil, err
		}
		comparison.Add(cfg.Name, result, result.Stats, time.Since(started))
	}
	return comparison, nil
}

// ResultsEqual reports whether a and b agree on every pixel's label and
// cost (cost compared within tolerance). Predecessors are deliberately
// not compared: two solvers can disagree on which equal-cost neighbor
// they routed through while still producing an equally optimal, equally
// labeled forest.
func ResultsEqual(a, b *Result, tolerance float64) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for i := range a.L {
		if a.L[i] != b.L[i] {
			return false
		}
		if math.Abs(a.C[i]-b.C[i]) > tolerance {
			return false
		}
	}
	return true
}
