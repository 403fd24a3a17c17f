package ift

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"gonum.org/v1/gonum/stat"
)

// ExecutionStats summarizes a single Solve* run: how many pixels were
// finalized, how many relaxation attempts were made, and how many
// finalized pixels carry each label, without tying the solver itself to
// any particular reporting format.
type ExecutionStats struct {
	PixelsFinalized int
	Relaxations     int
	LabelCounts     map[int]int
}

// RelaxationsPerPixel returns the average number of relaxation attempts
// per finalized pixel, a rough proxy for how much rework the frontier
// did versus the theoretical minimum of one per pixel.
func (s ExecutionStats) RelaxationsPerPixel() float64 {
	if s.PixelsFinalized == 0 {
		return 0
	}
	return float64(s.Relaxations) / float64(s.PixelsFinalized)
}

// CostMoments reports the mean and variance of the given finite path
// costs, computed with gonum/stat rather than a hand-rolled accumulator.
// Pass Result.C with infCost entries filtered out, as for CostHistogram.
func CostMoments(costs []float64) (mean, variance float64) {
	if len(costs) == 0 {
		return 0, 0
	}
	mean = stat.Mean(costs, nil)
	variance = stat.Variance(costs, nil)
	return mean, variance
}

// CostHistogram renders a text histogram of costs using buckets. Pass
// the cost values directly (normally Result.C with infCost entries
// filtered out).
func CostHistogram(costs []float64, buckets int) (string, error) {
	if len(costs) == 0 {
		return "", fmt.Errorf("ift: CostHistogram: no cost samples")
	}
	hist := histogram.Hist(buckets, costs)
	var sb strings.Builder
	if err := histogram.Fprint(&sb, hist, histogram.Linear(40)); err != nil {
		return "", fmt.Errorf("ift: CostHistogram: %w", err)
	}
	return sb.String(), nil
}

// LabelDistribution reports, for each distinct label in the stats,
// how many pixels carry it, sorted by descending count then ascending
// label for determinism.
func (s ExecutionStats) LabelDistribution() []LabelCount {
	out := make([]LabelCount, 0, len(s.LabelCounts))
	for label, count := range s.LabelCounts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// LabelCount pairs a label with how many pixels were assigned it.
type LabelCount struct {
	Label int
	Count int
}

// statsCollector accumulates ExecutionStats during a run when enabled,
// or does nothing at all when disabled — with WithStats() unset, each
// record call returns after a check of the enabled flag. A nil collector
// is also accepted and records nothing.
type statsCollector struct {
	enabled bool
	stats   ExecutionStats
}

func newStatsCollector(enabled bool) *statsCollector {
	return &statsCollector{enabled: enabled, stats: ExecutionStats{LabelCounts: make(map[int]int)}}
}

func (c *statsCollector) recordFinalize(label int) {
	if c == nil || !c.enabled {
		return
	}
	c.stats.PixelsFinalized++
	c.stats.LabelCounts[label]++
}

func (c *statsCollector) recordRelaxation() {
	if c == nil || !c.enabled {
		return
	}
	c.stats.Relaxations++
}

// Stats returns the accumulated ExecutionStats snapshot.
func (c *statsCollector) Stats() ExecutionStats {
	if c == nil {
		return ExecutionStats{}
	}
	return c.stats
}
