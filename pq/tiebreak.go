package pq

import (
	"fmt"
	"math/rand"
)

// TieBreak selects how a bucket resolves ties among pixels that share the
// same current minimum cost.
type TieBreak int

const (
	// FIFO pops the earliest-inserted element among ties (the default;
	// matches plain BucketQueue's behavior exactly).
	FIFO TieBreak = iota
	// LIFO pops the most-recently-inserted element among ties, biasing
	// the resulting forest toward following the most recently discovered
	// contour. This is a tie-break heuristic, not a re-proved optimality
	// guarantee beyond what the underlying cost function already gives.
	LIFO
	// Random selects uniformly among the elements in the minimum bucket.
	Random
)

// String renders the TieBreak for logs and CLI flag echoing.
func (t TieBreak) String() string {
	switch t {
	case LIFO:
		return "lifo"
	case Random:
		return "random"
	default:
		return "fifo"
	}
}

// TieBreakBucketQueue is BucketQueue's skeleton with a pluggable
// within-bucket selection policy instead of a fixed FIFO pop.
type TieBreakBucketQueue struct {
	buckets   [][]int
	minBucket int
	maxBucket int
	total     int
	policy    TieBreak
	rng       *rand.Rand
}

// NewTieBreakBucketQueue allocates a TieBreakBucketQueue over [0, maxCost]
// using the given policy. rng is only consulted for TieBreak == Random;
// pass a seeded *rand.Rand for reproducible runs, or nil to use a new
// source seeded with 1.
func NewTieBreakBucketQueue(maxCost int, policy TieBreak, rng *rand.Rand) (*TieBreakBucketQueue, error) {
	if maxCost < 0 {
		return nil, fmt.Errorf("pq: NewTieBreakBucketQueue(%d): %w", maxCost, ErrCostOutOfRange)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &TieBreakBucketQueue{
		buckets:   make([][]int, maxCost+1),
		maxBucket: maxCost,
		policy:    policy,
		rng:       rng,
	}, nil
}

// Push enqueues index at the given integer cost. Returns ErrCostOutOfRange
// if cost is outside [0, K].
func (q *TieBreakBucketQueue) Push(index, cost int) error {
	if cost < 0 || cost > q.maxBucket {
		return fmt.Errorf("pq: Push(index=%d, cost=%d) outside [0,%d]: %w", index, cost, q.maxBucket, ErrCostOutOfRange)
	}
	q.buckets[cost] = append(q.buckets[cost], index)
	if cost < q.minBucket {
		q.minBucket = cost
	}
	q.total++
	return nil
}

func (q *TieBreakBucketQueue) advanceMinBucket() {
	for q.minBucket <= q.maxBucket && len(q.buckets[q.minBucket]) == 0 {
		q.minBucket++
	}
}

// popFromBucket removes and returns one element from bucket according to
// the configured policy. FIFO and LIFO preserve insertion order among
// the elements left behind; only Random is free to reorder, since it
// has no order to preserve.
func (q *TieBreakBucketQueue) popFromBucket(cost int) int {
	bucket := q.buckets[cost]
	n := len(bucket)
	switch q.policy {
	case LIFO:
		index := bucket[n-1]
		q.buckets[cost] = bucket[:n-1]
		return index
	case Random:
		idx := q.rng.Intn(n)
		index := bucket[idx]
		bucket[idx] = bucket[n-1]
		q.buckets[cost] = bucket[:n-1]
		return index
	default: // FIFO
		index := bucket[0]
		q.buckets[cost] = bucket[1:]
		return index
	}
}

// Pop removes and returns an element at the smallest current cost,
// chosen among ties by the configured policy. Returns ErrQueueEmpty if
// the queue holds nothing.
func (q *TieBreakBucketQueue) Pop() (int, error) {
	if q.total == 0 {
		return 0, ErrQueueEmpty
	}
	q.advanceMinBucket()
	index := q.popFromBucket(q.minBucket)
	q.total--
	return index, nil
}

// Empty reports whether the queue holds no elements.
func (q *TieBreakBucketQueue) Empty() bool { return q.total == 0 }

// Len returns the total number of elements across all buckets.
func (q *TieBreakBucketQueue) Len() int { return q.total }

// MinCost returns the smallest cost currently known to hold an element.
func (q *TieBreakBucketQueue) MinCost() int {
	q.advanceMinBucket()
	return q.minBucket
}
