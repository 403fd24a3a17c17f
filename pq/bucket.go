package pq

import "fmt"

// BucketQueue is the integer-cost priority-queue engine: an array of FIFO
// sub-queues indexed by cost in [0, K]. Push is O(1) amortized; Pop is
// O(1) amortized plus O(K) total scanning across a run, which is what
// lets the solver achieve O(m + nK) overall instead of O(m log n).
//
// minBucket may lag behind the true minimum non-empty bucket; Pop/Top
// advance it lazily rather than eagerly on every Push, matching the
// invariant that minBucket never moves above a bucket it could still
// serve.
type BucketQueue struct {
	buckets   [][]int
	minBucket int
	maxBucket int
	total     int
}

// NewBucketQueue allocates a BucketQueue over the integer cost range
// [0, maxCost]. maxCost must be non-negative.
func NewBucketQueue(maxCost int) (*BucketQueue, error) {
	if maxCost < 0 {
		return nil, fmt.Errorf("pq: NewBucketQueue(%d): %w", maxCost, ErrCostOutOfRange)
	}
	return &BucketQueue{
		buckets:   make([][]int, maxCost+1),
		minBucket: 0,
		maxBucket: maxCost,
	}, nil
}

// Push enqueues index at the given integer cost. Returns ErrCostOutOfRange
// if cost is outside [0, K]: this engine treats an out-of-range push as a
// programming error (a bad bucket-bound estimate or a non-monotonic cost
// function) and surfaces it rather than silently dropping the element.
func (q *BucketQueue) Push(index, cost int) error {
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

// advanceMinBucket scans forward from minBucket until it lands on a
// non-empty bucket or runs past maxBucket.
func (q *BucketQueue) advanceMinBucket() {
	for q.minBucket <= q.maxBucket && len(q.buckets[q.minBucket]) == 0 {
		q.minBucket++
	}
}

// Pop removes and returns the index with the smallest current cost,
// FIFO among ties. Returns ErrQueueEmpty if the queue holds nothing.
func (q *BucketQueue) Pop() (int, error) {
	if q.total == 0 {
		return 0, ErrQueueEmpty
	}
	q.advanceMinBucket()
	bucket := q.buckets[q.minBucket]
	index := bucket[0]
	q.buckets[q.minBucket] = bucket[1:]
	q.total--
	return index, nil
}

// Top returns the index with the smallest current cost without removing
// it. Returns ErrQueueEmpty if the queue holds nothing.
func (q *BucketQueue) Top() (int, error) {
	if q.total == 0 {
		return 0, ErrQueueEmpty
	}
	q.advanceMinBucket()
	return q.buckets[q.minBucket][0], nil
}

// Empty reports whether the queue holds no elements.
func (q *BucketQueue) Empty() bool { return q.total == 0 }

// Len returns the total number of elements across all buckets.
func (q *BucketQueue) Len() int { return q.total }

// MinCost returns the smallest cost currently known to hold an element.
// Only meaningful when !Empty(); callers should check Empty() first.
func (q *BucketQueue) MinCost() int {
	q.advanceMinBucket()
	return q.minBucket
}

// MaxCost returns the upper bound K the queue was constructed with.
func (q *BucketQueue) MaxCost() int { return q.maxBucket }

// IsValidCost reports whether cost lies in the queue's supported range.
func (q *BucketQueue) IsValidCost(cost int) bool { return cost >= 0 && cost <= q.maxBucket }

// Clear empties every bucket for reuse, keeping the allocated range.
func (q *BucketQueue) Clear() {
	for i := range q.buckets {
		q.buckets[i] = nil
	}
	q.minBucket = 0
	q.total = 0
}

// BucketStats summarizes the current occupancy of a BucketQueue: how
// many buckets hold at least one element, the cost range currently in
// play, and the overall element count and average cost.
type BucketStats struct {
	ActiveBuckets int
	MinCost       int
	MaxCost       int
	TotalElements int
	AverageCost   float64
	BucketSizes   []int
}

// Stats computes a BucketStats snapshot in O(K) time.
func (q *BucketQueue) Stats() BucketStats {
	stats := BucketStats{MinCost: -1, MaxCost: -1, TotalElements: q.total}
	var weighted float64
	for cost, bucket := range q.buckets {
		if len(bucket) == 0 {
			continue
		}
		stats.ActiveBuckets++
		stats.BucketSizes = append(stats.BucketSizes, len(bucket))
		if stats.MinCost == -1 {
			stats.MinCost = cost
		}
		stats.MaxCost = cost
		weighted += float64(cost) * float64(len(bucket))
	}
	if stats.TotalElements > 0 {
		stats.AverageCost = weighted / float64(stats.TotalElements)
	}
	return stats
}
