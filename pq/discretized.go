package pq

import "math"

// DiscretizedBucketQueue adapts BucketQueue to float costs by scaling
// them into an integer range: incoming costs are rounded to the nearest
// multiple of precision, stored in the underlying BucketQueue, and
// converted back on read. precision controls granularity — smaller
// values give finer resolution at the cost of a larger bucket array.
type DiscretizedBucketQueue struct {
	inner     *BucketQueue
	precision float64
}

// NewDiscretizedBucketQueue allocates a queue covering float costs in
// [0, maxCost] at the given precision (default 0.1 if precision <= 0).
func NewDiscretizedBucketQueue(maxCost, precision float64) (*DiscretizedBucketQueue, error) {
	if precision <= 0 {
		precision = 0.1
	}
	k := int(math.Ceil(maxCost / precision))
	inner, err := NewBucketQueue(k)
	if err != nil {
		return nil, err
	}
	return &DiscretizedBucketQueue{inner: inner, precision: precision}, nil
}

// Discretize rounds a float cost to its bucket index.
func (q *DiscretizedBucketQueue) Discretize(cost float64) int {
	return int(math.Round(cost / q.precision))
}

// Continuize converts a bucket index back to a float cost.
func (q *DiscretizedBucketQueue) Continuize(discrete int) float64 {
	return float64(discrete) * q.precision
}

// Push discretizes cost and enqueues index. Returns ErrCostOutOfRange if
// the discretized cost falls outside the configured range.
func (q *DiscretizedBucketQueue) Push(index int, cost float64) error {
	return q.inner.Push(index, q.Discretize(cost))
}

// Pop removes and returns the index with the smallest current cost.
func (q *DiscretizedBucketQueue) Pop() (int, error) { return q.inner.Pop() }

// Empty reports whether the queue holds no elements.
func (q *DiscretizedBucketQueue) Empty() bool { return q.inner.Empty() }

// Len returns the total number of elements queued.
func (q *DiscretizedBucketQueue) Len() int { return q.inner.Len() }

// MinCost returns the smallest float cost currently known to hold an
// element, inverse-mapped from the underlying bucket index.
func (q *DiscretizedBucketQueue) MinCost() float64 {
	return q.Continuize(q.inner.MinCost())
}
