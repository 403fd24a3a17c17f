package pq

import "math"

// HybridQueue combines a BucketQueue for low, integral costs with a
// HeapQueue for everything else, picking whichever head is cheaper on
// Pop. It suits cost functions whose values are mostly small integers
// (handicaps, unit arc weights) but occasionally spike into large or
// fractional territory, where a pure bucket queue would need an
// unreasonably large K.
type HybridQueue struct {
	bucket    *BucketQueue
	heap      *HeapQueue
	threshold float64
}

// NewHybridQueue allocates a HybridQueue whose bucket half covers integer
// costs in [0, maxBucketCost] and whose heap half covers everything
// above threshold or non-integral. lookup backs the heap half exactly as
// it would a standalone HeapQueue.
func NewHybridQueue(maxBucketCost int, threshold float64, lookup CostLookup) (*HybridQueue, error) {
	bucket, err := NewBucketQueue(maxBucketCost)
	if err != nil {
		return nil, err
	}
	return &HybridQueue{
		bucket:    bucket,
		heap:      NewHeapQueue(0, lookup),
		threshold: threshold,
	}, nil
}

// routesToBucket reports whether cost should be stored in the bucket half:
// non-negative, integral, and at or below the configured threshold.
func (q *HybridQueue) routesToBucket(cost float64) bool {
	return cost >= 0 && cost <= q.threshold && cost == math.Trunc(cost) && q.bucket.IsValidCost(int(cost))
}

// Push routes index to the bucket half if cost is a small non-negative
// integer, otherwise to the heap half.
func (q *HybridQueue) Push(index int, cost float64) error {
	if q.routesToBucket(cost) {
		return q.bucket.Push(index, int(cost))
	}
	q.heap.Push(index, cost)
	return nil
}

// Pop returns the index with the smaller of the bucket half's and the
// heap half's minimum cost, preferring the bucket half on exact ties
// (FIFO determinism within the cheaper, more common path).
func (q *HybridQueue) Pop() (int, error) {
	bucketEmpty, heapEmpty := q.bucket.Empty(), q.heap.Empty()
	switch {
	case bucketEmpty && heapEmpty:
		return 0, ErrQueueEmpty
	case bucketEmpty:
		return q.heap.Pop()
	case heapEmpty:
		return q.bucket.Pop()
	}
	bucketCost := float64(q.bucket.MinCost())
	_, heapCost, err := q.heap.Peek()
	if err != nil {
		return q.bucket.Pop()
	}
	if heapCost < bucketCost {
		return q.heap.Pop()
	}
	return q.bucket.Pop()
}

// Empty reports whether both halves hold no elements.
func (q *HybridQueue) Empty() bool { return q.bucket.Empty() && q.heap.Empty() }

// Len returns the combined element count of both halves.
func (q *HybridQueue) Len() int { return q.bucket.Len() + q.heap.Len() }

// HybridStats reports how work is currently split across the two halves.
type HybridStats struct {
	BucketElements int
	HeapElements   int
	BucketRatio    float64
}

// Stats computes a HybridStats snapshot.
func (q *HybridQueue) Stats() HybridStats {
	b, h := q.bucket.Len(), q.heap.Len()
	stats := HybridStats{BucketElements: b, HeapElements: h}
	if total := b + h; total > 0 {
		stats.BucketRatio = float64(b) / float64(total)
	}
	return stats
}
