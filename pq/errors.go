package pq

import "errors"

// Sentinel errors for priority-queue operations.
var (
	// ErrQueueEmpty is returned by Pop/Top on an empty queue. Surfacing
	// this rather than a silent zero value is deliberate: an empty pop
	// inside a solver's main loop indicates a solver bug, not a normal
	// end-of-input condition.
	ErrQueueEmpty = errors.New("pq: queue is empty")

	// ErrCostOutOfRange is returned by BucketQueue.Push when cost is
	// outside [0, K]. This engine raises rather than silently dropping
	// the insertion, since an out-of-range cost usually means the bucket
	// bound was estimated too low.
	ErrCostOutOfRange = errors.New("pq: cost out of range for bucket queue")
)
