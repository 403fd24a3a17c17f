package pq

import (
	"container/heap"
	"math"
)

// staleEpsilon bounds the float comparison used to detect a stale heap
// entry: an entry is authoritative only if the live cost at its index
// still matches the cost it was pushed with, within this tolerance.
const staleEpsilon = 1e-9

// CostLookup returns the authoritative current cost for a pixel's linear
// index, normally backed by ift.Result.C. HeapQueue never owns cost state
// itself — it only orders indices by whatever this function reports.
type CostLookup func(index int) float64

// heapEntry pairs a pixel index with the cost it was pushed under. Stale
// entries (superseded by a later, cheaper push for the same index) are
// detected and skipped lazily on Pop rather than removed eagerly.
type heapEntry struct {
	index int
	cost  float64
}

// innerHeap is the container/heap-compatible backing slice, ordered by
// ascending cost.
type innerHeap []heapEntry

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// HeapQueue is the general-purpose priority queue engine: a binary
// min-heap over (index, cost) pairs, keyed through a CostLookup so a
// caller can decrease a pixel's cost by simply pushing again and letting
// the stale entry be skipped on extraction.
type HeapQueue struct {
	items  innerHeap
	lookup CostLookup
}

// NewHeapQueue returns an empty HeapQueue that resolves staleness through
// lookup. capacityHint pre-sizes the backing slice (pass the image's
// pixel count to avoid reallocation during initialization).
func NewHeapQueue(capacityHint int, lookup CostLookup) *HeapQueue {
	q := &HeapQueue{
		items:  make(innerHeap, 0, capacityHint),
		lookup: lookup,
	}
	heap.Init(&q.items)
	return q
}

// Push inserts index with the given cost. Complexity O(log n).
func (q *HeapQueue) Push(index int, cost float64) {
	heap.Push(&q.items, heapEntry{index: index, cost: cost})
}

// Len returns the number of entries still in the heap, including any
// stale ones not yet skipped.
func (q *HeapQueue) Len() int { return q.items.Len() }

// Empty reports whether the heap holds no entries at all (stale or not).
// Note this can be true while live work remains only if the caller never
// pushed it — Pop is the authority on "is there more real work."
func (q *HeapQueue) Empty() bool { return q.items.Len() == 0 }

// Pop removes and returns the index with the smallest authoritative cost,
// silently discarding any stale entries first. Returns ErrQueueEmpty if
// no authoritative entry remains.
func (q *HeapQueue) Pop() (int, error) {
	for q.items.Len() > 0 {
		entry := heap.Pop(&q.items).(heapEntry)
		live := q.lookup(entry.index)
		if math.IsInf(live, 1) {
			continue // never reached, or reset since push: stale
		}
		if math.Abs(live-entry.cost) > staleEpsilon {
			continue // superseded by a cheaper push since this entry was made
		}
		return entry.index, nil
	}
	return 0, ErrQueueEmpty
}

// Peek returns the index and cost of the smallest authoritative entry
// without removing it from further Pop calls. Stale entries encountered
// along the way are discarded, same as Pop. Returns ErrQueueEmpty if no
// authoritative entry remains.
func (q *HeapQueue) Peek() (int, float64, error) {
	index, err := q.Pop()
	if err != nil {
		return 0, 0, err
	}
	cost := q.lookup(index)
	heap.Push(&q.items, heapEntry{index: index, cost: cost})
	return index, cost, nil
}
