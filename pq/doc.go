// Package pq implements the priority-queue engines an IFT solver chooses
// between: a general min-heap keyed by a live cost lookup (for arbitrary
// float costs), a bucket queue for bounded integer costs achieving
// O(m + nK) total work, a discretized wrapper for float costs that still
// want bucket-queue speed, a hybrid of the two, and a tie-break bucket
// variant that orders equal-cost pixels FIFO, LIFO, or randomly.
//
// All engines use a "lazy decrease-key" discipline: rather than removing
// and re-inserting an element when its key improves, callers push a
// fresh entry. HeapQueue detects and skips stale entries on pop by
// comparing against the authoritative cost held elsewhere (normally
// ift.Result.C); the bucket engines do no such check and pop every
// pushed entry, so their caller skips pixels it has already finalized.
// Either way occupancy can transiently reach O(m) instead of O(n).
package pq
