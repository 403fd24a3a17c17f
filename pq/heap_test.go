package pq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/pq"
)

func TestHeapQueue_PopsAscending(t *testing.T) {
	costs := map[int]float64{0: 5, 1: 1, 2: 3}
	q := pq.NewHeapQueue(3, func(index int) float64 { return costs[index] })
	for idx, cost := range costs {
		q.Push(idx, cost)
	}

	var order []int
	for !q.Empty() {
		idx, err := q.Pop()
		require.NoError(t, err)
		order = append(order, idx)
	}
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestHeapQueue_SkipsStaleEntries(t *testing.T) {
	costs := map[int]float64{0: 10}
	q := pq.NewHeapQueue(1, func(index int) float64 { return costs[index] })
	q.Push(0, 10)
	costs[0] = 2 // decrease-key: overwrite the live cost out-of-band
	q.Push(0, 2) // push the fresh, cheaper entry

	idx, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = q.Pop()
	assert.ErrorIs(t, err, pq.ErrQueueEmpty)
}

func TestHeapQueue_SkipsUnreachedEntries(t *testing.T) {
	costs := map[int]float64{0: math.Inf(1)}
	q := pq.NewHeapQueue(1, func(index int) float64 { return costs[index] })
	q.Push(0, 5) // a stale push from before the cost was reset to +inf

	assert.False(t, q.Empty()) // entry still occupies the backing slice
	_, err := q.Pop()
	assert.ErrorIs(t, err, pq.ErrQueueEmpty)
}

func TestHeapQueue_Peek(t *testing.T) {
	costs := map[int]float64{0: 7}
	q := pq.NewHeapQueue(1, func(index int) float64 { return costs[index] })
	q.Push(0, 7)

	idx, cost, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 7.0, cost)

	// Peek must not have removed the entry.
	idx, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestHeapQueue_EmptyPop(t *testing.T) {
	q := pq.NewHeapQueue(0, func(int) float64 { return 0 })
	_, err := q.Pop()
	assert.ErrorIs(t, err, pq.ErrQueueEmpty)
}
