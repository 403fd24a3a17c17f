package pq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/pq"
)

func TestBucketQueue_PushPopFIFO(t *testing.T) {
	q, err := pq.NewBucketQueue(10)
	require.NoError(t, err)

	require.NoError(t, q.Push(100, 3))
	require.NoError(t, q.Push(200, 1))
	require.NoError(t, q.Push(201, 1)) // same bucket as 200, FIFO among ties

	idx, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 200, idx)

	idx, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 201, idx)

	idx, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 100, idx)

	assert.True(t, q.Empty())
}

func TestBucketQueue_Errors(t *testing.T) {
	_, err := pq.NewBucketQueue(-1)
	assert.ErrorIs(t, err, pq.ErrCostOutOfRange)

	q, err := pq.NewBucketQueue(5)
	require.NoError(t, err)
	err = q.Push(1, 6)
	assert.ErrorIs(t, err, pq.ErrCostOutOfRange)

	_, err = q.Pop()
	assert.ErrorIs(t, err, pq.ErrQueueEmpty)

	_, err = q.Top()
	assert.ErrorIs(t, err, pq.ErrQueueEmpty)
}

func TestBucketQueue_TopDoesNotRemove(t *testing.T) {
	q, err := pq.NewBucketQueue(5)
	require.NoError(t, err)
	require.NoError(t, q.Push(1, 2))

	top, err := q.Top()
	require.NoError(t, err)
	assert.Equal(t, 1, top)
	assert.Equal(t, 1, q.Len())
}

func TestBucketQueue_ClearResets(t *testing.T) {
	q, err := pq.NewBucketQueue(5)
	require.NoError(t, err)
	require.NoError(t, q.Push(1, 2))
	q.Clear()
	assert.True(t, q.Empty())
	assert.Equal(t, 0, q.Len())
}

func TestBucketQueue_IsValidCost(t *testing.T) {
	q, err := pq.NewBucketQueue(5)
	require.NoError(t, err)
	assert.True(t, q.IsValidCost(0))
	assert.True(t, q.IsValidCost(5))
	assert.False(t, q.IsValidCost(6))
	assert.False(t, q.IsValidCost(-1))
}

func TestBucketQueue_Stats(t *testing.T) {
	q, err := pq.NewBucketQueue(10)
	require.NoError(t, err)
	require.NoError(t, q.Push(1, 2))
	require.NoError(t, q.Push(2, 2))
	require.NoError(t, q.Push(3, 8))

	stats := q.Stats()
	assert.Equal(t, 3, stats.TotalElements)
	assert.Equal(t, 2, stats.ActiveBuckets)
	assert.Equal(t, 2, stats.MinCost)
	assert.Equal(t, 8, stats.MaxCost)
	assert.InDelta(t, (2.0+2.0+8.0)/3.0, stats.AverageCost, 1e-9)
}
