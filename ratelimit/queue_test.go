package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestQueue_EnterWhenFree(t *testing.T) {
	q := &requestQueue{}
	require.NoError(t, q.enter(context.Background()))
	assert.False(t, q.empty())
	q.leave()
	assert.True(t, q.empty())
}

func TestRequestQueue_ReleasesInArrivalOrder(t *testing.T) {
	q := &requestQueue{}
	require.NoError(t, q.enter(context.Background()))

	const n = 4
	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, q.enter(context.Background()))
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			q.leave()
		}()
		require.Eventually(t, func() bool {
			q.mu.Lock()
			defer q.mu.Unlock()
			return len(q.waiters) == i+1
		}, time.Second, time.Millisecond)
	}

	q.leave()
	wg.Wait()
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestRequestQueue_CancelledWaiterIsRemoved(t *testing.T) {
	q := &requestQueue{}
	require.NoError(t, q.enter(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- q.enter(ctx) }()
	require.Eventually(t, func() bool {
		q.mu.Lock()
		defer q.mu.Unlock()
		return len(q.waiters) == 1
	}, time.Second, time.Millisecond)

	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)
	q.mu.Lock()
	assert.Empty(t, q.waiters)
	q.mu.Unlock()

	// The holder is unaffected and the queue drains normally.
	q.leave()
	assert.True(t, q.empty())
}

func TestRequestQueue_CancelledBeforeEnter(t *testing.T) {
	q := &requestQueue{}
	require.NoError(t, q.enter(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, q.enter(ctx), context.Canceled)

	q.leave()
	assert.True(t, q.empty())
}
