package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/metrics"
	"github.com/osse101/Apiary_Go/internal/testing/leaktest"
)

type countingJob struct {
	executed *int32
	wg       *sync.WaitGroup
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	j.wg.Done()
	return nil
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	var executed int32
	var wg sync.WaitGroup
	pool := NewPool(2, 10)
	pool.Start()

	job := &countingJob{executed: &executed, wg: &wg}
	wg.Add(2)
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))
	wg.Wait()

	pool.Stop()
	pool.Stop()

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
	assert.False(t, pool.Enqueue(job), "stopped pool rejects work")
	checker.Check(0)
}

func TestPool_FullQueueDropsJob(t *testing.T) {
	pool := NewPool(1, 1)
	// not started, so nothing drains the queue
	job := NewTask("noop", func(context.Context) error { return nil })

	assert.True(t, pool.Enqueue(job))
	assert.False(t, pool.Enqueue(job))
	assert.Equal(t, 1, pool.Pending())
	pool.Stop()
}

func TestPool_SingleWorkerIsSequential(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	var running, maxRunning int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		pool.Enqueue(NewTask("overlap", func(context.Context) error {
			defer wg.Done()
			n := atomic.AddInt32(&running, 1)
			for {
				m := atomic.LoadInt32(&maxRunning)
				if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return nil
		}))
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
}

func TestTask_Process(t *testing.T) {
	t.Run("success carries a request id", func(t *testing.T) {
		var gotID string
		task := NewTask("order-check", func(ctx context.Context) error {
			gotID, _ = logger.RequestIDFromContext(ctx)
			return nil
		})

		before := testutil.ToFloat64(metrics.TaskRuns.WithLabelValues("order-check", metrics.OutcomeSuccess))
		require.NoError(t, task.Process(context.Background()))
		assert.NotEmpty(t, gotID)
		assert.InDelta(t, before+1,
			testutil.ToFloat64(metrics.TaskRuns.WithLabelValues("order-check", metrics.OutcomeSuccess)), 1e-9)
	})

	t.Run("error is returned and counted", func(t *testing.T) {
		boom := errors.New("boom")
		task := NewTask("plot-tick", func(context.Context) error { return boom })

		before := testutil.ToFloat64(metrics.TaskRuns.WithLabelValues("plot-tick", metrics.OutcomeError))
		assert.ErrorIs(t, task.Process(context.Background()), boom)
		assert.InDelta(t, before+1,
			testutil.ToFloat64(metrics.TaskRuns.WithLabelValues("plot-tick", metrics.OutcomeError)), 1e-9)
	})

	t.Run("panic becomes an error", func(t *testing.T) {
		task := NewTask("pollination", func(context.Context) error { panic("nil hive") })
		err := task.Process(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "panicked")
	})
}
