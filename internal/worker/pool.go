package worker

import (
	"context"
	"sync"

	"github.com/osse101/Apiary_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of workers
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			if err := job.Process(p.ctx); err != nil {
				logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Enqueue adds a job without blocking. It reports false when the queue is full or the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(p.ctx).Warn(LogMsgJobDropped)
		return false
	}
}

// Pending is the number of queued jobs not yet picked up
func (p *Pool) Pending() int {
	return len(p.jobQueue)
}

// Stop cancels in-flight jobs' context and waits for workers to exit. Safe to call twice.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		p.wg.Wait()
		logger.FromContext(context.Background()).Debug(LogMsgPoolStopped)
	})
}
