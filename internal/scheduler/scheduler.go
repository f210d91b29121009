package scheduler

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/worker"
)

// Scheduler enqueues named jobs onto a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	mu         sync.Mutex
	tasks      map[string]chan struct{}
	wg         sync.WaitGroup
	stopped    bool
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		tasks:      make(map[string]chan struct{}),
	}
}

// Schedule registers a job to run every interval. Scheduling an existing name replaces it.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	log := logger.FromContext(context.Background())
	if quit, ok := s.tasks[name]; ok {
		log.Warn(LogMsgDuplicateTask, logger.AttrKeyTask, name)
		close(quit)
	}

	quit := make(chan struct{})
	s.tasks[name] = quit

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// a busy worker drops the tick; the next one catches up on elapsed time
				if !s.workerPool.Enqueue(job) {
					log.Debug(LogMsgTaskSkipped, logger.AttrKeyTask, name)
				}
			case <-quit:
				return
			}
		}
	}()

	log.Info(LogMsgTaskScheduled, logger.AttrKeyTask, name, "interval", interval)
}

// RunNow enqueues job once, outside its schedule
func (s *Scheduler) RunNow(job worker.Job) bool {
	return s.workerPool.Enqueue(job)
}

// Tasks lists the scheduled task names in order
func (s *Scheduler) Tasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stop clears every ticker and waits for the tick goroutines to exit. Safe to call twice.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for name, quit := range s.tasks {
		close(quit)
		delete(s.tasks, name)
	}
	s.mu.Unlock()

	s.wg.Wait()
	logger.FromContext(context.Background()).Info(LogMsgSchedulerStop)
}
