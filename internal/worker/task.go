package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/metrics"
)

// TaskFunc is one run of a named periodic task
type TaskFunc func(ctx context.Context) error

// Task adapts a TaskFunc into a Job with its own request id, logging and metrics
type Task struct {
	Name string
	Run  TaskFunc
}

// NewTask creates a named task job
func NewTask(name string, run TaskFunc) *Task {
	return &Task{Name: name, Run: run}
}

// Process runs the task under a fresh request id
func (t *Task) Process(ctx context.Context) (err error) {
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx).With(logger.AttrKeyTask, t.Name)

	start := time.Now()
	log.Debug(LogMsgTaskStarted)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v", t.Name, r)
		}
		metrics.TaskDuration.WithLabelValues(t.Name).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.TaskRuns.WithLabelValues(t.Name, metrics.OutcomeError).Inc()
			log.Error(LogMsgTaskFailed, "error", err)
			return
		}
		metrics.TaskRuns.WithLabelValues(t.Name, metrics.OutcomeSuccess).Inc()
		log.Debug(LogMsgTaskCompleted, "duration", time.Since(start))
	}()

	return t.Run(ctx)
}
