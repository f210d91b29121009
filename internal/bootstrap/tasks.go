package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Apiary_Go/internal/apiary"
	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/scheduler"
	"github.com/osse101/Apiary_Go/internal/worker"
)

// ScheduleTasks starts a single-worker pool and registers every periodic apiary task on it.
// One worker keeps the tasks sequential. An order check is queued immediately.
func ScheduleTasks(svc apiary.Service, tuning config.Tuning) (*scheduler.Scheduler, *worker.Pool) {
	pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	orderCheck := worker.NewTask(scheduler.TaskOrderCheck, func(ctx context.Context) error {
		_, err := svc.CheckAndGenerateOrders(ctx)
		return err
	})

	sched.Schedule(scheduler.TaskPlotTick, tuning.PlotTick, worker.NewTask(scheduler.TaskPlotTick, svc.TickPlots))
	sched.Schedule(scheduler.TaskHiveNectar, tuning.HiveNectarTick, worker.NewTask(scheduler.TaskHiveNectar, svc.TickHiveNectar))
	sched.Schedule(scheduler.TaskOrderCheck, tuning.OrderCheck, orderCheck)
	sched.Schedule(scheduler.TaskHoneyOrders, tuning.OrderCheck, worker.NewTask(scheduler.TaskHoneyOrders, func(ctx context.Context) error {
		_, err := svc.HoneyOrders(ctx)
		return err
	}))
	sched.Schedule(scheduler.TaskPollination, tuning.PollinationTick, worker.NewTask(scheduler.TaskPollination, svc.RunPollinationCycle))
	sched.Schedule(scheduler.TaskWaterRefill, tuning.WaterRefill, worker.NewTask(scheduler.TaskWaterRefill, svc.RefillWater))
	slog.Info(LogMsgTasksScheduled, "tasks", sched.Tasks())

	if sched.RunNow(orderCheck) {
		slog.Info(LogMsgStartupOrders)
	}
	return sched, pool
}
