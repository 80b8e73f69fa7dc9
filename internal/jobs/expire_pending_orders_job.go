package jobs

import (
	"context"
	"log/slog"
	"time"

	"retail/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule runs the sweep at the start of every minute.
const DefaultExpirySchedule = "0 * * * * *"

type pendingOrderExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (int, error)
}

type expiryRecorder interface {
	OrdersExpired(n int)
}

// ExpirePendingOrdersJob cancels web orders whose payment was never confirmed.
// Orders stay PENDING for at most ttl plus one schedule interval.
type ExpirePendingOrdersJob struct {
	handler  pendingOrderExpirer
	recorder expiryRecorder
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewExpirePendingOrdersJob creates the sweep. schedule is a six-field cron
// expression (seconds first); an empty schedule uses DefaultExpirySchedule.
func NewExpirePendingOrdersJob(
	handler pendingOrderExpirer,
	recorder expiryRecorder,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) *ExpirePendingOrdersJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}

	return &ExpirePendingOrdersJob{
		handler:  handler,
		recorder: recorder,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "expire_pending_orders_job"),
	}
}

func (j *ExpirePendingOrdersJob) Name() string {
	return "expire pending orders"
}

// Start registers the sweep on its schedule.
func (j *ExpirePendingOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expire pending orders job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (j *ExpirePendingOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Expire pending orders job stopped")
}

// RunOnce performs a single sweep.
func (j *ExpirePendingOrdersJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Expire pending orders job misconfigured", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if expired > 0 {
		j.recorder.OrdersExpired(expired)
		j.logger.InfoContext(ctx, "Expired pending orders", "count", expired)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Expire pending orders job failed", "error", err)
	}
}
