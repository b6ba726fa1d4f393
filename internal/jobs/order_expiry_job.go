package jobs

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// OrderExpiryJob periodically runs the expiry sweep.
type OrderExpiryJob struct {
	handler  commands.ExpireOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderExpiryJob(
	handler commands.ExpireOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "order_expiry_job"),
	}
}

// Start registers the sweep on the schedule. An invalid schedule is reported
// here and nothing is started.
func (j *OrderExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs one sweep and logs its outcome.
func (j *OrderExpiryJob) RunOnce(ctx context.Context) commands.ExpireOrdersResult {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	result, err := j.handler.Handle(ctx, commands.NewExpireOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order expiry sweep failed", "error", err,
			"expired", result.Expired, "purged", result.Purged)
		return result
	}

	if result.Expired > 0 {
		j.logger.InfoContext(ctx, "Orders expired", "expired", result.Expired, "purged", result.Purged)
	}
	return result
}

// Stop unschedules the sweep and waits for a running one to return.
func (j *OrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
