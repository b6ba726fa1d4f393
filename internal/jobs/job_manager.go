package jobs

import (
	"fmt"
	"log/slog"

	"grocery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

var scheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderExpiryJob *OrderExpiryJob
}

// NewJobManager validates the expiry schedule and wires the jobs.
func NewJobManager(
	expireOrdersHandler commands.ExpireOrdersCommandHandler,
	expirySchedule string,
	logger *slog.Logger,
) (*JobManager, error) {
	if _, err := scheduleParser.Parse(expirySchedule); err != nil {
		return nil, fmt.Errorf("invalid expiry schedule %q: %w", expirySchedule, err)
	}

	return &JobManager{
		orderExpiryJob: NewOrderExpiryJob(expireOrdersHandler, expirySchedule, logger),
	}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start order expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	jm.orderExpiryJob.Stop()
}
