// Package jobs runs scheduled background work with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderExpiryJob sweeps Pending orders whose last eligible shop window has
// passed and marks them Expired (or deletes them when purging is enabled).
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(expireHandler, "@every 30s", logger)
//	if err != nil {
//		return err
//	}
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds, or descriptors such
// as "@every 30s". A run still in progress when the next tick fires makes
// that tick a no-op. StopAll waits for a running sweep to finish.
package jobs
