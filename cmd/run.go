package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Run builds the application on deps, serves HTTP on cfg.HTTPPort and blocks
// until ctx is cancelled or the server fails. The adapters in deps are closed
// and the jobs stopped before Run returns, also when start-up fails.
//
// Parameters:
//   - ctx: cancelled on shutdown signals
//   - cfg: validated configuration
//   - logger: root structured logger
//   - deps: adapters opened by BuildDependencies
//
// Returns:
//   - error: the first start-up or serve failure, joined with any close failure
func Run(ctx context.Context, cfg Config, logger *slog.Logger, deps Dependencies) (err error) {
	app, err := NewCompositionRoot(cfg, logger, deps)
	if err != nil {
		for i := len(deps.Closers) - 1; i >= 0; i-- {
			err = errors.Join(err, deps.Closers[i]())
		}
		return fmt.Errorf("build application: %w", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close adapters: %w", closeErr))
		}
	}()

	if err = app.SeedDefaultShops(ctx); err != nil {
		return fmt.Errorf("seed shops: %w", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return fmt.Errorf("create jobs: %w", err)
	}
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateEcho()
	if err != nil {
		return fmt.Errorf("build HTTP router: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", cfg.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve HTTP: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}
	return nil
}
