package cmd_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"grocery/cmd"
	"grocery/internal/adapters/out/identity"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

type unavailableUoWFactory struct{}

func (unavailableUoWFactory) Create() ports.UnitOfWork {
	return unavailableUoW{}
}

type unavailableUoW struct{}

func (unavailableUoW) Begin(context.Context) error            { return errStoreDown }
func (unavailableUoW) Commit(context.Context) error           { return errStoreDown }
func (unavailableUoW) Rollback(context.Context) error         { return errStoreDown }
func (unavailableUoW) OrderRepository() ports.OrderRepository { return nil }
func (unavailableUoW) ShopRepository() ports.ShopRepository   { return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, order.Event) {}

func runConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:         "0",
		EscalationWindow: 5 * time.Minute,
		ExpirySchedule:   "@every 30s",
		OTPCode:          "1234",
		OTPTTL:           5 * time.Minute,
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should close adapters when seeding fails", func(t *testing.T) {
		var closed []string
		deps := cmd.Dependencies{
			UoWFactory: unavailableUoWFactory{},
			Publisher:  nopPublisher{},
			Codes:      identity.NewMemoryCodeStore(clock.System{}),
			Users:      identity.NewMemoryUserDirectory(),
			Closers: []func() error{
				func() error { closed = append(closed, "db"); return nil },
				func() error { closed = append(closed, "broker"); return nil },
			},
		}

		err := cmd.Run(t.Context(), runConfig(), logger, deps)

		require.ErrorIs(t, err, errStoreDown)
		assert.Contains(t, err.Error(), "seed shops")
		assert.Equal(t, []string{"broker", "db"}, closed)
	})

	t.Run("should close adapters when the application cannot be built", func(t *testing.T) {
		closeErr := errors.New("close failed")
		calls := 0
		cfg := runConfig()
		cfg.EscalationWindow = 0
		deps := cmd.Dependencies{
			Closers: []func() error{func() error { calls++; return closeErr }},
		}

		err := cmd.Run(t.Context(), cfg, logger, deps)

		require.Error(t, err)
		require.ErrorIs(t, err, closeErr)
		assert.Equal(t, 1, calls)
	})
}
