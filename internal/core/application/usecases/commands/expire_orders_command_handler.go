package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/clock"
	"grocery/internal/pkg/errs"
)

// ExpireOrdersResult counts the orders finalized by one sweep. Purged is the
// subset of Expired that was deleted instead of kept.
type ExpireOrdersResult struct {
	Expired int
	Purged  int
}

// ExpireOrdersCommandHandler finalizes Pending orders that no shop can take
// any more. Candidates are listed without locks; each one is then reloaded
// in its own unit of work and checked again, so an Accept or Decline that
// wins the race is never overwritten. A failure on one order does not stop
// the sweep; all failures are returned joined.
type ExpireOrdersCommandHandler struct {
	uowFactory   UoWFactory
	router       services.EscalationRouter
	clock        clock.Clock
	publisher    ports.OrderEventPublisher
	purgeExpired bool
}

func NewExpireOrdersCommandHandler(
	uowFactory UoWFactory,
	router services.EscalationRouter,
	clk clock.Clock,
	publisher ports.OrderEventPublisher,
	purgeExpired bool,
) ExpireOrdersCommandHandler {
	return ExpireOrdersCommandHandler{
		uowFactory:   uowFactory,
		router:       router,
		clock:        clk,
		publisher:    publisher,
		purgeExpired: purgeExpired,
	}
}

func (h ExpireOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireOrdersCommand) (ExpireOrdersResult, error) {
	var result ExpireOrdersResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	reader := h.uowFactory.Create()

	pending, err := reader.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return result, err
	}

	shops, err := reader.ShopRepository().GetAll(ctx)
	if err != nil {
		return result, err
	}

	chain := services.NewChain(shops)
	now := h.clock.Now()

	var failures []error
	for _, candidate := range pending {
		if !h.router.IsExhausted(candidate, chain, now) {
			continue
		}

		if err = ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		expired, expireErr := h.expire(ctx, candidate.ID(), chain, now)
		if expireErr != nil {
			failures = append(failures, fmt.Errorf("order %s: %w", candidate.ID(), expireErr))
			continue
		}

		if expired {
			result.Expired++
			if h.purgeExpired {
				result.Purged++
			}
		}
	}

	return result, errors.Join(failures...)
}

func (h ExpireOrdersCommandHandler) expire(
	ctx context.Context,
	orderID kernel.UUID,
	chain services.Chain,
	now time.Time,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if errs.IsObjectNotFound(err, "order") {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !h.router.IsExhausted(o, chain, now) {
		return false, nil
	}

	if err = o.Expire(); err != nil {
		return false, err
	}

	if h.purgeExpired {
		err = orderRepo.Delete(ctx, o.ID())
	} else {
		err = orderRepo.Update(ctx, o)
	}
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.publisher.Publish(ctx, order.NewExpiredEvent(o, h.purgeExpired, now))
	return true, nil
}
