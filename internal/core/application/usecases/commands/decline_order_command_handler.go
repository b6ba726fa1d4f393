package commands

import (
	"context"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/clock"
)

// DeclineOrderCommandHandler records a decline. Any registered shop may
// decline a Pending order at any time, whether or not it currently holds it;
// repeating a decline succeeds without writing anything. Inventory is never
// touched.
type DeclineOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
	publisher  ports.OrderEventPublisher
}

func NewDeclineOrderCommandHandler(
	uowFactory UoWFactory,
	clk clock.Clock,
	publisher ports.OrderEventPublisher,
) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		publisher:  publisher,
	}
}

func (h DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = uow.ShopRepository().Get(ctx, cmd.ShopID()); err != nil {
		return err
	}

	added, err := o.Decline(cmd.ShopID())
	if err != nil {
		return err
	}

	if !added {
		return nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, order.NewDeclinedEvent(o, cmd.ShopID(), h.clock.Now()))
	return nil
}
