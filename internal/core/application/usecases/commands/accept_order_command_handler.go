package commands

import (
	"context"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/clock"
)

// AcceptOrderCommandHandler runs the accept transition inside one unit of
// work. The order is loaded (and locked) before the shop, so two shops racing
// for the same order serialize on the order and exactly one of them sees it
// Pending.
//
// Errors, checked in this order:
//   - errs.ObjectNotFoundError for "order", then for "shop"
//   - order.ErrOrderIsNotPending
//   - services.ErrShopIneligible
//   - shop.ErrInsufficientInventory
//
// Example:
//
//	cmd, _ := NewAcceptOrderCommand(orderID, 2)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrShopIneligible):
//	    // not this shop's turn
//	case err != nil:
//	    return err
//	}
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	acceptor   services.OrderAcceptor
	clock      clock.Clock
	publisher  ports.OrderEventPublisher
}

func NewAcceptOrderCommandHandler(
	uowFactory UoWFactory,
	router services.EscalationRouter,
	clk clock.Clock,
	publisher ports.OrderEventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		acceptor:   services.NewOrderAcceptor(router),
		clock:      clk,
		publisher:  publisher,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shopRepo := uow.ShopRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	s, err := shopRepo.Get(ctx, cmd.ShopID())
	if err != nil {
		return nil, err
	}

	shops, err := shopRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.acceptor.Accept(o, s, services.NewChain(shops), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = shopRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, order.NewAcceptedEvent(o))
	return o, nil
}
