package queries

import (
	"context"

	"grocery/internal/core/domain/services"
	"grocery/internal/pkg/clock"
)

// ListVisibleOrdersQueryHandler returns the Pending orders the shop currently
// holds, oldest first, each with the end of the shop's window. The answer is
// a snapshot: Accept re-checks eligibility under lock.
type ListVisibleOrdersQueryHandler struct {
	factory RepositoryFactory
	router  services.EscalationRouter
	clock   clock.Clock
}

func NewListVisibleOrdersQueryHandler(
	factory RepositoryFactory,
	router services.EscalationRouter,
	clk clock.Clock,
) ListVisibleOrdersQueryHandler {
	return ListVisibleOrdersQueryHandler{factory: factory, router: router, clock: clk}
}

func (h ListVisibleOrdersQueryHandler) Handle(ctx context.Context, query ListVisibleOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repos := h.factory.Create()

	if _, err := repos.ShopRepository().Get(ctx, query.ShopID()); err != nil {
		return nil, err
	}

	shops, err := repos.ShopRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := repos.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	chain := services.NewChain(shops)
	now := h.clock.Now()

	views := make([]OrderView, 0)
	for _, o := range pending {
		holder, ok := h.router.Holder(o, chain, now)
		if !ok || holder.ShopID != query.ShopID() {
			continue
		}

		view := newOrderView(o)
		windowEndsAt := holder.WindowEndsAt
		view.WindowEndsAt = &windowEndsAt
		views = append(views, view)
	}
	return views, nil
}
