package queries

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrListAcceptedOrdersQueryIsNotConstructed = errors.New(
	"ListAcceptedOrdersQuery must be created via NewListAcceptedOrdersQuery constructor",
)

// ListAcceptedOrdersQuery returns the orders a shop has accepted, most
// recent first.
type ListAcceptedOrdersQuery struct {
	shopID kernel.ShopID
	guard  guard.ConstructorGuard
}

func NewListAcceptedOrdersQuery(shopID kernel.ShopID) (ListAcceptedOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return ListAcceptedOrdersQuery{}, err
	}
	return ListAcceptedOrdersQuery{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAcceptedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAcceptedOrdersQueryIsNotConstructed)
}

func (q ListAcceptedOrdersQuery) ShopID() kernel.ShopID {
	return q.shopID
}

type ListAcceptedOrdersQueryHandler struct {
	factory RepositoryFactory
}

func NewListAcceptedOrdersQueryHandler(factory RepositoryFactory) ListAcceptedOrdersQueryHandler {
	return ListAcceptedOrdersQueryHandler{factory: factory}
}

func (h ListAcceptedOrdersQueryHandler) Handle(ctx context.Context, query ListAcceptedOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repos := h.factory.Create()

	if _, err := repos.ShopRepository().Get(ctx, query.ShopID()); err != nil {
		return nil, err
	}

	orders, err := repos.OrderRepository().GetAllAcceptedByShop(ctx, query.ShopID())
	if err != nil {
		return nil, err
	}
	return newOrderViews(orders), nil
}
