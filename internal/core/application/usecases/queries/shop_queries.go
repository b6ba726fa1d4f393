package queries

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var (
	ErrGetShopsQueryIsNotConstructed = errors.New(
		"GetShopsQuery must be created via NewGetShopsQuery constructor",
	)
	ErrGetShopInventoryQueryIsNotConstructed = errors.New(
		"GetShopInventoryQuery must be created via NewGetShopInventoryQuery constructor",
	)
	ErrGetCatalogQueryIsNotConstructed = errors.New(
		"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
	)
)

// GetShopsQuery lists the registry in chain order.
type GetShopsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetShopsQuery() GetShopsQuery {
	return GetShopsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetShopsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopsQueryIsNotConstructed)
}

type GetShopsQueryHandler struct {
	factory RepositoryFactory
}

func NewGetShopsQueryHandler(factory RepositoryFactory) GetShopsQueryHandler {
	return GetShopsQueryHandler{factory: factory}
}

func (h GetShopsQueryHandler) Handle(ctx context.Context, query GetShopsQuery) ([]ShopView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shops, err := h.factory.Create().ShopRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ShopView, 0, len(shops))
	for _, s := range shops {
		views = append(views, ShopView{ID: s.ID(), Name: s.Name(), PriorityRank: s.PriorityRank()})
	}
	return views, nil
}

// GetShopInventoryQuery reads one shop's stock, ordered by item id.
type GetShopInventoryQuery struct {
	shopID kernel.ShopID
	guard  guard.ConstructorGuard
}

func NewGetShopInventoryQuery(shopID kernel.ShopID) (GetShopInventoryQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopInventoryQuery{}, err
	}
	return GetShopInventoryQuery{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShopInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShopInventoryQueryIsNotConstructed)
}

func (q GetShopInventoryQuery) ShopID() kernel.ShopID {
	return q.shopID
}

type GetShopInventoryQueryHandler struct {
	factory RepositoryFactory
}

func NewGetShopInventoryQueryHandler(factory RepositoryFactory) GetShopInventoryQueryHandler {
	return GetShopInventoryQueryHandler{factory: factory}
}

func (h GetShopInventoryQueryHandler) Handle(ctx context.Context, query GetShopInventoryQuery) ([]StockItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s, err := h.factory.Create().ShopRepository().Get(ctx, query.ShopID())
	if err != nil {
		return nil, err
	}
	return newStockItemViews(s), nil
}

// GetCatalogQuery returns what customers can order: the items of the first
// shop in the chain. An empty registry yields an empty catalog.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

type GetCatalogQueryHandler struct {
	factory RepositoryFactory
}

func NewGetCatalogQueryHandler(factory RepositoryFactory) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{factory: factory}
}

func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) ([]StockItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shops, err := h.factory.Create().ShopRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(shops) == 0 {
		return []StockItemView{}, nil
	}
	return newStockItemViews(shops[0]), nil
}
