package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"
)

// ShopRepository is the shop registry. Inside a begun unit of work Get locks
// the shop, which serializes stock changes with Accept.
type ShopRepository interface {
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Update persists the inventory of an existing shop.
	Update(ctx context.Context, aggregate *shop.Shop) error

	// Get returns errs.ObjectNotFoundError with ParamName "shop" for unknown ids.
	Get(ctx context.Context, id kernel.ShopID) (*shop.Shop, error)

	// GetAll returns every shop ordered by priority rank, then id.
	GetAll(ctx context.Context) ([]*shop.Shop, error)
}
