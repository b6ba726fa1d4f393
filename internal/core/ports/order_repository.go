package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Inside a begun unit of work Get locks the order until Commit or Rollback;
// outside one every method is a plain read of committed state.
type OrderRepository interface {
	// Add persists a new order. The id must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, declined set and assignment of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order. Used by the expiry sweep when expired orders
	// are purged.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns errs.ObjectNotFoundError with ParamName "order" for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending returns Pending orders, oldest first.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllAcceptedByShop returns orders accepted by shopID, most recently
	// accepted first.
	GetAllAcceptedByShop(ctx context.Context, shopID kernel.ShopID) ([]*order.Order, error)

	// GetAllByCustomer returns every order of a customer in any status,
	// newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
