package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary spanning orders and shops.
// Repositories obtained before Begin, or on a unit that was never begun,
// read committed state without locking.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active. Calling it
	// after Commit is harmless.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ShopRepository() ShopRepository
}
