// Package commands contains the operations that change orders, shops and
// users. Every handler validates its command, does its work inside one unit
// of work and publishes order events only after a successful commit.
package commands

import (
	"context"

	"grocery/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// OrderUoW is enough for commands that touch orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShopUoW is enough for inventory changes.
	ShopUoW interface {
		TxManager
		ShopRepoFactory
	}

	ShopUoWFactory interface {
		Create() ShopUoW
	}

	// UoW spans orders and shops. Accept needs both: the order row is locked
	// first, then the shop row.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   s, err := uow.ShopRepository().Get(ctx, shopID)
	//   // ... mutate both
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ShopRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
