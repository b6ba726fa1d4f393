// Package queries contains the read side: orders as seen by customers and
// shops, the shop registry and inventories. Queries read committed state
// through repositories of a unit of work that is never begun, so they take no
// row locks.
package queries

import (
	"grocery/internal/core/ports"
)

type (
	Repositories interface {
		OrderRepository() ports.OrderRepository
		ShopRepository() ports.ShopRepository
	}

	RepositoryFactory interface {
		Create() Repositories
	}
)
