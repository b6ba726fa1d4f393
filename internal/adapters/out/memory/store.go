// Package memory keeps orders and shops in process memory behind the same
// unit of work contract as the postgres adapter.
//
// The store has one lock. A begun UnitOfWork holds it exclusively from Begin
// until Commit or Rollback, so every transition runs alone; reads outside a
// unit of work take the shared lock and copy what they return. Aggregates are
// stored as their State values and rebuilt on every read, so callers never
// share memory with the store.
package memory

import (
	"sync"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/core/ports"
)

type Store struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]order.State
	shops  map[kernel.ShopID]shop.State
}

func NewStore() *Store {
	return &Store{
		orders: make(map[kernel.UUID]order.State),
		shops:  make(map[kernel.ShopID]shop.State),
	}
}

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}
