package memory

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

type stagedOrder struct {
	state   order.State
	deleted bool
}

// UnitOfWork stages writes and applies them to the store on Commit.
// It is not safe for use by more than one goroutine.
type UnitOfWork struct {
	store  *Store
	active bool

	orders map[kernel.UUID]stagedOrder
	shops  map[kernel.ShopID]shop.State
}

// Begin blocks until the store lock is free. Calling Begin on an active unit
// is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	u.active = true
	u.orders = make(map[kernel.UUID]stagedOrder)
	u.shops = make(map[kernel.ShopID]shop.State)
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	for id, staged := range u.orders {
		if staged.deleted {
			delete(u.store.orders, id)
			continue
		}
		u.store.orders[id] = staged.state
	}
	for id, state := range u.shops {
		u.store.shops[id] = state
	}

	u.finish()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	u.finish()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) ShopRepository() ports.ShopRepository {
	return &ShopRepository{uow: u}
}

func (u *UnitOfWork) finish() {
	u.orders = nil
	u.shops = nil
	u.active = false
	u.store.mu.Unlock()
}

func (u *UnitOfWork) lockForRead() func() {
	if u.active {
		return func() {}
	}
	u.store.mu.RLock()
	return u.store.mu.RUnlock
}

func (u *UnitOfWork) lockForWrite() func() {
	if u.active {
		return func() {}
	}
	u.store.mu.Lock()
	return u.store.mu.Unlock
}

// lookupOrder sees staged changes first. The caller holds a lock.
func (u *UnitOfWork) lookupOrder(id kernel.UUID) (order.State, bool) {
	if staged, ok := u.orders[id]; ok {
		return staged.state, !staged.deleted
	}
	state, ok := u.store.orders[id]
	return state, ok
}

func (u *UnitOfWork) lookupShop(id kernel.ShopID) (shop.State, bool) {
	if state, ok := u.shops[id]; ok {
		return state, true
	}
	state, ok := u.store.shops[id]
	return state, ok
}

// allOrders merges committed and staged orders. The caller holds a lock.
func (u *UnitOfWork) allOrders() []order.State {
	states := make([]order.State, 0, len(u.store.orders)+len(u.orders))
	for id, state := range u.store.orders {
		if _, staged := u.orders[id]; staged {
			continue
		}
		states = append(states, state)
	}
	for _, staged := range u.orders {
		if !staged.deleted {
			states = append(states, staged.state)
		}
	}
	return states
}

func (u *UnitOfWork) allShops() []shop.State {
	states := make([]shop.State, 0, len(u.store.shops)+len(u.shops))
	for id, state := range u.store.shops {
		if _, staged := u.shops[id]; staged {
			continue
		}
		states = append(states, state)
	}
	for _, state := range u.shops {
		states = append(states, state)
	}
	return states
}

// putOrder writes to the staging area of an active unit, or straight to the
// store otherwise. The caller holds a lock.
func (u *UnitOfWork) putOrder(state order.State) {
	if u.active {
		u.orders[state.ID] = stagedOrder{state: state}
		return
	}
	u.store.orders[state.ID] = state
}

func (u *UnitOfWork) removeOrder(id kernel.UUID) {
	if u.active {
		u.orders[id] = stagedOrder{deleted: true}
		return
	}
	delete(u.store.orders, id)
}

func (u *UnitOfWork) putShop(state shop.State) {
	if u.active {
		u.shops[state.ID] = state
		return
	}
	u.store.shops[state.ID] = state
}
