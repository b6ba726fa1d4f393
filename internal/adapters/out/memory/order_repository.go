package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
)

var ErrOrderAlreadyExists = errors.New("order already exists")

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	unlock := r.uow.lockForWrite()
	defer unlock()

	if _, ok := r.uow.lookupOrder(aggregate.ID()); ok {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, aggregate.ID())
	}

	r.uow.putOrder(aggregate.State())
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	unlock := r.uow.lockForWrite()
	defer unlock()

	if _, ok := r.uow.lookupOrder(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.uow.putOrder(aggregate.State())
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	unlock := r.uow.lockForWrite()
	defer unlock()

	if _, ok := r.uow.lookupOrder(id); !ok {
		return errs.NewObjectNotFoundError("order", id)
	}

	r.uow.removeOrder(id)
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	unlock := r.uow.lockForRead()
	defer unlock()

	state, ok := r.uow.lookupOrder(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return order.RestoreOrder(state)
}

func (r *OrderRepository) GetAllPending(_ context.Context) ([]*order.Order, error) {
	orders, err := r.find(func(s order.State) bool { return s.Status == order.Pending })
	if err != nil {
		return nil, err
	}

	slices.SortFunc(orders, func(a, b *order.Order) int {
		return cmp.Or(a.CreatedAt().Compare(b.CreatedAt()), cmp.Compare(a.ID().String(), b.ID().String()))
	})
	return orders, nil
}

func (r *OrderRepository) GetAllAcceptedByShop(_ context.Context, shopID kernel.ShopID) ([]*order.Order, error) {
	orders, err := r.find(func(s order.State) bool {
		return s.Status == order.Accepted && s.AssignedShopID != nil && *s.AssignedShopID == shopID
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(orders, func(a, b *order.Order) int {
		return cmp.Or(b.AcceptedAt().Compare(*a.AcceptedAt()), cmp.Compare(a.ID().String(), b.ID().String()))
	})
	return orders, nil
}

func (r *OrderRepository) GetAllByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	orders, err := r.find(func(s order.State) bool { return s.CustomerID.IsEqual(customerID) })
	if err != nil {
		return nil, err
	}

	slices.SortFunc(orders, func(a, b *order.Order) int {
		return cmp.Or(b.CreatedAt().Compare(a.CreatedAt()), cmp.Compare(a.ID().String(), b.ID().String()))
	})
	return orders, nil
}

func (r *OrderRepository) find(match func(order.State) bool) ([]*order.Order, error) {
	unlock := r.uow.lockForRead()
	defer unlock()

	orders := make([]*order.Order, 0)
	for _, state := range r.uow.allOrders() {
		if !match(state) {
			continue
		}
		o, err := order.RestoreOrder(state)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
