package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/pkg/errs"
)

var ErrShopAlreadyExists = errors.New("shop already exists")

type ShopRepository struct {
	uow *UnitOfWork
}

func (r *ShopRepository) Add(_ context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	unlock := r.uow.lockForWrite()
	defer unlock()

	if _, ok := r.uow.lookupShop(aggregate.ID()); ok {
		return fmt.Errorf("%w: %s", ErrShopAlreadyExists, aggregate.ID())
	}

	r.uow.putShop(aggregate.State())
	return nil
}

func (r *ShopRepository) Update(_ context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	unlock := r.uow.lockForWrite()
	defer unlock()

	if _, ok := r.uow.lookupShop(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("shop", aggregate.ID())
	}

	r.uow.putShop(aggregate.State())
	return nil
}

func (r *ShopRepository) Get(_ context.Context, id kernel.ShopID) (*shop.Shop, error) {
	unlock := r.uow.lockForRead()
	defer unlock()

	state, ok := r.uow.lookupShop(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("shop", id)
	}

	return shop.RestoreShop(state)
}

func (r *ShopRepository) GetAll(_ context.Context) ([]*shop.Shop, error) {
	unlock := r.uow.lockForRead()
	defer unlock()

	shops := make([]*shop.Shop, 0)
	for _, state := range r.uow.allShops() {
		s, err := shop.RestoreShop(state)
		if err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}

	slices.SortFunc(shops, func(a, b *shop.Shop) int {
		return cmp.Or(cmp.Compare(a.PriorityRank(), b.PriorityRank()), cmp.Compare(a.ID(), b.ID()))
	})
	return shops, nil
}
