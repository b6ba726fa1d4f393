package cmd

import (
	"context"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/core/ports"

	"github.com/shopspring/decimal"
)

type seedItem struct {
	name  string
	price int64
	image string
}

var catalog = []seedItem{
	{"Milk", 60, "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400"},
	{"Bread", 40, "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400"},
	{"Eggs (12)", 80, "https://images.unsplash.com/photo-1582722872445-44dc5f7e3c8f?w=400"},
	{"Rice (1kg)", 70, "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400"},
	{"Sugar (1kg)", 50, "https://images.unsplash.com/photo-1519892300165-cb5542fb47c7?w=400"},
	{"Tomatoes (1kg)", 30, "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=400"},
	{"Potatoes (1kg)", 25, "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400"},
	{"Onions (1kg)", 35, "https://images.unsplash.com/photo-1580201092675-a0a6a6cafbb0?w=400"},
}

type seedShop struct {
	id    kernel.ShopID
	name  string
	rank  int
	stock []int
}

var defaultShops = []seedShop{
	{1, "Fresh Mart", 1, []int{50, 30, 40, 100, 80, 60, 70, 55}},
	{2, "Quick Grocery", 2, []int{40, 25, 35, 90, 70, 50, 65, 45}},
}

// DefaultShops builds the two shops a fresh installation starts with.
func DefaultShops() ([]*shop.Shop, error) {
	shops := make([]*shop.Shop, 0, len(defaultShops))
	for _, s := range defaultShops {
		items := make([]shop.StockItem, 0, len(catalog))
		for i, c := range catalog {
			item, err := shop.NewStockItem(i+1, c.name, decimal.NewFromInt(c.price), s.stock[i], c.image)
			if err != nil {
				return nil, fmt.Errorf("seed item %q: %w", c.name, err)
			}
			items = append(items, item)
		}

		created, err := shop.NewShop(s.id, s.name, s.rank, items)
		if err != nil {
			return nil, fmt.Errorf("seed shop %q: %w", s.name, err)
		}
		shops = append(shops, created)
	}
	return shops, nil
}

// SeedShops registers shops when the registry is empty. It reports whether
// anything was written.
func SeedShops(ctx context.Context, factory ports.UnitOfWorkFactory, shops []*shop.Shop) (bool, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.ShopRepository().GetAll(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, s := range shops {
		if err = uow.ShopRepository().Add(ctx, s); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
