package services_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/shop"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, lines map[string]int) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, len(lines))
	for name, qty := range lines {
		item, err := order.NewItem(name, decimal.NewFromInt(10), qty)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Asha", items, createdAt)
	require.NoError(t, err)
	return o
}

func newShop(t *testing.T, id kernel.ShopID, rank int, stock map[string]int) *shop.Shop {
	t.Helper()
	items := make([]shop.StockItem, 0, len(stock))
	itemID := 1
	for name, units := range stock {
		item, err := shop.NewStockItem(itemID, name, decimal.NewFromInt(10), units, "")
		require.NoError(t, err)
		items = append(items, item)
		itemID++
	}
	s, err := shop.NewShop(id, "Shop "+id.String(), rank, items)
	require.NoError(t, err)
	return s
}
