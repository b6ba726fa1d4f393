package shop_test

import (
	"testing"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockItem(t *testing.T, id int, name string, stock int) shop.StockItem {
	t.Helper()
	item, err := shop.NewStockItem(id, name, decimal.NewFromInt(10), stock, "")
	require.NoError(t, err)
	return item
}

func orderItem(t *testing.T, name string, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(name, decimal.NewFromInt(10), qty)
	require.NoError(t, err)
	return item
}

func createValidShop(t *testing.T) *shop.Shop {
	t.Helper()
	s, err := shop.NewShop(1, "Fresh Mart", 1, []shop.StockItem{
		stockItem(t, 2, "Bread", 3),
		stockItem(t, 1, "Milk", 5),
	})
	require.NoError(t, err)
	return s
}

func TestNewShop(t *testing.T) {
	t.Run("should create shop with inventory ordered by id", func(t *testing.T) {
		s := createValidShop(t)

		require.NoError(t, s.Validate())
		assert.Equal(t, kernel.ShopID(1), s.ID())
		assert.Equal(t, "Fresh Mart", s.Name())
		assert.Equal(t, 1, s.PriorityRank())
		inventory := s.Inventory()
		require.Len(t, inventory, 2)
		assert.Equal(t, "Milk", inventory[0].Name())
		assert.Equal(t, "Bread", inventory[1].Name())
	})

	t.Run("should reject invalid attributes", func(t *testing.T) {
		s, err := shop.NewShop(0, " ", -1, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "priority rank")
	})

	t.Run("should reject duplicate item names", func(t *testing.T) {
		_, err := shop.NewShop(1, "Fresh Mart", 1, []shop.StockItem{
			stockItem(t, 1, "Milk", 1),
			stockItem(t, 2, "Milk", 1),
		})

		require.ErrorIs(t, err, shop.ErrDuplicateStockItem)
	})

	t.Run("should reject duplicate item ids", func(t *testing.T) {
		_, err := shop.NewShop(1, "Fresh Mart", 1, []shop.StockItem{
			stockItem(t, 1, "Milk", 1),
			stockItem(t, 1, "Bread", 1),
		})

		require.ErrorIs(t, err, shop.ErrDuplicateStockItem)
	})

	t.Run("should reject items not built by NewStockItem", func(t *testing.T) {
		_, err := shop.NewShop(1, "Fresh Mart", 1, []shop.StockItem{{}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should round trip through state", func(t *testing.T) {
		s := createValidShop(t)

		restored, err := shop.RestoreShop(s.State())

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(s))
		assert.Equal(t, s.State(), restored.State())
	})
}

func TestShop_Withdraw(t *testing.T) {
	t.Run("should decrement every line", func(t *testing.T) {
		s := createValidShop(t)

		err := s.Withdraw([]order.Item{orderItem(t, "Milk", 2), orderItem(t, "Bread", 3)})

		require.NoError(t, err)
		assert.Equal(t, 3, s.StockOf("Milk"))
		assert.Equal(t, 0, s.StockOf("Bread"))
	})

	t.Run("should change nothing when one line is short", func(t *testing.T) {
		s := createValidShop(t)

		err := s.Withdraw([]order.Item{orderItem(t, "Milk", 2), orderItem(t, "Bread", 4)})

		var insufficient *shop.InsufficientInventoryError
		require.ErrorAs(t, err, &insufficient)
		require.ErrorIs(t, err, shop.ErrInsufficientInventory)
		assert.Equal(t, "Bread", insufficient.Item)
		assert.Equal(t, 4, insufficient.Requested)
		assert.Equal(t, 3, insufficient.Available)
		assert.Equal(t, 5, s.StockOf("Milk"))
		assert.Equal(t, 3, s.StockOf("Bread"))
	})

	t.Run("should treat unknown names as out of stock", func(t *testing.T) {
		s := createValidShop(t)

		err := s.CanFulfil([]order.Item{orderItem(t, "Caviar", 1)})

		var insufficient *shop.InsufficientInventoryError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 0, insufficient.Available)
	})

	t.Run("should sum lines with the same name", func(t *testing.T) {
		s := createValidShop(t)

		err := s.Withdraw([]order.Item{orderItem(t, "Milk", 3), orderItem(t, "Milk", 3)})

		require.ErrorIs(t, err, shop.ErrInsufficientInventory)
		assert.Equal(t, 5, s.StockOf("Milk"))

		require.NoError(t, s.Withdraw([]order.Item{orderItem(t, "Milk", 2), orderItem(t, "Milk", 3)}))
		assert.Equal(t, 0, s.StockOf("Milk"))
	})

	t.Run("can fulfil does not modify stock", func(t *testing.T) {
		s := createValidShop(t)

		require.NoError(t, s.CanFulfil([]order.Item{orderItem(t, "Milk", 5)}))
		assert.Equal(t, 5, s.StockOf("Milk"))
	})
}

func TestShop_SetStock(t *testing.T) {
	t.Run("should overwrite stock", func(t *testing.T) {
		s := createValidShop(t)

		require.NoError(t, s.SetStock(1, 42))

		item, ok := s.Item(1)
		require.True(t, ok)
		assert.Equal(t, 42, item.Stock())
		assert.Equal(t, 42, s.StockOf("Milk"))
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		s := createValidShop(t)

		err := s.SetStock(1, -1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 5, s.StockOf("Milk"))
	})

	t.Run("should report unknown item", func(t *testing.T) {
		s := createValidShop(t)

		err := s.SetStock(99, 1)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.True(t, errs.IsObjectNotFound(err, "stock item"))
	})
}
