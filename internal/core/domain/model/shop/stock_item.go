package shop

import (
	"errors"
	"fmt"
	"strings"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxStock bounds a single stock count.
const MaxStock = 1_000_000

var ErrStockItemIsNotConstructed = errors.New("StockItem must be created via NewStockItem constructor")

// StockItem is one catalog entry of a shop together with the number of units
// on hand. Items are matched against order lines by name; the numeric id is
// what the inventory endpoints use.
//
// StockItem is a value: SetStock on the owning Shop replaces it.
type StockItem struct {
	id       int
	name     string
	price    decimal.Decimal
	stock    int
	imageURL string
	guard    guard.ConstructorGuard
}

// NewStockItem validates every attribute. The name is trimmed, the price must
// not be negative and the stock must be within [0, MaxStock].
//
// Example:
//
//	milk, err := shop.NewStockItem(1, "Milk", decimal.NewFromInt(60), 50, "/images/milk.png")
func NewStockItem(id int, name string, price decimal.Decimal, stock int, imageURL string) (StockItem, error) {
	item := StockItem{
		imageURL: strings.TrimSpace(imageURL),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setStock(stock),
	); err != nil {
		return StockItem{}, err
	}

	return item, nil
}

func (s StockItem) Validate() error {
	return s.guard.Validate(ErrStockItemIsNotConstructed)
}

func (s StockItem) ID() int {
	return s.id
}

func (s StockItem) Name() string {
	return s.name
}

func (s StockItem) Price() decimal.Decimal {
	return s.price
}

func (s StockItem) Stock() int {
	return s.stock
}

func (s StockItem) ImageURL() string {
	return s.imageURL
}

// withStock returns a copy holding stock units.
func (s StockItem) withStock(stock int) (StockItem, error) {
	if err := s.setStock(stock); err != nil {
		return StockItem{}, err
	}
	s.stock = stock
	return s, nil
}

func (s *StockItem) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", id))
	}
	s.id = id
	return nil
}

func (s *StockItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	s.name = name
	return nil
}

func (s *StockItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	if !price.Equal(price.Round(order.MaxPriceDecimals)) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s has more than %d decimal places", price, order.MaxPriceDecimals))
	}
	s.price = price
	return nil
}

func (s *StockItem) setStock(stock int) error {
	if stock < 0 || stock > MaxStock {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, MaxStock)
	}
	s.stock = stock
	return nil
}
