package order

import (
	"errors"
	"fmt"
	"strings"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a catalog item name, the unit price the
// customer saw and the ordered quantity. Shops match lines against their
// inventory by name.
type Item struct {
	name      string
	unitPrice decimal.Decimal
	quantity  int
	guard     guard.ConstructorGuard
}

// MaxPriceDecimals is the number of fractional digits a unit price may carry.
// Stores keep money at cent precision.
const MaxPriceDecimals = 2

// NewItem validates and builds an order line.
//
// Parameters:
//   - name: catalog item name; surrounding spaces are trimmed
//   - unitPrice: price per unit, not negative, at most MaxPriceDecimals fractional digits
//   - quantity: number of units, greater than 0
//
// Returns:
//   - Item: the constructed line
//   - error: every validation failure joined together
//
// Example usage:
//
//	item, err := order.NewItem("Milk", decimal.NewFromInt(60), 2)
func NewItem(name string, unitPrice decimal.Decimal, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string {
	return i.name
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is unit price times quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", price))
	}
	if !price.Equal(price.Round(MaxPriceDecimals)) {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s has more than %d decimal places", price, MaxPriceDecimals))
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
