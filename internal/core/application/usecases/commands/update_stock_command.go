package commands

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/shop"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrUpdateStockCommandIsNotConstructed = errors.New(
	"UpdateStockCommand must be created via NewUpdateStockCommand constructor",
)

// UpdateStockCommand overwrites the units on hand of one stock item.
type UpdateStockCommand struct {
	shopID kernel.ShopID
	itemID int
	stock  int

	guard guard.ConstructorGuard
}

func NewUpdateStockCommand(shopID kernel.ShopID, itemID int, stock int) (UpdateStockCommand, error) {
	var itemErr, stockErr error
	if itemID <= 0 {
		itemErr = errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", itemID))
	}
	if stock < 0 || stock > shop.MaxStock {
		stockErr = errs.NewValueIsOutOfRangeError("stock", stock, 0, shop.MaxStock)
	}

	if err := errors.Join(shopID.Validate(), itemErr, stockErr); err != nil {
		return UpdateStockCommand{}, err
	}

	return UpdateStockCommand{
		shopID: shopID,
		itemID: itemID,
		stock:  stock,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
}

func (c UpdateStockCommand) ShopID() kernel.ShopID {
	return c.shopID
}

func (c UpdateStockCommand) ItemID() int {
	return c.itemID
}

func (c UpdateStockCommand) Stock() int {
	return c.stock
}
