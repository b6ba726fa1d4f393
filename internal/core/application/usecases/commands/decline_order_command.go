package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrDeclineOrderCommandIsNotConstructed = errors.New(
	"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
)

// DeclineOrderCommand removes a shop from an order's chain for good.
type DeclineOrderCommand struct {
	orderID kernel.UUID
	shopID  kernel.ShopID

	guard guard.ConstructorGuard
}

func NewDeclineOrderCommand(orderID kernel.UUID, shopID kernel.ShopID) (DeclineOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), shopID.Validate()); err != nil {
		return DeclineOrderCommand{}, err
	}

	return DeclineOrderCommand{
		orderID: orderID,
		shopID:  shopID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

func (c DeclineOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeclineOrderCommand) ShopID() kernel.ShopID {
	return c.shopID
}
