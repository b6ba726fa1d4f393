package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand is a shop's attempt to take an order.
type AcceptOrderCommand struct {
	orderID kernel.UUID
	shopID  kernel.ShopID

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID kernel.UUID, shopID kernel.ShopID) (AcceptOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), shopID.Validate()); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		orderID: orderID,
		shopID:  shopID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AcceptOrderCommand) ShopID() kernel.ShopID {
	return c.shopID
}
