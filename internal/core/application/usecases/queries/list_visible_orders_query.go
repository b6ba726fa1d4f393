package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrListVisibleOrdersQueryIsNotConstructed = errors.New(
	"ListVisibleOrdersQuery must be created via NewListVisibleOrdersQuery constructor",
)

// ListVisibleOrdersQuery asks which Pending orders a shop may act on now.
type ListVisibleOrdersQuery struct {
	shopID kernel.ShopID
	guard  guard.ConstructorGuard
}

func NewListVisibleOrdersQuery(shopID kernel.ShopID) (ListVisibleOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return ListVisibleOrdersQuery{}, err
	}
	return ListVisibleOrdersQuery{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVisibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListVisibleOrdersQueryIsNotConstructed)
}

func (q ListVisibleOrdersQuery) ShopID() kernel.ShopID {
	return q.shopID
}
