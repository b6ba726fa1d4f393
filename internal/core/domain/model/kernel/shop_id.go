package kernel

import (
	"fmt"
	"strconv"

	"grocery/internal/pkg/errs"
)

// ShopID identifies a fulfillment shop. Shop ids are small positive integers
// assigned by the shop registry.
type ShopID int64

// NewShopID validates that id is positive.
func NewShopID(id int64) (ShopID, error) {
	shopID := ShopID(id)
	if err := shopID.Validate(); err != nil {
		return 0, err
	}
	return shopID, nil
}

// Validate rejects zero and negative ids.
func (s ShopID) Validate() error {
	if s <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("shop id", fmt.Errorf("%d is not greater than 0", int64(s)))
	}
	return nil
}

func (s ShopID) String() string {
	return strconv.FormatInt(int64(s), 10)
}

func (s ShopID) Int64() int64 {
	return int64(s)
}
