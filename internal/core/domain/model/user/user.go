// Package user models the people who log in with a one-time code: customers
// placing orders and shop owners acting on them.
package user

import (
	"errors"
	"fmt"
	"strings"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

type Role string

const (
	Customer Role = "customer"
	Owner    Role = "owner"
)

func (r Role) Validate() error {
	switch r {
	case Customer, Owner:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// User is identified by a UUID and looked up by phone. Owners always manage
// exactly one shop; customers never do.
type User struct {
	id     kernel.UUID
	phone  string
	name   string
	role   Role
	shopID *kernel.ShopID
	guard  guard.ConstructorGuard
}

// NewUser validates the role/shop pairing: shopID is required for owners and
// must be nil for customers.
func NewUser(id kernel.UUID, phone, name string, role Role, shopID *kernel.ShopID) (*User, error) {
	u := &User{
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setPhone(phone),
		u.setRole(role, shopID),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() Role {
	return u.role
}

// ShopID is nil for customers.
func (u *User) ShopID() *kernel.ShopID {
	if u.shopID == nil {
		return nil
	}
	id := *u.shopID
	return &id
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	u.phone = phone
	return nil
}

func (u *User) setRole(role Role, shopID *kernel.ShopID) error {
	if err := role.Validate(); err != nil {
		return err
	}

	switch {
	case role == Owner && shopID == nil:
		return errs.NewValueIsRequiredError("shop id")
	case role == Owner:
		if err := shopID.Validate(); err != nil {
			return err
		}
		id := *shopID
		u.shopID = &id
	case shopID != nil:
		return errs.NewValueIsInvalidErrorWithCause("shop id", errors.New("customers do not manage a shop"))
	}

	u.role = role
	return nil
}
