package commands

import (
	"errors"
	"strings"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrSendOTPCommandIsNotConstructed = errors.New(
	"SendOTPCommand must be created via NewSendOTPCommand constructor",
)

// SendOTPCommand asks for a login code for phone.
type SendOTPCommand struct {
	phone string

	guard guard.ConstructorGuard
}

func NewSendOTPCommand(phone string) (SendOTPCommand, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return SendOTPCommand{}, errs.NewValueIsRequiredError("phone")
	}

	return SendOTPCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SendOTPCommand) Validate() error {
	return c.guard.Validate(ErrSendOTPCommandIsNotConstructed)
}

func (c SendOTPCommand) Phone() string {
	return c.phone
}
