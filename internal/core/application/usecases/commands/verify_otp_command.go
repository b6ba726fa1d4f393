package commands

import (
	"errors"
	"strings"

	"grocery/internal/core/domain/model/user"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrVerifyOTPCommandIsNotConstructed = errors.New(
	"VerifyOTPCommand must be created via NewVerifyOTPCommand constructor",
)

// VerifyOTPCommand logs a user in. Name and role are only used the first
// time a phone is seen.
type VerifyOTPCommand struct {
	phone string
	code  string
	name  string
	role  user.Role

	guard guard.ConstructorGuard
}

func NewVerifyOTPCommand(phone, code, name string, role user.Role) (VerifyOTPCommand, error) {
	cmd := VerifyOTPCommand{
		phone: strings.TrimSpace(phone),
		code:  strings.TrimSpace(code),
		name:  strings.TrimSpace(name),
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	var phoneErr, codeErr error
	if cmd.phone == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}
	if cmd.code == "" {
		codeErr = errs.NewValueIsRequiredError("otp")
	}

	if err := errors.Join(phoneErr, codeErr, role.Validate()); err != nil {
		return VerifyOTPCommand{}, err
	}

	return cmd, nil
}

func (c VerifyOTPCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOTPCommandIsNotConstructed)
}

func (c VerifyOTPCommand) Phone() string {
	return c.phone
}

func (c VerifyOTPCommand) Code() string {
	return c.code
}

func (c VerifyOTPCommand) Name() string {
	return c.name
}

func (c VerifyOTPCommand) Role() user.Role {
	return c.role
}
