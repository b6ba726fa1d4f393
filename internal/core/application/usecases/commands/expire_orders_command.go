package commands

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var ErrExpireOrdersCommandIsNotConstructed = errors.New(
	"ExpireOrdersCommand must be created via NewExpireOrdersCommand constructor",
)

// ExpireOrdersCommand triggers one expiry sweep over all Pending orders.
type ExpireOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewExpireOrdersCommand() ExpireOrdersCommand {
	return ExpireOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ExpireOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOrdersCommandIsNotConstructed)
}
