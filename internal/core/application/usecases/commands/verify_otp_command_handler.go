package commands

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/user"
	"grocery/internal/core/domain/services"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

var (
	// ErrInvalidOTP is returned for a wrong, expired or never issued code.
	ErrInvalidOTP = errors.New("invalid otp")

	ErrNoShopsRegistered = errors.New("no shops registered")
)

// VerifyOTPCommandHandler checks the code and returns the user for the
// phone, registering it on first login. New owners are spread over the
// shop chain round-robin: the n-th owner manages chain[n % len(chain)].
type VerifyOTPCommandHandler struct {
	codes      ports.OTPCodeStore
	users      ports.UserDirectory
	uowFactory ShopUoWFactory
}

func NewVerifyOTPCommandHandler(
	codes ports.OTPCodeStore,
	users ports.UserDirectory,
	uowFactory ShopUoWFactory,
) VerifyOTPCommandHandler {
	return VerifyOTPCommandHandler{
		codes:      codes,
		users:      users,
		uowFactory: uowFactory,
	}
}

func (h VerifyOTPCommandHandler) Handle(ctx context.Context, cmd VerifyOTPCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ok, err := h.codes.Consume(ctx, cmd.Phone(), cmd.Code())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidOTP
	}

	existing, err := h.users.FindByPhone(ctx, cmd.Phone())
	if err == nil {
		return existing, nil
	}
	if !errs.IsObjectNotFound(err, "user") {
		return nil, err
	}

	var shopID *kernel.ShopID
	if cmd.Role() == user.Owner {
		id, assignErr := h.nextOwnerShop(ctx)
		if assignErr != nil {
			return nil, assignErr
		}
		shopID = &id
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Phone(), cmd.Name(), cmd.Role(), shopID)
	if err != nil {
		return nil, err
	}

	if err = h.users.Add(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (h VerifyOTPCommandHandler) nextOwnerShop(ctx context.Context) (kernel.ShopID, error) {
	shops, err := h.uowFactory.Create().ShopRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	chain := services.NewChain(shops)
	if len(chain) == 0 {
		return 0, ErrNoShopsRegistered
	}

	owners, err := h.users.CountByRole(ctx, user.Owner)
	if err != nil {
		return 0, err
	}

	return chain[owners%len(chain)], nil
}
