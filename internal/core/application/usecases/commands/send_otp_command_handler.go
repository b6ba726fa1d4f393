package commands

import (
	"context"
	"log/slog"
	"time"

	"grocery/internal/core/ports"
)

// CodeGenerator produces one-time codes.
type CodeGenerator func() string

// FixedCode always issues code. Used while no SMS gateway is wired.
func FixedCode(code string) CodeGenerator {
	return func() string { return code }
}

// SendOTPCommandHandler issues a code and stores it for ttl. Delivery to the
// phone is only logged.
type SendOTPCommandHandler struct {
	codes    ports.OTPCodeStore
	generate CodeGenerator
	ttl      time.Duration
	logger   *slog.Logger
}

func NewSendOTPCommandHandler(
	codes ports.OTPCodeStore,
	generate CodeGenerator,
	ttl time.Duration,
	logger *slog.Logger,
) SendOTPCommandHandler {
	return SendOTPCommandHandler{
		codes:    codes,
		generate: generate,
		ttl:      ttl,
		logger:   logger.With("component", "otp"),
	}
}

func (h SendOTPCommandHandler) Handle(ctx context.Context, cmd SendOTPCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.codes.Save(ctx, cmd.Phone(), h.generate(), h.ttl); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "otp sent", "phone", cmd.Phone())
	return nil
}
