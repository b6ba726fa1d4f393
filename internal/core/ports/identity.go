package ports

import (
	"context"
	"time"

	"grocery/internal/core/domain/model/user"
)

// OTPCodeStore keeps one pending verification code per phone.
type OTPCodeStore interface {
	// Save stores code for phone, replacing an earlier one, for ttl.
	Save(ctx context.Context, phone, code string, ttl time.Duration) error

	// Consume reports whether code matches the stored one and removes it on
	// a match.
	Consume(ctx context.Context, phone, code string) (bool, error)
}

// UserDirectory stores users registered through OTP login.
type UserDirectory interface {
	// FindByPhone returns errs.ObjectNotFoundError with ParamName "user"
	// when phone is unknown.
	FindByPhone(ctx context.Context, phone string) (*user.User, error)

	// Add registers u. The phone must not be registered yet.
	Add(ctx context.Context, u *user.User) error

	// CountByRole is used to spread shop owners over the registry.
	CountByRole(ctx context.Context, role user.Role) (int, error)
}
