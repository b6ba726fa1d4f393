package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"grocery/internal/core/domain/model/user"
	"grocery/internal/pkg/errs"
)

var ErrPhoneAlreadyRegistered = errors.New("phone already registered")

// MemoryUserDirectory indexes users by phone.
type MemoryUserDirectory struct {
	mu      sync.RWMutex
	byPhone map[string]*user.User
}

func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{byPhone: make(map[string]*user.User)}
}

func (d *MemoryUserDirectory) FindByPhone(_ context.Context, phone string) (*user.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.byPhone[phone]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", phone)
	}
	return u, nil
}

func (d *MemoryUserDirectory) Add(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byPhone[u.Phone()]; ok {
		return fmt.Errorf("%w: %s", ErrPhoneAlreadyRegistered, u.Phone())
	}
	d.byPhone[u.Phone()] = u
	return nil
}

func (d *MemoryUserDirectory) CountByRole(_ context.Context, role user.Role) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	count := 0
	for _, u := range d.byPhone {
		if u.Role() == role {
			count++
		}
	}
	return count, nil
}
