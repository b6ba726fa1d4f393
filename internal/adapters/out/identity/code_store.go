// Package identity backs OTP login: code stores (in memory or redis) and
// the user directory.
package identity

import (
	"context"
	"sync"
	"time"

	"grocery/internal/pkg/clock"
)

type pendingCode struct {
	code      string
	expiresAt time.Time
}

// MemoryCodeStore keeps codes in process memory. Expired codes are dropped
// lazily on the next Consume for the same phone.
type MemoryCodeStore struct {
	mu    sync.Mutex
	clock clock.Clock
	codes map[string]pendingCode
}

func NewMemoryCodeStore(clk clock.Clock) *MemoryCodeStore {
	return &MemoryCodeStore{clock: clk, codes: make(map[string]pendingCode)}
}

func (s *MemoryCodeStore) Save(_ context.Context, phone, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[phone] = pendingCode{code: code, expiresAt: s.clock.Now().Add(ttl)}
	return nil
}

func (s *MemoryCodeStore) Consume(_ context.Context, phone, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.codes[phone]
	if !ok {
		return false, nil
	}

	if !s.clock.Now().Before(pending.expiresAt) {
		delete(s.codes, phone)
		return false, nil
	}

	if pending.code != code {
		return false, nil
	}

	delete(s.codes, phone)
	return true, nil
}
