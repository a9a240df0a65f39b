// Package auth implements password credential handling on top of bcrypt.
package auth

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// PasswordService hashes and verifies bcrypt credentials. bcrypt is
// CPU-bound, so concurrent calls are capped at GOMAXPROCS to keep a burst
// of logins from occupying every scheduler thread.
type PasswordService struct {
	cost int
	sem  *semaphore.Weighted
}

func NewPasswordService(cost int) *PasswordService {
	return &PasswordService{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}
}

// Hash produces a bcrypt hash with a fresh per-call salt. The cost and salt
// are encoded in the returned string.
func (s *PasswordService) Hash(ctx context.Context, password string) (string, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.sem.Release(1)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches storedHash. A mismatch is
// (false, nil). A malformed stored hash is an error, not a verdict: callers
// must not present a corrupt record as a failed login.
func (s *PasswordService) Verify(ctx context.Context, password, storedHash string) (bool, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer s.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
