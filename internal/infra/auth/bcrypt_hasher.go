// Package auth provides concrete implementations for credential-related domain services.
package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"abacus/config"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// The cost (work factor) is operator-tunable through configuration; bcrypt
// generates and embeds a fresh 128-bit salt on every Hash call.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It reads the work factor from config and returns the implementation as a
// service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost constructs a hasher with an explicit work factor.
func NewBcryptHasherWithCost(cost int) (service.PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// Two calls with the same password produce different encoded strings because
// of the per-call salt; both verify against the original password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate bcrypt hash")
	}

	return string(bytes), nil
}

// Verify compares a plaintext password with a stored bcrypt hash.
// A wrong password is an expected outcome and returns (false, nil); a stored
// value that bcrypt cannot parse returns (false, err) matching
// domainerrors.ErrMalformedHash so callers can surface it as a data-integrity
// fault instead of "password incorrect".
func (h *bcryptHasher) Verify(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, errors.Wrapf(domainerrors.ErrMalformedHash, "cannot parse stored hash: %v", err)
}
