package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/delivery-ops/internal/config"
)

// ErrPasswordTooLong is returned for passwords bcrypt would silently truncate.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// PasswordHasher hashes console user passwords at the configured bcrypt cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher reads AUTH_BCRYPT_COST from cfg. Costs outside bcrypt's
// accepted range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cfg config.AuthConfig) PasswordHasher {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordHasher{cost: cost}
}

// Cost reports the effective bcrypt cost.
func (h PasswordHasher) Cost() int {
	return h.cost
}

// Hash hashes a plaintext password.
func (h PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a password against its hashed value.
func (h PasswordHasher) Compare(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// NeedsRehash reports whether hashed was produced below the configured cost.
func (h PasswordHasher) NeedsRehash(hashed string) bool {
	cost, err := bcrypt.Cost([]byte(hashed))
	if err != nil {
		return true
	}
	return cost < h.cost
}

// IsMismatch reports whether err means the password was wrong rather than
// the stored hash being unusable.
func IsMismatch(err error) bool {
	return errors.Is(err, bcrypt.ErrMismatchedHashAndPassword)
}
