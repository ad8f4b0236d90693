package encode

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 10

// PasswordHasher turns plaintext passwords into salted hashes and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor. Out of range
// costs fall back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash salts and hashes password. The salt is embedded in the result.
func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}
	return string(b), nil
}

// Check reports whether password matches hash. A malformed hash never matches.
func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
