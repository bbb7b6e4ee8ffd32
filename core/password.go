package core

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor shared by hashing and verification.
const DefaultBcryptCost = 10

// PasswordHasher wraps bcrypt at a fixed work factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using the given cost. Costs outside
// bcrypt's valid range fall back to DefaultBcryptCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of password. It fails only on
// resource exhaustion or an over-long password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. bcrypt performs the
// comparison in constant time.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
