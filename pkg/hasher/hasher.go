package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and checks one-way password hashes. Implementations must
// salt every hash, so hashing the same input twice yields different encodings.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hashed, candidate string) bool
}

// BcryptHasher is the adaptive bcrypt implementation used in production.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify recomputes the hash from the embedded salt and compares in constant
// time. It never reports why a check failed.
func (h *BcryptHasher) Verify(hashed, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(candidate)) == nil
}
