package auth

import (
	"github.com/gameplants/plants-api/internal/domain/port/core"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements core.PasswordHasher using bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the default bcrypt cost
func NewBcryptHasher() core.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a one-way hash from the plain password
func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Compare reports whether plain matches the stored hash
func (h *BcryptHasher) Compare(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
