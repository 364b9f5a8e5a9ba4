package core

import "time"

// TokenService issues and verifies bearer tokens for accounts
type TokenService interface {
	// GenerateToken signs a token carrying the account id
	GenerateToken(userID uint64, expiry time.Duration) (string, error)
	// VerifyToken checks the signature and expiry and returns the account id
	//
	// Possible errors:
	// - ErrTokenExpired: if the token is past its expiry
	// - ErrTokenInvalid: for any other verification failure
	VerifyToken(token string) (uint64, error)
}

// PasswordHasher hashes and verifies account passwords
type PasswordHasher interface {
	// Hash derives a one-way hash from the plain password
	Hash(password string) (string, error)
	// Compare reports whether plain matches the stored hash
	Compare(hashed, plain string) bool
}
