package entity

import (
	"time"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// User represents a player account ("usuari") with its BTC balance
type User struct {
	ID           uint64
	Nom          string
	Correu       string
	Contrasenya  string // bcrypt hash, never the plain password
	Edat         int
	Nacionalitat string
	CodiPostal   string
	ImatgePerfil string
	Btc          decimal.Decimal
	Admin        bool
	Superadmin   bool
	LE           int
	Nivell       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new account with registration defaults applied
func NewUser(nom, correu, hashedPassword string, timeProvider coreport.TimeProvider) (*User, error) {
	if nom == "" || correu == "" || hashedPassword == "" {
		return nil, errs.ErrMissingFields
	}

	now := timeProvider.Now()
	return &User{
		Nom:         nom,
		Correu:      correu,
		Contrasenya: hashedPassword,
		Btc:         decimal.Zero,
		LE:          0,
		Nivell:      1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsAdmin reports whether the account carries any admin role
func (u *User) IsAdmin() bool {
	return u.Admin || u.Superadmin
}

// CanManage reports whether the account may modify the target account.
// Accounts manage themselves; admins manage anyone.
func (u *User) CanManage(targetID uint64) bool {
	return u.ID == targetID || u.IsAdmin()
}

// CanAfford checks whether the balance covers the given cost
func (u *User) CanAfford(cost decimal.Decimal) bool {
	return u.Btc.GreaterThanOrEqual(cost)
}

// Debit subtracts cost from the balance. Returns ErrInsufficientBalance
// when the balance does not cover it.
func (u *User) Debit(cost decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !u.CanAfford(cost) {
		return errs.ErrInsufficientBalance
	}
	u.Btc = u.Btc.Sub(cost)
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds amount to the balance. Negative amounts are allowed as long
// as the resulting balance stays non-negative.
func (u *User) Credit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	next := u.Btc.Add(amount)
	if next.IsNegative() {
		return errs.ErrInsufficientBalance
	}
	u.Btc = next
	u.UpdatedAt = timeProvider.Now()
	return nil
}
