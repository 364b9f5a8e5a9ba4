package persistence

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UserRepository defines essential methods to interact with account data
type UserRepository interface {
	// GetAll retrieves every account
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the statement fails
	GetAll(ctx context.Context) ([]*entity.User, error)

	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the ID exists
	// - ErrDatabaseConnection: if the statement fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves an account by ID holding an exclusive row
	// lock for the duration of the surrounding transaction. Must only be
	// called on a transaction-bound repository; it is what serializes
	// concurrent purchases against one account.
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the ID exists
	// - ErrDatabaseConnection: if the statement fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// GetByCorreu retrieves an account by email
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the email exists
	// - ErrDatabaseConnection: if the statement fails
	GetByCorreu(ctx context.Context, correu string) (*entity.User, error)

	// Create inserts a new account and fills in its generated ID
	//
	// Possible errors:
	// - ErrDuplicateUser: if an account with the same email exists
	// - ErrDatabaseConnection: if the statement fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile updates the mutable profile columns of an account
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the ID exists
	// - ErrDatabaseConnection: if the statement fails
	UpdateProfile(ctx context.Context, user *entity.User) error

	// AdjustBalance applies btc = btc + delta to an account. A negative
	// delta debits; the caller is responsible for the balance check.
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the ID exists
	// - ErrDatabaseConnection: if the statement fails
	AdjustBalance(ctx context.Context, userID uint64, delta decimal.Decimal) error

	// Delete removes an account by ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the statement fails
	Delete(ctx context.Context, id uint64) error
}
