package persistence

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
)

// ChestRepository defines methods to interact with chest ("cofre") data
type ChestRepository interface {
	// GetByUser retrieves every chest belonging to an account
	//
	// Possible errors:
	// - ErrChestNotFound: if the account has no chests
	// - ErrDatabaseConnection: if the statement fails
	GetByUser(ctx context.Context, userID uint64) ([]*entity.Chest, error)

	// Create inserts a new chest and fills in its generated ID
	Create(ctx context.Context, chest *entity.Chest) error

	// Delete removes a chest scoped to its owner
	//
	// Possible errors:
	// - ErrChestNotFound: if no matching chest exists
	Delete(ctx context.Context, userID, chestID uint64) error
}
