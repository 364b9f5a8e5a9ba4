package persistence

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
)

// ItemRepository exposes the read-only item catalog
type ItemRepository interface {
	// GetAll retrieves the full catalog
	GetAll(ctx context.Context) ([]*entity.Item, error)

	// GetByIDs retrieves the catalog rows matching the given ids
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the statement fails
	GetByIDs(ctx context.Context, ids []uint64) ([]*entity.Item, error)
}

// OwnedItemRepository manages the (account, item) quantity rows
type OwnedItemRepository interface {
	// GetByUser retrieves every owned-item row for an account
	GetByUser(ctx context.Context, userID uint64) ([]*entity.OwnedItem, error)

	// GetByUserAndItem retrieves the single row for an (account, item)
	// pair, or ErrNotFound when the account does not own the item yet
	GetByUserAndItem(ctx context.Context, userID, itemID uint64) (*entity.OwnedItem, error)

	// Create inserts a new owned-item row
	Create(ctx context.Context, owned *entity.OwnedItem) error

	// AddQuantity increments the quantity of an existing row
	//
	// Possible errors:
	// - ErrNotFound: if no row exists for the pair
	// - ErrDatabaseConnection: if the statement fails
	AddQuantity(ctx context.Context, userID, itemID uint64, delta int) error
}
