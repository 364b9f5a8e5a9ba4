package persistence

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
)

// PlantRepository defines methods to interact with plant data
type PlantRepository interface {
	// GetAll retrieves every plant
	GetAll(ctx context.Context) ([]*entity.Plant, error)

	// GetByID retrieves a plant by ID
	//
	// Possible errors:
	// - ErrPlantNotFound: if no plant with the ID exists
	// - ErrDatabaseConnection: if the statement fails
	GetByID(ctx context.Context, id uint64) (*entity.Plant, error)

	// GetByUser retrieves every plant owned by an account
	GetByUser(ctx context.Context, userID uint64) ([]*entity.Plant, error)

	// Create inserts a new plant and fills in its generated ID
	Create(ctx context.Context, plant *entity.Plant) error

	// Update overwrites a plant's mutable columns
	//
	// Possible errors:
	// - ErrPlantNotFound: if no plant with the ID exists
	Update(ctx context.Context, plant *entity.Plant) error

	// Delete removes a plant by ID. Deck slots referencing the plant are
	// not guarded; the caller accepts dangling references.
	Delete(ctx context.Context, id uint64) error
}
