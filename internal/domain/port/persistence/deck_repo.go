package persistence

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
)

// DeckRepository defines methods to interact with deck ("mazo") data
type DeckRepository interface {
	// GetPlantsByUser retrieves the deck's plants joined with their slot
	// order for an account
	//
	// Possible errors:
	// - ErrDeckNotFound: if the account has no deck or it is empty
	// - ErrDatabaseConnection: if the statement fails
	GetPlantsByUser(ctx context.Context, userID uint64) ([]*entity.DeckPlant, error)

	// GetPlantsByCorreu is GetPlantsByUser resolved through the account email
	GetPlantsByCorreu(ctx context.Context, correu string) ([]*entity.DeckPlant, error)

	// GetByUser retrieves the raw deck row for an account, or ErrDeckNotFound
	GetByUser(ctx context.Context, userID uint64) (*entity.Deck, error)

	// Upsert creates the account's deck row or overwrites its slots
	Upsert(ctx context.Context, deck *entity.Deck) error

	// Exists reports whether the account has a deck row
	Exists(ctx context.Context, userID uint64) (bool, error)
}
