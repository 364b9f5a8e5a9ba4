package deck

import (
	"context"
	"errors"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/domain/port/persistence"
)

// DeckUseCase handles deck ("mazo") business logic
type DeckUseCase struct {
	deckRepo persistence.DeckRepository
	userRepo persistence.UserRepository
	logger   coreport.Logger
}

// NewDeckUseCase creates a new DeckUseCase
func NewDeckUseCase(
	deckRepo persistence.DeckRepository,
	userRepo persistence.UserRepository,
	logger coreport.Logger,
) *DeckUseCase {
	return &DeckUseCase{
		deckRepo: deckRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetPlants returns the account's deck plants ordered by slot
func (d *DeckUseCase) GetPlants(ctx context.Context, userID uint64) ([]*entity.DeckPlant, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return d.deckRepo.GetPlantsByUser(ctx, userID)
}

// GetPlantsByCorreu returns the deck plants for the account with the
// given email
func (d *DeckUseCase) GetPlantsByCorreu(ctx context.Context, correu string) ([]*entity.DeckPlant, error) {
	if correu == "" {
		return nil, errs.ErrInvalidRequest
	}
	return d.deckRepo.GetPlantsByCorreu(ctx, correu)
}

// SetDeck assigns 1 to 3 plants to the account's deck, creating the deck
// row when the account has none. The account must exist.
func (d *DeckUseCase) SetDeck(ctx context.Context, userID uint64, plantIDs []uint64) (created bool, err error) {
	if userID == 0 {
		return false, errs.ErrInvalidUserID
	}

	deck, err := entity.NewDeck(userID, plantIDs)
	if err != nil {
		return false, err
	}

	if _, err := d.userRepo.GetByID(ctx, userID); err != nil {
		return false, err
	}

	existing, err := d.deckRepo.GetByUser(ctx, userID)
	switch {
	case err == nil:
		deck.ID = existing.ID
		created = false
	case errors.Is(err, errs.ErrDeckNotFound):
		created = true
	default:
		return false, err
	}

	if err := d.deckRepo.Upsert(ctx, deck); err != nil {
		return false, err
	}

	d.logger.Info("Deck saved", map[string]any{
		"user_id": userID,
		"slots":   len(plantIDs),
		"created": created,
	})
	return created, nil
}

// Exists reports whether an account has a deck row
func (d *DeckUseCase) Exists(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, errs.ErrInvalidUserID
	}
	return d.deckRepo.Exists(ctx, userID)
}
