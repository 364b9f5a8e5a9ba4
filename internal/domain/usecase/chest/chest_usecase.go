package chest

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/domain/port/persistence"
)

// ChestUseCase handles chest ("cofre") business logic. Chests are plain
// rows typed by their tier; no expiry is computed server-side.
type ChestUseCase struct {
	chestRepo    persistence.ChestRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewChestUseCase creates a new ChestUseCase
func NewChestUseCase(
	chestRepo persistence.ChestRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ChestUseCase {
	return &ChestUseCase{
		chestRepo:    chestRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByUser returns every chest belonging to an account
func (c *ChestUseCase) GetByUser(ctx context.Context, userID uint64) ([]*entity.Chest, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return c.chestRepo.GetByUser(ctx, userID)
}

// Create grants an account a chest of the given tier
func (c *ChestUseCase) Create(ctx context.Context, userID uint64, tier int) (*entity.Chest, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	chest := &entity.Chest{
		IDUsuari:  userID,
		Temps:     tier,
		CreatedAt: c.timeProvider.Now(),
	}
	if err := c.chestRepo.Create(ctx, chest); err != nil {
		return nil, err
	}

	c.logger.Info("Chest created", map[string]any{
		"chest_id": chest.ID,
		"user_id":  userID,
		"temps":    tier,
	})
	return chest, nil
}

// Delete removes a chest scoped to its owner
func (c *ChestUseCase) Delete(ctx context.Context, userID, chestID uint64) error {
	if userID == 0 || chestID == 0 {
		return errs.ErrInvalidRequest
	}
	return c.chestRepo.Delete(ctx, userID, chestID)
}
