package repository

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ChestRepository implements persistence.ChestRepository using GORM
type ChestRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewChestRepository creates a new ChestRepository instance
func NewChestRepository(db *gorm.DB, logger coreport.Logger) *ChestRepository {
	return &ChestRepository{db: db, logger: logger}
}

func chestModelToEntity(m *model.Chest) *entity.Chest {
	return &entity.Chest{
		ID:        m.ID,
		IDUsuari:  m.IDUsuari,
		Temps:     m.Temps,
		CreatedAt: m.CreatedAt,
	}
}

// GetByUser retrieves all chests held by an account
func (r *ChestRepository) GetByUser(ctx context.Context, userID uint64) ([]*entity.Chest, error) {
	var chestModels []model.Chest
	result := r.db.WithContext(ctx).
		Where("idusuari = ?", userID).
		Order("id").
		Find(&chestModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing chests", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, translateError(result.Error)
	}

	chests := make([]*entity.Chest, 0, len(chestModels))
	for i := range chestModels {
		chests = append(chests, chestModelToEntity(&chestModels[i]))
	}
	return chests, nil
}

// Create persists a new chest
func (r *ChestRepository) Create(ctx context.Context, chest *entity.Chest) error {
	chestModel := model.Chest{
		IDUsuari:  chest.IDUsuari,
		Temps:     chest.Temps,
		CreatedAt: chest.CreatedAt,
	}
	if result := r.db.WithContext(ctx).Create(&chestModel); result.Error != nil {
		r.logger.Error("Database error when creating chest", map[string]any{
			"user_id": chest.IDUsuari,
			"error":   result.Error.Error(),
		})
		return translateError(result.Error)
	}

	chest.ID = chestModel.ID
	return nil
}

// Delete removes a chest owned by the given account. Returns
// ErrChestNotFound when no matching row exists.
func (r *ChestRepository) Delete(ctx context.Context, userID, chestID uint64) error {
	result := r.db.WithContext(ctx).
		Where("idusuari = ?", userID).
		Delete(&model.Chest{}, chestID)
	if result.Error != nil {
		r.logger.Error("Database error when deleting chest", map[string]any{
			"user_id":  userID,
			"chest_id": chestID,
			"error":    result.Error.Error(),
		})
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrChestNotFound
	}
	return nil
}
