package repository

import (
	"context"
	"errors"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ItemRepository implements persistence.ItemRepository using GORM
type ItemRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewItemRepository creates a new ItemRepository instance
func NewItemRepository(db *gorm.DB, logger coreport.Logger) *ItemRepository {
	return &ItemRepository{db: db, logger: logger}
}

func itemModelToEntity(m *model.Item) *entity.Item {
	return &entity.Item{
		ID:         m.ID,
		Nom:        m.Nom,
		Descripcio: m.Descripcio,
		Preu:       m.Preu,
	}
}

// GetAll retrieves the full catalog
func (r *ItemRepository) GetAll(ctx context.Context) ([]*entity.Item, error) {
	var models []model.Item
	if result := r.db.WithContext(ctx).Find(&models); result.Error != nil {
		r.logger.Error("Database error when listing items", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, translateError(result.Error)
	}

	items := make([]*entity.Item, 0, len(models))
	for i := range models {
		items = append(items, itemModelToEntity(&models[i]))
	}
	return items, nil
}

// GetByIDs retrieves the catalog rows matching the given ids
func (r *ItemRepository) GetByIDs(ctx context.Context, ids []uint64) ([]*entity.Item, error) {
	var models []model.Item
	if result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models); result.Error != nil {
		r.logger.Error("Database error when fetching items by ids", map[string]any{
			"ids":   ids,
			"error": result.Error.Error(),
		})
		return nil, translateError(result.Error)
	}

	items := make([]*entity.Item, 0, len(models))
	for i := range models {
		items = append(items, itemModelToEntity(&models[i]))
	}
	return items, nil
}

// OwnedItemRepository implements persistence.OwnedItemRepository using GORM
type OwnedItemRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewOwnedItemRepository creates a new OwnedItemRepository instance
func NewOwnedItemRepository(db *gorm.DB, logger coreport.Logger) *OwnedItemRepository {
	return &OwnedItemRepository{db: db, logger: logger}
}

func ownedModelToEntity(m *model.OwnedItem) *entity.OwnedItem {
	return &entity.OwnedItem{
		ID:        m.ID,
		UsuariID:  m.UsuariID,
		ItemID:    m.ItemID,
		Quantitat: m.Quantitat,
		Nom:       m.Nom,
	}
}

// GetByUser retrieves every owned-item row for an account
func (r *OwnedItemRepository) GetByUser(ctx context.Context, userID uint64) ([]*entity.OwnedItem, error) {
	var models []model.OwnedItem
	result := r.db.WithContext(ctx).Where("usuari_id = ?", userID).Find(&models)
	if result.Error != nil {
		r.logger.Error("Database error when listing owned items", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, translateError(result.Error)
	}

	owned := make([]*entity.OwnedItem, 0, len(models))
	for i := range models {
		owned = append(owned, ownedModelToEntity(&models[i]))
	}
	return owned, nil
}

// GetByUserAndItem retrieves the single row for an (account, item) pair
func (r *OwnedItemRepository) GetByUserAndItem(ctx context.Context, userID, itemID uint64) (*entity.OwnedItem, error) {
	var ownedModel model.OwnedItem
	result := r.db.WithContext(ctx).
		Where("usuari_id = ? AND item_id = ?", userID, itemID).
		First(&ownedModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		r.logger.Error("Database error when looking up owned item", map[string]any{
			"user_id": userID,
			"item_id": itemID,
			"error":   result.Error.Error(),
		})
		return nil, translateError(result.Error)
	}
	return ownedModelToEntity(&ownedModel), nil
}

// Create inserts a new owned-item row
func (r *OwnedItemRepository) Create(ctx context.Context, owned *entity.OwnedItem) error {
	ownedModel := model.OwnedItem{
		UsuariID:  owned.UsuariID,
		ItemID:    owned.ItemID,
		Quantitat: owned.Quantitat,
		Nom:       owned.Nom,
	}
	if result := r.db.WithContext(ctx).Create(&ownedModel); result.Error != nil {
		r.logger.Error("Database error when creating owned item", map[string]any{
			"user_id": owned.UsuariID,
			"item_id": owned.ItemID,
			"error":   result.Error.Error(),
		})
		return translateError(result.Error)
	}

	owned.ID = ownedModel.ID
	return nil
}

// AddQuantity increments the quantity of an existing row in one statement
func (r *OwnedItemRepository) AddQuantity(ctx context.Context, userID, itemID uint64, delta int) error {
	result := r.db.WithContext(ctx).Model(&model.OwnedItem{}).
		Where("usuari_id = ? AND item_id = ?", userID, itemID).
		Update("quantitat", gorm.Expr("quantitat + ?", delta))

	if result.Error != nil {
		r.logger.Error("Database error when incrementing owned item", map[string]any{
			"user_id": userID,
			"item_id": itemID,
			"error":   result.Error.Error(),
		})
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
