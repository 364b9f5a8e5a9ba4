package repository

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MatchmakingRepository implements persistence.MatchmakingRepository using GORM
type MatchmakingRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMatchmakingRepository creates a new MatchmakingRepository instance
func NewMatchmakingRepository(db *gorm.DB, logger coreport.Logger) *MatchmakingRepository {
	return &MatchmakingRepository{db: db, logger: logger}
}

func matchmakingModelToEntity(m *model.MatchmakingEntry) *entity.MatchmakingEntry {
	return &entity.MatchmakingEntry{
		ID:           m.ID,
		Nom:          m.Nom,
		Correu:       m.Correu,
		Contrasenya:  m.Contrasenya,
		Edat:         m.Edat,
		Nacionalitat: m.Nacionalitat,
		CodiPostal:   m.CodiPostal,
		ImatgePerfil: m.ImatgePerfil,
		Btc:          m.Btc,
		Admin:        m.Admin,
		Superadmin:   m.Superadmin,
		LE:           m.LE,
		Nivell:       m.Nivell,
		CreadoEn:     m.CreadoEn,
	}
}

// Add appends an entry to the waiting list
func (r *MatchmakingRepository) Add(ctx context.Context, entry *entity.MatchmakingEntry) error {
	entryModel := model.MatchmakingEntry{
		Nom:          entry.Nom,
		Correu:       entry.Correu,
		Contrasenya:  entry.Contrasenya,
		Edat:         entry.Edat,
		Nacionalitat: entry.Nacionalitat,
		CodiPostal:   entry.CodiPostal,
		ImatgePerfil: entry.ImatgePerfil,
		Btc:          entry.Btc,
		Admin:        entry.Admin,
		Superadmin:   entry.Superadmin,
		LE:           entry.LE,
		Nivell:       entry.Nivell,
		CreadoEn:     entry.CreadoEn,
	}
	if result := r.db.WithContext(ctx).Create(&entryModel); result.Error != nil {
		r.logger.Error("Database error when enqueueing for matchmaking", map[string]any{
			"correu": entry.Correu,
			"error":  result.Error.Error(),
		})
		return translateError(result.Error)
	}

	entry.ID = entryModel.ID
	return nil
}

// List retrieves the full waiting list in arrival order
func (r *MatchmakingRepository) List(ctx context.Context) ([]*entity.MatchmakingEntry, error) {
	var entryModels []model.MatchmakingEntry
	result := r.db.WithContext(ctx).Order("creado_en").Find(&entryModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing matchmaking queue", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, translateError(result.Error)
	}

	entries := make([]*entity.MatchmakingEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, matchmakingModelToEntity(&entryModels[i]))
	}
	return entries, nil
}

// Remove deletes a waiting-list entry by its identifier. Returns
// ErrNotFound when no matching row exists.
func (r *MatchmakingRepository) Remove(ctx context.Context, entryID uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.MatchmakingEntry{}, entryID)
	if result.Error != nil {
		r.logger.Error("Database error when removing matchmaking entry", map[string]any{
			"entry_id": entryID,
			"error":    result.Error.Error(),
		})
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// RemoveByCorreu deletes every waiting-list entry matching the email.
// Returns ErrNotFound when no matching rows exist.
func (r *MatchmakingRepository) RemoveByCorreu(ctx context.Context, correu string) error {
	result := r.db.WithContext(ctx).
		Where("correu = ?", correu).
		Delete(&model.MatchmakingEntry{})
	if result.Error != nil {
		r.logger.Error("Database error when removing matchmaking entries by email", map[string]any{
			"correu": correu,
			"error":  result.Error.Error(),
		})
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
