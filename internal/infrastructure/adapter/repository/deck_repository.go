package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// deckPlantQuery joins a deck row with its plants and derives the slot
// position of each plant
const deckPlantQuery = `
SELECT
  p.id, p.usuari_id, p.nom, p.tipus, p.nivell, p.atac, p.defensa,
  p.velocitat, p.habilitat_especial, p.energia, p.estat, p.raritat,
  p.imatge, p.ultima_actualitzacio,
  CASE
    WHEN p.id = m.planta1_id THEN 1
    WHEN p.id = m.planta2_id THEN 2
    WHEN p.id = m.planta3_id THEN 3
    ELSE 4
  END AS orden
FROM mazo m
JOIN plantas p ON p.id IN (m.planta1_id, m.planta2_id, m.planta3_id)
`

// deckPlantRow is the scan target for deckPlantQuery
type deckPlantRow struct {
	ID                  uint64
	UsuariID            uint64 `gorm:"column:usuari_id"`
	Nom                 string
	Tipus               string
	Nivell              int
	Atac                int
	Defensa             int
	Velocitat           int
	HabilitatEspecial   string `gorm:"column:habilitat_especial"`
	Energia             int
	Estat               string
	Raritat             string
	Imatge              string
	UltimaActualitzacio time.Time `gorm:"column:ultima_actualitzacio"`
	Orden               int
}

func (row *deckPlantRow) toEntity() *entity.DeckPlant {
	return &entity.DeckPlant{
		Plant: entity.Plant{
			ID:                  row.ID,
			UsuariID:            row.UsuariID,
			Nom:                 row.Nom,
			Tipus:               row.Tipus,
			Nivell:              row.Nivell,
			Atac:                row.Atac,
			Defensa:             row.Defensa,
			Velocitat:           row.Velocitat,
			HabilitatEspecial:   row.HabilitatEspecial,
			Energia:             row.Energia,
			Estat:               row.Estat,
			Raritat:             row.Raritat,
			Imatge:              row.Imatge,
			UltimaActualitzacio: row.UltimaActualitzacio,
		},
		Orden: row.Orden,
	}
}

// DeckRepository implements persistence.DeckRepository using GORM
type DeckRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewDeckRepository creates a new DeckRepository instance
func NewDeckRepository(db *gorm.DB, logger coreport.Logger) *DeckRepository {
	return &DeckRepository{db: db, logger: logger}
}

func (r *DeckRepository) scanDeckPlants(ctx context.Context, where string, arg any) ([]*entity.DeckPlant, error) {
	var rows []deckPlantRow
	query := deckPlantQuery + where + " ORDER BY orden"
	if err := r.db.WithContext(ctx).Raw(query, arg).Scan(&rows).Error; err != nil {
		r.logger.Error("Database error when fetching deck plants", map[string]any{
			"error": err.Error(),
		})
		return nil, translateError(err)
	}
	if len(rows) == 0 {
		return nil, errs.ErrDeckNotFound
	}

	plants := make([]*entity.DeckPlant, 0, len(rows))
	for i := range rows {
		plants = append(plants, rows[i].toEntity())
	}
	return plants, nil
}

// GetPlantsByUser retrieves an account's deck plants ordered by slot
func (r *DeckRepository) GetPlantsByUser(ctx context.Context, userID uint64) ([]*entity.DeckPlant, error) {
	return r.scanDeckPlants(ctx, "WHERE m.usuari_id = ?", userID)
}

// GetPlantsByCorreu retrieves deck plants resolved through the account email
func (r *DeckRepository) GetPlantsByCorreu(ctx context.Context, correu string) ([]*entity.DeckPlant, error) {
	return r.scanDeckPlants(ctx,
		"JOIN usuaris u ON u.id = m.usuari_id WHERE u.correu = ?", correu)
}

// GetByUser retrieves the raw deck row for an account
func (r *DeckRepository) GetByUser(ctx context.Context, userID uint64) (*entity.Deck, error) {
	var deckModel model.Deck
	result := r.db.WithContext(ctx).Where("usuari_id = ?", userID).First(&deckModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDeckNotFound
		}
		r.logger.Error("Database error when getting deck", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, translateError(result.Error)
	}

	return &entity.Deck{
		ID:       deckModel.ID,
		UsuariID: deckModel.UsuariID,
		Planta1:  deckModel.Planta1,
		Planta2:  deckModel.Planta2,
		Planta3:  deckModel.Planta3,
	}, nil
}

// Upsert creates the account's deck row or overwrites its slots
func (r *DeckRepository) Upsert(ctx context.Context, deck *entity.Deck) error {
	if deck.ID != 0 {
		result := r.db.WithContext(ctx).Model(&model.Deck{}).
			Where("usuari_id = ?", deck.UsuariID).
			Updates(map[string]any{
				"planta1_id": deck.Planta1,
				"planta2_id": deck.Planta2,
				"planta3_id": deck.Planta3,
			})
		if result.Error != nil {
			r.logger.Error("Database error when updating deck", map[string]any{
				"user_id": deck.UsuariID,
				"error":   result.Error.Error(),
			})
			return translateError(result.Error)
		}
		return nil
	}

	deckModel := model.Deck{
		UsuariID: deck.UsuariID,
		Planta1:  deck.Planta1,
		Planta2:  deck.Planta2,
		Planta3:  deck.Planta3,
	}
	if result := r.db.WithContext(ctx).Create(&deckModel); result.Error != nil {
		r.logger.Error("Database error when creating deck", map[string]any{
			"user_id": deck.UsuariID,
			"error":   result.Error.Error(),
		})
		return translateError(result.Error)
	}

	deck.ID = deckModel.ID
	return nil
}

// Exists reports whether the account has a deck row
func (r *DeckRepository) Exists(ctx context.Context, userID uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Deck{}).
		Where("usuari_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return count > 0, nil
}
