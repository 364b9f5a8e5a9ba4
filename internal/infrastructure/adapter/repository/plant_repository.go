package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PlantRepository implements persistence.PlantRepository using GORM
type PlantRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPlantRepository creates a new PlantRepository instance
func NewPlantRepository(db *gorm.DB, logger coreport.Logger) *PlantRepository {
	return &PlantRepository{db: db, logger: logger}
}

func plantModelToEntity(m *model.Plant) *entity.Plant {
	return &entity.Plant{
		ID:                  m.ID,
		UsuariID:            m.UsuariID,
		Nom:                 m.Nom,
		Tipus:               m.Tipus,
		Nivell:              m.Nivell,
		Atac:                m.Atac,
		Defensa:             m.Defensa,
		Velocitat:           m.Velocitat,
		HabilitatEspecial:   m.HabilitatEspecial,
		Energia:             m.Energia,
		Estat:               m.Estat,
		Raritat:             m.Raritat,
		Imatge:              m.Imatge,
		UltimaActualitzacio: m.UltimaActualitzacio,
	}
}

func plantEntityToModel(p *entity.Plant) *model.Plant {
	return &model.Plant{
		ID:                  p.ID,
		UsuariID:            p.UsuariID,
		Nom:                 p.Nom,
		Tipus:               p.Tipus,
		Nivell:              p.Nivell,
		Atac:                p.Atac,
		Defensa:             p.Defensa,
		Velocitat:           p.Velocitat,
		HabilitatEspecial:   p.HabilitatEspecial,
		Energia:             p.Energia,
		Estat:               p.Estat,
		Raritat:             p.Raritat,
		Imatge:              p.Imatge,
		UltimaActualitzacio: p.UltimaActualitzacio,
	}
}

func (r *PlantRepository) wrapError(operation string, err error, plantID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrPlantNotFound
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"plant_id": plantID,
		"error":    err.Error(),
	})
	return translateError(err)
}

// GetAll retrieves every plant
func (r *PlantRepository) GetAll(ctx context.Context) ([]*entity.Plant, error) {
	var models []model.Plant
	if result := r.db.WithContext(ctx).Find(&models); result.Error != nil {
		return nil, r.wrapError("listing plants", result.Error, 0)
	}

	plants := make([]*entity.Plant, 0, len(models))
	for i := range models {
		plants = append(plants, plantModelToEntity(&models[i]))
	}
	return plants, nil
}

// GetByID retrieves a plant by ID
func (r *PlantRepository) GetByID(ctx context.Context, id uint64) (*entity.Plant, error) {
	var plantModel model.Plant
	if result := r.db.WithContext(ctx).First(&plantModel, id); result.Error != nil {
		return nil, r.wrapError("getting plant", result.Error, id)
	}
	return plantModelToEntity(&plantModel), nil
}

// GetByUser retrieves every plant owned by an account
func (r *PlantRepository) GetByUser(ctx context.Context, userID uint64) ([]*entity.Plant, error) {
	var models []model.Plant
	result := r.db.WithContext(ctx).Where("usuari_id = ?", userID).Find(&models)
	if result.Error != nil {
		return nil, r.wrapError("listing plants by user", result.Error, 0)
	}

	plants := make([]*entity.Plant, 0, len(models))
	for i := range models {
		plants = append(plants, plantModelToEntity(&models[i]))
	}
	return plants, nil
}

// Create inserts a new plant and backfills the generated ID
func (r *PlantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantModel := plantEntityToModel(plant)
	if result := r.db.WithContext(ctx).Create(plantModel); result.Error != nil {
		return r.wrapError("creating plant", result.Error, 0)
	}
	plant.ID = plantModel.ID
	return nil
}

// Update overwrites a plant's mutable columns
func (r *PlantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	result := r.db.WithContext(ctx).Model(&model.Plant{}).
		Where("id = ?", plant.ID).
		Updates(map[string]any{
			"nom":                  plant.Nom,
			"tipus":                plant.Tipus,
			"nivell":               plant.Nivell,
			"atac":                 plant.Atac,
			"defensa":              plant.Defensa,
			"velocitat":            plant.Velocitat,
			"habilitat_especial":   plant.HabilitatEspecial,
			"energia":              plant.Energia,
			"estat":                plant.Estat,
			"raritat":              plant.Raritat,
			"imatge":               plant.Imatge,
			"ultima_actualitzacio": plant.UltimaActualitzacio,
		})

	if result.Error != nil {
		return r.wrapError("updating plant", result.Error, plant.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPlantNotFound
	}
	return nil
}

// Delete removes a plant by ID
func (r *PlantRepository) Delete(ctx context.Context, id uint64) error {
	if result := r.db.WithContext(ctx).Delete(&model.Plant{}, id); result.Error != nil {
		return r.wrapError("deleting plant", result.Error, id)
	}
	return nil
}
