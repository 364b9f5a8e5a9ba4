package plant

import (
	"context"

	"github.com/gameplants/plants-api/internal/domain/entity"
	errs "github.com/gameplants/plants-api/internal/domain/error"
	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/gameplants/plants-api/internal/domain/port/persistence"
)

// CreateInput carries the fields accepted when creating a plant. Zero
// stats are replaced by the entity defaults.
type CreateInput struct {
	UsuariID          uint64
	Nom               string
	Tipus             string
	Nivell            *int
	Atac              *int
	Defensa           *int
	Velocitat         *int
	HabilitatEspecial string
	Energia           *int
	Estat             string
	Raritat           string
	Imatge            string
}

// UpdateInput carries the full set of mutable plant columns
type UpdateInput struct {
	Nom               string
	Tipus             string
	Nivell            int
	Atac              int
	Defensa           int
	Velocitat         int
	HabilitatEspecial string
	Energia           int
	Estat             string
	Raritat           string
	Imatge            string
}

// PlantUseCase handles plant business logic
type PlantUseCase struct {
	plantRepo    persistence.PlantRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPlantUseCase creates a new PlantUseCase
func NewPlantUseCase(
	plantRepo persistence.PlantRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PlantUseCase {
	return &PlantUseCase{
		plantRepo:    plantRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetAll returns every plant
func (p *PlantUseCase) GetAll(ctx context.Context) ([]*entity.Plant, error) {
	return p.plantRepo.GetAll(ctx)
}

// GetByID returns a plant by id
func (p *PlantUseCase) GetByID(ctx context.Context, id uint64) (*entity.Plant, error) {
	return p.plantRepo.GetByID(ctx, id)
}

// GetByUser returns the plants owned by an account
func (p *PlantUseCase) GetByUser(ctx context.Context, userID uint64) ([]*entity.Plant, error) {
	return p.plantRepo.GetByUser(ctx, userID)
}

// Create stores a new plant, applying stat defaults for fields the caller
// left unset
func (p *PlantUseCase) Create(ctx context.Context, input CreateInput) (*entity.Plant, error) {
	if input.UsuariID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	plant := entity.NewPlant(input.UsuariID, input.Nom, input.Tipus, p.timeProvider)
	if input.Nivell != nil {
		plant.Nivell = *input.Nivell
	}
	if input.Atac != nil {
		plant.Atac = *input.Atac
	}
	if input.Defensa != nil {
		plant.Defensa = *input.Defensa
	}
	if input.Velocitat != nil {
		plant.Velocitat = *input.Velocitat
	}
	if input.Energia != nil {
		plant.Energia = *input.Energia
	}
	plant.HabilitatEspecial = input.HabilitatEspecial
	if input.Estat != "" {
		plant.Estat = input.Estat
	}
	if input.Raritat != "" {
		plant.Raritat = input.Raritat
	}
	plant.Imatge = input.Imatge

	if err := p.plantRepo.Create(ctx, plant); err != nil {
		return nil, err
	}

	p.logger.Info("Plant created", map[string]any{
		"plant_id": plant.ID,
		"user_id":  plant.UsuariID,
	})
	return plant, nil
}

// Update overwrites a plant's mutable columns and touches its
// last-updated timestamp
func (p *PlantUseCase) Update(ctx context.Context, id uint64, input UpdateInput) (*entity.Plant, error) {
	plant, err := p.plantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plant.Nom = input.Nom
	plant.Tipus = input.Tipus
	plant.Nivell = input.Nivell
	plant.Atac = input.Atac
	plant.Defensa = input.Defensa
	plant.Velocitat = input.Velocitat
	plant.HabilitatEspecial = input.HabilitatEspecial
	plant.Energia = input.Energia
	plant.Estat = input.Estat
	plant.Raritat = input.Raritat
	plant.Imatge = input.Imatge
	plant.Touch(p.timeProvider)

	if err := p.plantRepo.Update(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

// Delete removes a plant. Decks referencing it keep their dangling slot
// ids.
func (p *PlantUseCase) Delete(ctx context.Context, id uint64) error {
	return p.plantRepo.Delete(ctx, id)
}
