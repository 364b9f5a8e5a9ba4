package entity

import (
	"time"

	coreport "github.com/gameplants/plants-api/internal/domain/port/core"
)

// Default combat stats applied when a plant is created without them
const (
	DefaultPlantNivell    = 0
	DefaultPlantAtac      = 10
	DefaultPlantDefensa   = 10
	DefaultPlantVelocitat = 5
	DefaultPlantEnergia   = 100
	DefaultPlantEstat     = "actiu"
	DefaultPlantRaritat   = "comú"
)

// Plant is a combat entity owned by an account
type Plant struct {
	ID                  uint64
	UsuariID            uint64
	Nom                 string
	Tipus               string
	Nivell              int
	Atac                int
	Defensa             int
	Velocitat           int
	HabilitatEspecial   string
	Energia             int
	Estat               string
	Raritat             string
	Imatge              string
	UltimaActualitzacio time.Time
}

// NewPlant creates a plant with stat defaults for zero-valued fields
func NewPlant(usuariID uint64, nom, tipus string, timeProvider coreport.TimeProvider) *Plant {
	return &Plant{
		UsuariID:            usuariID,
		Nom:                 nom,
		Tipus:               tipus,
		Nivell:              DefaultPlantNivell,
		Atac:                DefaultPlantAtac,
		Defensa:             DefaultPlantDefensa,
		Velocitat:           DefaultPlantVelocitat,
		Energia:             DefaultPlantEnergia,
		Estat:               DefaultPlantEstat,
		Raritat:             DefaultPlantRaritat,
		UltimaActualitzacio: timeProvider.Now(),
	}
}

// Touch refreshes the last-updated timestamp
func (p *Plant) Touch(timeProvider coreport.TimeProvider) {
	p.UltimaActualitzacio = timeProvider.Now()
}
