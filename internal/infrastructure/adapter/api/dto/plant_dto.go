package dto

import (
	"time"

	"github.com/gameplants/plants-api/internal/domain/entity"
)

// CreatePlantRequest is the body of POST /plantas. Stat fields are
// pointers so an omitted field takes the entity default instead of zero.
type CreatePlantRequest struct {
	UsuariID          uint64 `json:"usuari_id" binding:"required"`
	Nom               string `json:"nom" binding:"required"`
	Tipus             string `json:"tipus"`
	Nivell            *int   `json:"nivell"`
	Atac              *int   `json:"atac"`
	Defensa           *int   `json:"defensa"`
	Velocitat         *int   `json:"velocitat"`
	HabilitatEspecial string `json:"habilitat_especial"`
	Energia           *int   `json:"energia"`
	Estat             string `json:"estat"`
	Raritat           string `json:"raritat"`
	Imatge            string `json:"imatge"`
}

// UpdatePlantRequest is the body of PUT /plantas/:id
type UpdatePlantRequest struct {
	Nom               string `json:"nom" binding:"required"`
	Tipus             string `json:"tipus"`
	Nivell            int    `json:"nivell"`
	Atac              int    `json:"atac"`
	Defensa           int    `json:"defensa"`
	Velocitat         int    `json:"velocitat"`
	HabilitatEspecial string `json:"habilitat_especial"`
	Energia           int    `json:"energia"`
	Estat             string `json:"estat"`
	Raritat           string `json:"raritat"`
	Imatge            string `json:"imatge"`
}

// PlantResponse is the plant representation returned by the API
type PlantResponse struct {
	ID                  uint64    `json:"id"`
	UsuariID            uint64    `json:"usuari_id"`
	Nom                 string    `json:"nom"`
	Tipus               string    `json:"tipus"`
	Nivell              int       `json:"nivell"`
	Atac                int       `json:"atac"`
	Defensa             int       `json:"defensa"`
	Velocitat           int       `json:"velocitat"`
	HabilitatEspecial   string    `json:"habilitat_especial"`
	Energia             int       `json:"energia"`
	Estat               string    `json:"estat"`
	Raritat             string    `json:"raritat"`
	Imatge              string    `json:"imatge"`
	UltimaActualitzacio time.Time `json:"ultima_actualitzacio"`
}

// NewPlantResponse maps a plant entity onto its API representation
func NewPlantResponse(p *entity.Plant) PlantResponse {
	return PlantResponse{
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

// NewPlantResponses maps a slice of plant entities
func NewPlantResponses(plants []*entity.Plant) []PlantResponse {
	out := make([]PlantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, NewPlantResponse(p))
	}
	return out
}
