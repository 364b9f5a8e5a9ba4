package dto

import "github.com/gameplants/plants-api/internal/domain/entity"

// SetDeckRequest is the body of PUT /mazo/:userId. Between 1 and 3
// plant ids; absent slots are stored as null.
type SetDeckRequest struct {
	Mazo []uint64 `json:"mazo" binding:"required"`
}

// DeckPlantResponse is a deck plant with its slot position
type DeckPlantResponse struct {
	PlantResponse
	Orden int `json:"orden"`
}

// DeckExistsResponse is the body of GET /mazo/existeMazo/:userId
type DeckExistsResponse struct {
	Existe bool `json:"existe"`
}

// NewDeckPlantResponses maps slot-ordered deck plants
func NewDeckPlantResponses(plants []*entity.DeckPlant) []DeckPlantResponse {
	out := make([]DeckPlantResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, DeckPlantResponse{
			PlantResponse: NewPlantResponse(&p.Plant),
			Orden:         p.Orden,
		})
	}
	return out
}
