package dto

import (
	"time"

	"github.com/gameplants/plants-api/internal/domain/entity"
)

// ChestResponse is the chest representation returned by the API
type ChestResponse struct {
	ID        uint64    `json:"id"`
	IDUsuari  uint64    `json:"idusuari"`
	Temps     int       `json:"temps"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateChestResponse is the body returned after creating a chest
type CreateChestResponse struct {
	Message string `json:"message"`
	CofreID uint64 `json:"cofreId"`
}

// NewChestResponses maps a slice of chest entities
func NewChestResponses(chests []*entity.Chest) []ChestResponse {
	out := make([]ChestResponse, 0, len(chests))
	for _, ch := range chests {
		out = append(out, ChestResponse{
			ID:        ch.ID,
			IDUsuari:  ch.IDUsuari,
			Temps:     ch.Temps,
			CreatedAt: ch.CreatedAt,
		})
	}
	return out
}
