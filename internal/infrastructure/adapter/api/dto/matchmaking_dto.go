package dto

import (
	"time"

	"github.com/gameplants/plants-api/internal/domain/entity"
)

// EnqueueResponse is returned after adding an account to the waiting list
type EnqueueResponse struct {
	Message string `json:"message"`
	UserID  uint64 `json:"userId"`
}

// MatchmakingEntryResponse is a waiting-list row as returned by the API.
// It mirrors the account snapshot stored at enqueue time.
type MatchmakingEntryResponse struct {
	ID           uint64    `json:"id"`
	Nom          string    `json:"nom"`
	Correu       string    `json:"correu"`
	Edat         int       `json:"edat"`
	Nacionalitat string    `json:"nacionalitat"`
	CodiPostal   string    `json:"codiPostal"`
	ImatgePerfil string    `json:"imatgePerfil"`
	Btc          string    `json:"btc"`
	Admin        bool      `json:"admin"`
	Superadmin   bool      `json:"superadmin"`
	LE           int       `json:"LE"`
	Nivell       int       `json:"nivell"`
	CreadoEn     time.Time `json:"creado_en"`
}

// NewMatchmakingEntryResponses maps waiting-list entries
func NewMatchmakingEntryResponses(entries []*entity.MatchmakingEntry) []MatchmakingEntryResponse {
	out := make([]MatchmakingEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, MatchmakingEntryResponse{
			ID:           e.ID,
			Nom:          e.Nom,
			Correu:       e.Correu,
			Edat:         e.Edat,
			Nacionalitat: e.Nacionalitat,
			CodiPostal:   e.CodiPostal,
			ImatgePerfil: e.ImatgePerfil,
			Btc:          e.Btc.String(),
			Admin:        e.Admin,
			Superadmin:   e.Superadmin,
			LE:           e.LE,
			Nivell:       e.Nivell,
			CreadoEn:     e.CreadoEn,
		})
	}
	return out
}
