package dto

import "github.com/gameplants/plants-api/internal/domain/entity"

// ItemsByIDsRequest is the body of POST /items/by-ids
type ItemsByIDsRequest struct {
	IDs []uint64 `json:"ids" binding:"required,min=1"`
}

// ItemResponse is a catalog item as returned by the API
type ItemResponse struct {
	ID         uint64 `json:"id"`
	Nom        string `json:"nom"`
	Descripcio string `json:"descripcio"`
	Preu       string `json:"preu"`
}

// OwnedItemResponse is an inventory row as returned by the API
type OwnedItemResponse struct {
	ID        uint64 `json:"id"`
	UsuariID  uint64 `json:"usuari_id"`
	ItemID    uint64 `json:"item_id"`
	Quantitat int    `json:"quantitat"`
	Nom       string `json:"nom"`
}

// OwnedItemsResponse is the body of GET /items_usuaris/:id
type OwnedItemsResponse struct {
	Success bool                `json:"success"`
	Items   []OwnedItemResponse `json:"items"`
}

// NewItemResponses maps catalog items
func NewItemResponses(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemResponse{
			ID:         it.ID,
			Nom:        it.Nom,
			Descripcio: it.Descripcio,
			Preu:       it.Preu.String(),
		})
	}
	return out
}

// NewOwnedItemResponses maps inventory rows
func NewOwnedItemResponses(items []*entity.OwnedItem) []OwnedItemResponse {
	out := make([]OwnedItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OwnedItemResponse{
			ID:        it.ID,
			UsuariID:  it.UsuariID,
			ItemID:    it.ItemID,
			Quantitat: it.Quantitat,
			Nom:       it.Nom,
		})
	}
	return out
}
