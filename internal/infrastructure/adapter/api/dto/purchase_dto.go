package dto

import "github.com/shopspring/decimal"

// PurchaseItem is one line of a purchase request
type PurchaseItem struct {
	ItemID   uint64 `json:"itemId" binding:"required"`
	Cantidad int    `json:"cantidad" binding:"required,gt=0"`
	Nom      string `json:"nom" binding:"required"`
}

// PurchaseRequest is the body of POST /items_usuaris
type PurchaseRequest struct {
	UserID    uint64          `json:"userId" binding:"required"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Items     []PurchaseItem  `json:"items" binding:"required,min=1,dive"`
}

// PurchaseResponse is returned on a committed purchase
type PurchaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PurchaseErrorResponse is returned on any purchase failure
type PurchaseErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
