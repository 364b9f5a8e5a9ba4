package entity

import "github.com/shopspring/decimal"

// PurchaseLine is one item of a purchase request
type PurchaseLine struct {
	ItemID   uint64 `validate:"required,gt=0"`
	Cantidad int    `validate:"required,gt=0"`
	Nom      string `validate:"required"`
}

// PurchaseRequest is the transient unit of work for the purchase
// transaction core. The total cost is declared by the caller and is not
// re-derived from catalog prices.
type PurchaseRequest struct {
	UserID    uint64          `validate:"required,gt=0"`
	TotalCost decimal.Decimal
	Items     []PurchaseLine `validate:"required,min=1,dive"`
}
