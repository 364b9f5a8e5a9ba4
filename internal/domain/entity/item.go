package entity

import "github.com/shopspring/decimal"

// Item is a catalog row. The purchase core treats the catalog as
// read-only; prices are informational because the declared total cost is
// what gets debited.
type Item struct {
	ID        uint64
	Nom       string
	Descripcio string
	Preu      decimal.Decimal
}

// OwnedItem records how many of a catalog item an account possesses.
// There is at most one row per (user, item) pair; the purchase core's
// upsert keeps that invariant.
type OwnedItem struct {
	ID        uint64
	UsuariID  uint64
	ItemID    uint64
	Quantitat int
	Nom       string
}
