package model

import "github.com/shopspring/decimal"

// Item represents the database model for the catalog
type Item struct {
	ID         uint64          `gorm:"primaryKey"`
	Nom        string          `gorm:"not null"`
	Descripcio string          ``
	Preu       decimal.Decimal `gorm:"type:numeric(18,8);not null;default:0"`
}

// TableName specifies the table name for Item
func (Item) TableName() string {
	return "items"
}

// OwnedItem represents the iusuari join table. The (usuari_id, item_id)
// pair is unique; the purchase core relies on that.
type OwnedItem struct {
	ID        uint64 `gorm:"primaryKey"`
	UsuariID  uint64 `gorm:"column:usuari_id;not null;uniqueIndex:idx_iusuari_pair"`
	ItemID    uint64 `gorm:"column:item_id;not null;uniqueIndex:idx_iusuari_pair"`
	Quantitat int    `gorm:"not null;default:0"`
	Nom       string `gorm:"not null"`
}

// TableName specifies the table name for OwnedItem
func (OwnedItem) TableName() string {
	return "iusuari"
}
