package model

// Deck represents the mazo table: one row per account, up to three
// plant references
type Deck struct {
	ID       uint64  `gorm:"primaryKey"`
	UsuariID uint64  `gorm:"column:usuari_id;not null;uniqueIndex"`
	Planta1  *uint64 `gorm:"column:planta1_id"`
	Planta2  *uint64 `gorm:"column:planta2_id"`
	Planta3  *uint64 `gorm:"column:planta3_id"`
}

// TableName specifies the table name for Deck
func (Deck) TableName() string {
	return "mazo"
}
