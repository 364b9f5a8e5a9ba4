package model

import "time"

// Chest represents the cofrees table
type Chest struct {
	ID        uint64    `gorm:"primaryKey"`
	IDUsuari  uint64    `gorm:"column:idusuari;not null;index"`
	Temps     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Chest
func (Chest) TableName() string {
	return "cofrees"
}
