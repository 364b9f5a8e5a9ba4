package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the database model for accounts. Column names follow
// the usuaris schema.
type User struct {
	ID           uint64          `gorm:"primaryKey"`
	Nom          string          `gorm:"not null"`
	Correu       string          `gorm:"not null;uniqueIndex"`
	Contrasenya  string          `gorm:"not null"`
	Edat         int             `gorm:"default:0"`
	Nacionalitat string          ``
	CodiPostal   string          `gorm:"column:codi_postal"`
	ImatgePerfil string          `gorm:"column:imatge_perfil"`
	Btc          decimal.Decimal `gorm:"type:numeric(18,8);not null;default:0"`
	Admin        bool            `gorm:"not null;default:false"`
	Superadmin   bool            `gorm:"not null;default:false"`
	LE           int             `gorm:"column:le;not null;default:0"`
	Nivell       int             `gorm:"not null;default:1"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "usuaris"
}
