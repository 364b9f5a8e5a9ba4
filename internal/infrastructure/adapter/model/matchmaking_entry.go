package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchmakingEntry represents the matchmaking_usuaris waiting list. It
// stores a snapshot of the account columns rather than a foreign key.
type MatchmakingEntry struct {
	ID           uint64          `gorm:"primaryKey"`
	Nom          string          `gorm:"not null"`
	Correu       string          `gorm:"not null;index"`
	Contrasenya  string          ``
	Edat         int             ``
	Nacionalitat string          ``
	CodiPostal   string          `gorm:"column:codi_postal"`
	ImatgePerfil string          `gorm:"column:imatge_perfil"`
	Btc          decimal.Decimal `gorm:"type:numeric(18,8);not null;default:0"`
	Admin        bool            `gorm:"not null;default:false"`
	Superadmin   bool            `gorm:"not null;default:false"`
	LE           int             `gorm:"column:le;not null;default:0"`
	Nivell       int             `gorm:"not null;default:1"`
	CreadoEn     time.Time       `gorm:"column:creado_en;not null"`
}

// TableName specifies the table name for MatchmakingEntry
func (MatchmakingEntry) TableName() string {
	return "matchmaking_usuaris"
}
