package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchmakingEntry is a waiting-list row. It carries a snapshot of the
// account fields at enqueue time rather than a foreign key, matching the
// matchmaking_usuaris table.
type MatchmakingEntry struct {
	ID           uint64
	Nom          string
	Correu       string
	Contrasenya  string
	Edat         int
	Nacionalitat string
	CodiPostal   string
	ImatgePerfil string
	Btc          decimal.Decimal
	Admin        bool
	Superadmin   bool
	LE           int
	Nivell       int
	CreadoEn     time.Time
}

// SnapshotUser builds a waiting-list entry from an account
func SnapshotUser(u *User, now time.Time) *MatchmakingEntry {
	return &MatchmakingEntry{
		Nom:          u.Nom,
		Correu:       u.Correu,
		Contrasenya:  u.Contrasenya,
		Edat:         u.Edat,
		Nacionalitat: u.Nacionalitat,
		CodiPostal:   u.CodiPostal,
		ImatgePerfil: u.ImatgePerfil,
		Btc:          u.Btc,
		Admin:        u.Admin,
		Superadmin:   u.Superadmin,
		LE:           u.LE,
		Nivell:       u.Nivell,
		CreadoEn:     now,
	}
}
