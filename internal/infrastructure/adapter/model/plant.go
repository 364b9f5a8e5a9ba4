package model

import "time"

// Plant represents the database model for plants
type Plant struct {
	ID                  uint64    `gorm:"primaryKey"`
	UsuariID            uint64    `gorm:"column:usuari_id;not null;index"`
	Nom                 string    `gorm:"not null"`
	Tipus               string    ``
	Nivell              int       `gorm:"not null;default:0"`
	Atac                int       `gorm:"not null;default:10"`
	Defensa             int       `gorm:"not null;default:10"`
	Velocitat           int       `gorm:"not null;default:5"`
	HabilitatEspecial   string    `gorm:"column:habilitat_especial"`
	Energia             int       `gorm:"not null;default:100"`
	Estat               string    `gorm:"not null;default:actiu"`
	Raritat             string    `gorm:"not null;default:comú"`
	Imatge              string    ``
	UltimaActualitzacio time.Time `gorm:"column:ultima_actualitzacio;not null"`
}

// TableName specifies the table name for Plant
func (Plant) TableName() string {
	return "plantas"
}
