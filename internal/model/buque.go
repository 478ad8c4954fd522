package model

import (
	"time"

	"github.com/google/uuid"
)

// Buque is a cruise ship calling at the terminal.
// PaisID is nullable at the column level because historical loads arrived
// without a flag country; the seed backfill guarantees it is non-null after
// every run (majority vote over recaladas, then default country).
type Buque struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Nombre string    `gorm:"uniqueIndex;not null"`
	// Naviera is the operating carrier line
	Naviera   string
	Capacidad int        `gorm:"not null;default:0"`
	PaisID    *uuid.UUID `gorm:"type:uuid;index"`
	Activo    bool       `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Pais *Pais `gorm:"foreignKey:PaisID"`
}

func (Buque) TableName() string { return "buques" }
