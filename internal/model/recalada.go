package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de una recalada.
const (
	RecaladaProgramada = "SCHEDULED"
	RecaladaArribada   = "ARRIVED"
	RecaladaZarpada    = "DEPARTED"
	RecaladaCancelada  = "CANCELED"
)

// Recalada is a scheduled or actual port call of a Buque at the terminal.
// Codigo is the unique business key (RA-<year>-90<YYYYMMDD><seq>).
// Estado CANCELED implies CanceladaAt and MotivoCancelacion are set; on any
// other Estado both are null (upserts write the full row, never a partial
// patch, so no stale cancellation data survives a re-open).
// Canceling a Recalada does NOT cascade to its Atenciones.
type Recalada struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo       string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	BuqueID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PaisOrigenID uuid.UUID `gorm:"type:uuid;not null"`
	SupervisorID uuid.UUID `gorm:"type:uuid;not null;index"`

	FechaArriboProgramada time.Time `gorm:"not null"`
	FechaZarpeProgramada  time.Time `gorm:"not null"`
	FechaArriboReal       *time.Time
	FechaZarpeReal        *time.Time

	Estado            string `gorm:"type:varchar(20);not null;default:'SCHEDULED'"`
	CanceladaAt       *time.Time
	MotivoCancelacion *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Buque      *Buque      `gorm:"foreignKey:BuqueID"`
	PaisOrigen *Pais       `gorm:"foreignKey:PaisOrigenID"`
	Supervisor *Supervisor `gorm:"foreignKey:SupervisorID"`
	Atenciones []Atencion  `gorm:"foreignKey:RecaladaID"`
}

func (Recalada) TableName() string { return "recaladas" }
