package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de un turno.
const (
	TurnoDisponible = "AVAILABLE"
	TurnoAsignado   = "ASSIGNED"
	TurnoEnCurso    = "IN_PROGRESS"
	TurnoCompletado = "COMPLETED"
	TurnoNoShow     = "NO_SHOW"
	TurnoCancelado  = "CANCELED"
)

// Turno is one numbered, assignable unit of guide coverage inside an
// Atencion. Numero is 1-based and unique per window.
//
// A turno with any worked history (estado other than AVAILABLE, or an
// assigned guide) is never deleted by capacity shrinks — it survives beyond
// TurnosTotal rather than destroying evidence of a shift that happened.
type Turno struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AtencionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_turno_numero"`
	Numero     int       `gorm:"not null;uniqueIndex:idx_turno_numero"`

	Estado string     `gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	GuiaID *uuid.UUID `gorm:"type:uuid;index"`

	FechaInicio time.Time `gorm:"not null"`
	FechaFin    time.Time `gorm:"not null"`

	CheckInAt         *time.Time
	CheckOutAt        *time.Time
	CanceladoAt       *time.Time
	MotivoCancelacion *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Atencion *Atencion `gorm:"foreignKey:AtencionID"`
	Guia     *Guia     `gorm:"foreignKey:GuiaID"`
}

func (Turno) TableName() string { return "turnos" }
