package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de una atencion.
const (
	AtencionAbierta   = "OPEN"
	AtencionCerrada   = "CLOSED"
	AtencionCancelada = "CANCELED"
)

// Atencion is a bounded service window during a Recalada in which guided
// visits run, with a target capacity of TurnosTotal numbered shift slots.
//
// There is no natural unique key: logical identity is the tuple
// (RecaladaID, FechaInicio, FechaFin), enforced here with a composite unique
// index so concurrent upserts cannot create duplicates. An Atencion
// exclusively owns its Turnos; turno numbering has no meaning outside it.
type Atencion struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecaladaID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_atencion_identidad"`
	SupervisorID uuid.UUID `gorm:"type:uuid;not null;index"`

	FechaInicio time.Time `gorm:"not null;uniqueIndex:idx_atencion_identidad"`
	FechaFin    time.Time `gorm:"not null;uniqueIndex:idx_atencion_identidad"`

	// TurnosTotal is the target slot count; the turno set for this window is
	// reconciled against it (always exactly {1..TurnosTotal} plus any
	// non-deletable survivors beyond it)
	TurnosTotal int `gorm:"not null"`

	Estado            string `gorm:"type:varchar(20);not null;default:'OPEN'"`
	CanceladaAt       *time.Time
	MotivoCancelacion *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Recalada   *Recalada   `gorm:"foreignKey:RecaladaID"`
	Supervisor *Supervisor `gorm:"foreignKey:SupervisorID"`
	Turnos     []Turno     `gorm:"foreignKey:AtencionID"`
}

func (Atencion) TableName() string { return "atenciones" }
