package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// TurnoPlanEntry is one declarative slot-state directive applied during
// reconciliation. Entries addressing a Numero outside 1..TurnosTotal are
// silently skipped. All mutable slot fields are replaced wholesale.
type TurnoPlanEntry struct {
	Numero            int        `json:"numero"  validate:"required,min=1"`
	Estado            string     `json:"estado"  validate:"required,oneof=AVAILABLE ASSIGNED IN_PROGRESS COMPLETED NO_SHOW CANCELED"`
	GuiaID            *string    `json:"guia_id" validate:"omitempty,uuid"`
	CheckInAt         *time.Time `json:"check_in_at"`
	CheckOutAt        *time.Time `json:"check_out_at"`
	CanceladoAt       *time.Time `json:"cancelado_at"`
	MotivoCancelacion *string    `json:"motivo_cancelacion"`
}

// UpsertAtencionRequest creates or updates a service window by its logical
// identity (recalada_id, fecha_inicio, fecha_fin) and reconciles its turnos.
type UpsertAtencionRequest struct {
	RecaladaID   string           `json:"recalada_id"  validate:"required,uuid"`
	SupervisorID string           `json:"supervisor_id" validate:"required,uuid"`
	FechaInicio  time.Time        `json:"fecha_inicio" validate:"required"`
	FechaFin     time.Time        `json:"fecha_fin"    validate:"required"`
	TurnosTotal  int              `json:"turnos_total" validate:"required,min=1,max=100"`
	Estado       string           `json:"estado"       validate:"required,oneof=OPEN CLOSED CANCELED"`
	Plan         []TurnoPlanEntry `json:"plan"         validate:"omitempty,dive"`
}

type CancelarAtencionRequest struct {
	Motivo string `json:"motivo" validate:"required,min=5"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AtencionResponse struct {
	ID                string          `json:"id"`
	RecaladaID        string          `json:"recalada_id"`
	SupervisorID      string          `json:"supervisor_id"`
	FechaInicio       time.Time       `json:"fecha_inicio"`
	FechaFin          time.Time       `json:"fecha_fin"`
	TurnosTotal       int             `json:"turnos_total"`
	Estado            string          `json:"estado"`
	CanceladaAt       *time.Time      `json:"cancelada_at"`
	MotivoCancelacion *string         `json:"motivo_cancelacion"`
	Turnos            []TurnoResponse `json:"turnos,omitempty"`
}
