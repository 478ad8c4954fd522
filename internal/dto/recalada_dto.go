package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearRecaladaRequest struct {
	BuqueID               string    `json:"buque_id"                validate:"required,uuid"`
	PaisOrigenID          string    `json:"pais_origen_id"          validate:"required,uuid"`
	SupervisorID          string    `json:"supervisor_id"           validate:"required,uuid"`
	FechaArriboProgramada time.Time `json:"fecha_arribo_programada" validate:"required"`
	FechaZarpeProgramada  time.Time `json:"fecha_zarpe_programada"  validate:"required"`
}

// ActualizarRecaladaRequest replaces the full lifecycle state of a recalada.
// Every field must be supplied on every call: fields not applicable to Estado
// are explicitly written as null so nothing stale survives a transition.
type ActualizarRecaladaRequest struct {
	PaisOrigenID          string     `json:"pais_origen_id"          validate:"required,uuid"`
	SupervisorID          string     `json:"supervisor_id"           validate:"required,uuid"`
	FechaArriboProgramada time.Time  `json:"fecha_arribo_programada" validate:"required"`
	FechaZarpeProgramada  time.Time  `json:"fecha_zarpe_programada"  validate:"required"`
	FechaArriboReal       *time.Time `json:"fecha_arribo_real"`
	FechaZarpeReal        *time.Time `json:"fecha_zarpe_real"`
	Estado                string     `json:"estado" validate:"required,oneof=SCHEDULED ARRIVED DEPARTED CANCELED"`
}

type CancelarRecaladaRequest struct {
	Motivo string `json:"motivo" validate:"required,min=5"`
}

type RecaladaFilter struct {
	Estado  string
	BuqueID string
	Page    int
	Limit   int
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RecaladaResponse struct {
	ID                    string     `json:"id"`
	Codigo                string     `json:"codigo"`
	BuqueID               string     `json:"buque_id"`
	BuqueNombre           string     `json:"buque_nombre,omitempty"`
	PaisOrigenID          string     `json:"pais_origen_id"`
	PaisOrigenNombre      string     `json:"pais_origen_nombre,omitempty"`
	SupervisorID          string     `json:"supervisor_id"`
	FechaArriboProgramada time.Time  `json:"fecha_arribo_programada"`
	FechaZarpeProgramada  time.Time  `json:"fecha_zarpe_programada"`
	FechaArriboReal       *time.Time `json:"fecha_arribo_real"`
	FechaZarpeReal        *time.Time `json:"fecha_zarpe_real"`
	Estado                string     `json:"estado"`
	CanceladaAt           *time.Time `json:"cancelada_at"`
	MotivoCancelacion     *string    `json:"motivo_cancelacion"`
}

type RecaladaListResponse struct {
	Data  []RecaladaResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
