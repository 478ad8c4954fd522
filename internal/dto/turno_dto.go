package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AsignarTurnoRequest struct {
	GuiaID string `json:"guia_id" validate:"required,uuid"`
}

type CancelarTurnoRequest struct {
	Motivo string `json:"motivo" validate:"required,min=5"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TurnoResponse struct {
	ID                string     `json:"id"`
	AtencionID        string     `json:"atencion_id"`
	Numero            int        `json:"numero"`
	Estado            string     `json:"estado"`
	GuiaID            *string    `json:"guia_id"`
	FechaInicio       time.Time  `json:"fecha_inicio"`
	FechaFin          time.Time  `json:"fecha_fin"`
	CheckInAt         *time.Time `json:"check_in_at"`
	CheckOutAt        *time.Time `json:"check_out_at"`
	CanceladoAt       *time.Time `json:"cancelado_at"`
	MotivoCancelacion *string    `json:"motivo_cancelacion"`
}
