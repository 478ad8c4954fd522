package worker

// notificacion_worker.go
// Processes turno-assignment notifications from QueueNotificaciones and
// delivers them to the guide's email via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NotificacionTurnoPayload is the job envelope sent to QueueNotificaciones.
type NotificacionTurnoPayload struct {
	Email       string    `json:"email"`
	Nombre      string    `json:"nombre"`
	TurnoNumero int       `json:"turno_numero"`
	FechaInicio time.Time `json:"fecha_inicio"`
	FechaFin    time.Time `json:"fecha_fin"`
}

// NotificacionWorker delivers turno-assignment emails.
type NotificacionWorker struct {
	mailer *infra.Mailer
}

func NewNotificacionWorker(mailer *infra.Mailer) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer}
}

// Process sends the assignment email; undeliverable jobs go to the DLQ.
func (w *NotificacionWorker) Process(ctx context.Context, rdb *redis.Client, queue string, raw json.RawMessage) {
	var payload NotificacionTurnoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return
	}
	if payload.Email == "" {
		log.Warn().Msg("notificacion_worker: empty email — skipping")
		return
	}

	subject := fmt.Sprintf("Turno %d asignado", payload.TurnoNumero)
	body := fmt.Sprintf(
		"Hola %s,\n\nSe te asigno el turno %d.\nInicio: %s\nFin: %s\n\nEquipo de operaciones",
		payload.Nombre, payload.TurnoNumero,
		payload.FechaInicio.Format("02/01/2006 15:04"),
		payload.FechaFin.Format("02/01/2006 15:04"),
	)

	if err := w.mailer.Send(payload.Email, subject, body); err != nil {
		log.Error().Err(err).Str("to", payload.Email).Msg("notificacion_worker: failed to send email")
		SendToDLQ(ctx, rdb, queue, "notificacion_turno", raw, err.Error(), 1)
		return
	}
	log.Info().Str("to", payload.Email).Int("turno", payload.TurnoNumero).Msg("notificacion_worker: email sent")
}
