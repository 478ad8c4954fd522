package seed

import (
	"context"
	"fmt"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/timeutil"

	"github.com/rs/zerolog/log"
)

// seedAtenciones goes through the atencion service so the seed exercises the
// exact same upsert-plus-reconciliation path the API uses: slot creation,
// declarative plan application and shrink all happen inside the service
// transaction. The seeder acts as SUPER_ADMIN, bypassing ownership checks.
func (s *Seeder) seedAtenciones(ctx context.Context) error {
	actor := service.Actor{Rol: model.RolSuperAdmin}

	for _, fx := range atencionesSeed {
		rec, ok := s.porClave[fx.RecaladaClave]
		if !ok {
			return fmt.Errorf("seed atenciones: recalada %q no fue sembrada", fx.RecaladaClave)
		}
		supervisorID, ok := s.supervisores[fx.SupervisorEmail]
		if !ok {
			return fmt.Errorf("seed atenciones: supervisor %q no fue sembrado", fx.SupervisorEmail)
		}

		inicio := timeutil.AddMinutes(rec.FechaArriboProgramada, fx.InicioMin)
		fin := timeutil.AddMinutes(inicio, fx.DuracionMin)

		plan := make([]dto.TurnoPlanEntry, 0, len(fx.Plan))
		for _, p := range fx.Plan {
			entry := dto.TurnoPlanEntry{
				Numero:            p.Numero,
				Estado:            p.Estado,
				MotivoCancelacion: p.Motivo,
			}
			if p.GuiaEmail != "" {
				guiaID, ok := s.guias[p.GuiaEmail]
				if !ok {
					return fmt.Errorf("seed atenciones: guia %q no fue sembrada", p.GuiaEmail)
				}
				entry.GuiaID = strPtr(guiaID.String())
			}
			if p.CheckInMin != nil {
				entry.CheckInAt = timePtr(timeutil.AddMinutes(inicio, *p.CheckInMin))
			}
			if p.CheckOutMin != nil {
				entry.CheckOutAt = timePtr(timeutil.AddMinutes(inicio, *p.CheckOutMin))
			}
			if p.Estado == model.TurnoCancelado {
				entry.CanceladoAt = timePtr(inicio)
			}
			plan = append(plan, entry)
		}

		req := dto.UpsertAtencionRequest{
			RecaladaID:   rec.ID.String(),
			SupervisorID: supervisorID.String(),
			FechaInicio:  inicio,
			FechaFin:     fin,
			TurnosTotal:  fx.TurnosTotal,
			Estado:       fx.Estado,
			Plan:         plan,
		}
		if _, err := s.atenciones.Upsert(ctx, actor, req); err != nil {
			return fmt.Errorf("seed atenciones (%s): %w", fx.RecaladaClave, err)
		}
	}

	log.Info().Int("total", len(atencionesSeed)).Msg("seed: atenciones")
	return nil
}
