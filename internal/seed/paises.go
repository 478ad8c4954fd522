package seed

import (
	"context"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// seedPaises upserts the reference country list by codigo. The codigo is
// immutable once created; only the display name is refreshed on later runs.
func (s *Seeder) seedPaises(ctx context.Context) error {
	creados, actualizados := 0, 0

	for _, fx := range paisesSeed {
		existing, err := s.paises.FindByCodigo(ctx, fx.Codigo)
		if err == gorm.ErrRecordNotFound {
			if err := s.paises.Create(ctx, &model.Pais{Codigo: fx.Codigo, Nombre: fx.Nombre}); err != nil {
				return err
			}
			creados++
			continue
		}
		if err != nil {
			return err
		}
		if existing.Nombre != fx.Nombre {
			if err := s.paises.UpdateNombre(ctx, existing.ID, fx.Nombre); err != nil {
				return err
			}
			actualizados++
		}
	}

	log.Info().Int("creados", creados).Int("actualizados", actualizados).Msg("seed: paises")
	return nil
}
