package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// seedBuques upserts the ship catalog by nombre. An unknown pais codigo is an
// integrity error and aborts the run without creating the ship. The update
// path rewrites naviera, capacidad, codigo and pais — repairing any buque
// whose country link was missing.
func (s *Seeder) seedBuques(ctx context.Context) error {
	for _, fx := range buquesSeed {
		pais, err := s.paises.FindByCodigo(ctx, fx.PaisCodigo)
		if err != nil {
			return fmt.Errorf("seed buques: pais %q no existe, no se puede crear el buque %q", fx.PaisCodigo, fx.Nombre)
		}
		paisID := pais.ID
		codigo := strings.ToUpper(strings.TrimSpace(fx.Codigo))

		existing, err := s.buques.FindByNombre(ctx, fx.Nombre)
		if err == gorm.ErrRecordNotFound {
			nuevo := &model.Buque{
				Codigo:    codigo,
				Nombre:    fx.Nombre,
				Naviera:   fx.Naviera,
				Capacidad: fx.Capacidad,
				PaisID:    &paisID,
				Activo:    true,
			}
			if err := s.buques.Create(ctx, nuevo); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		existing.Codigo = codigo
		existing.Naviera = fx.Naviera
		existing.Capacidad = fx.Capacidad
		existing.PaisID = &paisID
		if err := s.buques.Update(ctx, existing); err != nil {
			return err
		}
	}

	log.Info().Int("total", len(buquesSeed)).Msg("seed: buques")
	return nil
}

// backfillPaisBuques guarantees no buque is left without a country after
// partial or historical loads:
//
//  1. aggregate recaladas by (buque, pais origen) — the repository orders the
//     rows per buque by count DESC, pais id ASC, so the majority vote and its
//     tie-break are deterministic;
//  2. in one transaction, assign each buque missing a pais its winning vote
//     (provided the pais still exists);
//  3. bulk-assign the default pais to any buque still missing one;
//  4. verify — a remaining NULL pais is a data-integrity error and fatal.
//
// Running it again once every buque has a pais is a no-op.
func (s *Seeder) backfillPaisBuques(ctx context.Context) error {
	votos, err := s.recaladas.ContarVotosPais(ctx)
	if err != nil {
		return err
	}

	// First row per buque is the winner thanks to the aggregation order.
	ganador := make(map[uuid.UUID]uuid.UUID)
	for _, v := range votos {
		if _, ok := ganador[v.BuqueID]; !ok {
			ganador[v.BuqueID] = v.PaisOrigenID
		}
	}

	asignados := 0
	err = runTx(ctx, s.buques.DB(), func(tx *gorm.DB) error {
		sinPais, err := s.buques.ListSinPais(ctx, tx)
		if err != nil {
			return err
		}
		for _, b := range sinPais {
			paisID, ok := ganador[b.ID]
			if !ok {
				continue // no history: handled by the default fallback below
			}
			if _, err := s.paises.FindByID(ctx, paisID); err != nil {
				continue // voted country no longer exists
			}
			if err := s.buques.AsignarPais(ctx, tx, b.ID, paisID); err != nil {
				return err
			}
			asignados++
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Default fallback — deliberate policy, not error recovery.
	porDefecto := int64(0)
	restantes, err := s.buques.CountSinPais(ctx)
	if err != nil {
		return err
	}
	if restantes > 0 {
		pais, err := s.paises.FindByCodigo(ctx, s.cfg.DefaultPaisCodigo)
		if err != nil {
			return fmt.Errorf("backfill: pais por defecto %q no existe", s.cfg.DefaultPaisCodigo)
		}
		porDefecto, err = s.buques.AsignarPaisATodosSinPais(ctx, pais.ID)
		if err != nil {
			return err
		}
	}

	// Final verification — this must never happen after steps 2-3.
	restantes, err = s.buques.CountSinPais(ctx)
	if err != nil {
		return err
	}
	if restantes > 0 {
		return fmt.Errorf("backfill: %d buques siguen sin pais despues del backfill", restantes)
	}

	log.Info().Int("por_voto", asignados).Int64("por_defecto", porDefecto).Msg("seed: backfill pais de buques")
	return nil
}
