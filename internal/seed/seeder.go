// Package seed populates the database with reference data and, in
// development, a full demo workflow (recaladas, atenciones, turnos).
//
// Every step is idempotent: entities are upserted by their natural business
// key (pais codigo, buque nombre, usuario email, recalada codigo, atencion
// identity tuple), so re-running converges to the same stored state. Any
// failure is fatal — the workflow assumes operator intervention, never
// retries.
package seed

import (
	"context"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/config"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/repository"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/security"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Seeder sequences the seed steps in dependency order.
type Seeder struct {
	cfg    *config.Config
	hasher *security.Hasher

	paises    repository.PaisRepository
	buques    repository.BuqueRepository
	usuarios  repository.UsuarioRepository
	recaladas repository.RecaladaRepository

	atenciones service.AtencionService

	// resolved during the run, keyed by fixture handles
	supervisores map[string]uuid.UUID // email → supervisor profile id
	guias        map[string]uuid.UUID // email → guia profile id
	porClave     map[string]*model.Recalada
}

func NewSeeder(
	cfg *config.Config,
	hasher *security.Hasher,
	paises repository.PaisRepository,
	buques repository.BuqueRepository,
	usuarios repository.UsuarioRepository,
	recaladas repository.RecaladaRepository,
	atenciones service.AtencionService,
) *Seeder {
	return &Seeder{
		cfg:          cfg,
		hasher:       hasher,
		paises:       paises,
		buques:       buques,
		usuarios:     usuarios,
		recaladas:    recaladas,
		atenciones:   atenciones,
		supervisores: make(map[string]uuid.UUID),
		guias:        make(map[string]uuid.UUID),
		porClave:     make(map[string]*model.Recalada),
	}
}

// Run executes the full workflow. Steps run strictly in order; the first
// error aborts the run.
func (s *Seeder) Run(ctx context.Context) error {
	log.Info().Str("env", s.cfg.Env).Msg("seed: iniciando")

	if err := s.seedPaises(ctx); err != nil {
		return err
	}
	if err := s.seedBuques(ctx); err != nil {
		return err
	}
	if err := s.backfillPaisBuques(ctx); err != nil {
		return err
	}
	if err := s.seedUsuarios(ctx); err != nil {
		return err
	}

	if s.cfg.Env == "development" {
		if err := s.seedRecaladas(ctx); err != nil {
			return err
		}
		if err := s.seedAtenciones(ctx); err != nil {
			return err
		}
	} else {
		log.Info().Msg("seed: datos de demo omitidos fuera de development")
	}

	log.Info().Msg("seed: completado")
	return nil
}
