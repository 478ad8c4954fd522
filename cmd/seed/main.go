// cmd/seed/main.go — Migra el esquema y puebla la base de datos.
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/config"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/infra"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/repository"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/security"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/seed"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// os.Exit skips deferred calls, so all cleanup lives inside run; by the
	// time main decides the exit code the connection is already closed.
	if err := run(); err != nil {
		log.Error().Err(err).Msg("seed fallido")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// NewDatabase migrates the schema as part of opening the connection.
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	hasher := security.NewHasher(cfg.PasswordPepper)

	paisRepo := repository.NewPaisRepository(db)
	buqueRepo := repository.NewBuqueRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	recaladaRepo := repository.NewRecaladaRepository(db)
	atencionRepo := repository.NewAtencionRepository(db)
	turnoRepo := repository.NewTurnoRepository(db)

	// The seed reuses the service-layer upsert so turnos are reconciled by
	// the same code path the API exposes.
	atencionSvc := service.NewAtencionService(atencionRepo, turnoRepo, recaladaRepo, usuarioRepo)

	seeder := seed.NewSeeder(cfg, hasher, paisRepo, buqueRepo, usuarioRepo, recaladaRepo, atencionSvc)
	return seeder.Run(context.Background())
}
