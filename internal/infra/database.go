package infra

import (
	"fmt"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// for all tables and applies the idempotent SQL patches GORM cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates or updates the schema. Called from NewDatabase so
// both the server and the seeder open against a current schema.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Pais{},
		&model.Buque{},
		&model.Usuario{},
		&model.Supervisor{},
		&model.Guia{},
		&model.Recalada{},
		&model.Atencion{},
		&model.Turno{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
// Each statement uses IF NOT EXISTS semantics so re-running is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// gen_random_uuid() needs pgcrypto on Postgres < 13
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		// partial index for the backfill's "ships without country" scans
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_buques_sin_pais') THEN
		    CREATE INDEX idx_buques_sin_pais ON buques (id) WHERE pais_id IS NULL;
		  END IF;
		END $$`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
