package repository

import (
	"context"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AtencionRepository interface {
	Create(ctx context.Context, a *model.Atencion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Atencion, error)
	// FindByIdentidad resolves the logical identity of a service window:
	// exact match on (recalada, inicio, fin).
	FindByIdentidad(ctx context.Context, recaladaID uuid.UUID, inicio, fin time.Time) (*model.Atencion, error)
	Update(ctx context.Context, a *model.Atencion) error
	ListPorRecalada(ctx context.Context, recaladaID uuid.UUID) ([]model.Atencion, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type atencionRepo struct{ db *gorm.DB }

func NewAtencionRepository(db *gorm.DB) AtencionRepository { return &atencionRepo{db: db} }

func (r *atencionRepo) DB() *gorm.DB { return r.db }

func (r *atencionRepo) Create(ctx context.Context, a *model.Atencion) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *atencionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Atencion, error) {
	var a model.Atencion
	err := r.db.WithContext(ctx).
		Preload("Turnos", func(db *gorm.DB) *gorm.DB { return db.Order("numero") }).
		Preload("Supervisor.Usuario").
		First(&a, id).Error
	return &a, err
}

func (r *atencionRepo) FindByIdentidad(ctx context.Context, recaladaID uuid.UUID, inicio, fin time.Time) (*model.Atencion, error) {
	var a model.Atencion
	err := r.db.WithContext(ctx).
		Where("recalada_id = ? AND fecha_inicio = ? AND fecha_fin = ?", recaladaID, inicio, fin).
		First(&a).Error
	return &a, err
}

func (r *atencionRepo) Update(ctx context.Context, a *model.Atencion) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *atencionRepo) ListPorRecalada(ctx context.Context, recaladaID uuid.UUID) ([]model.Atencion, error) {
	var atenciones []model.Atencion
	err := r.db.WithContext(ctx).
		Where("recalada_id = ?", recaladaID).
		Preload("Turnos", func(db *gorm.DB) *gorm.DB { return db.Order("numero") }).
		Order("fecha_inicio").
		Find(&atenciones).Error
	return atenciones, err
}
