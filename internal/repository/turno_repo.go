package repository

import (
	"context"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TurnoRepository persists shift slots. Methods taking tx participate in the
// reconciliation transaction of AtencionService; tx may be nil in unit tests
// (stub implementations ignore it).
type TurnoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, t *model.Turno) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Turno, error)
	FindPorNumero(ctx context.Context, tx *gorm.DB, atencionID uuid.UUID, numero int) (*model.Turno, error)
	Save(ctx context.Context, tx *gorm.DB, t *model.Turno) error
	RefrescarHorario(ctx context.Context, tx *gorm.DB, id uuid.UUID, inicio, fin time.Time) error
	ListPorAtencion(ctx context.Context, atencionID uuid.UUID) ([]model.Turno, error)
	// ListExcedentes returns slots numbered beyond the window's target count.
	ListExcedentes(ctx context.Context, tx *gorm.DB, atencionID uuid.UUID, turnosTotal int) ([]model.Turno, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ListPorGuia(ctx context.Context, guiaID uuid.UUID) ([]model.Turno, error)
	Update(ctx context.Context, t *model.Turno) error
}

type turnoRepo struct{ db *gorm.DB }

func NewTurnoRepository(db *gorm.DB) TurnoRepository { return &turnoRepo{db: db} }

func (r *turnoRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *turnoRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Turno) error {
	return r.conn(tx).WithContext(ctx).Create(t).Error
}

func (r *turnoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Turno, error) {
	var t model.Turno
	err := r.db.WithContext(ctx).Preload("Guia.Usuario").Preload("Atencion").First(&t, id).Error
	return &t, err
}

func (r *turnoRepo) FindPorNumero(ctx context.Context, tx *gorm.DB, atencionID uuid.UUID, numero int) (*model.Turno, error) {
	var t model.Turno
	err := r.conn(tx).WithContext(ctx).
		Where("atencion_id = ? AND numero = ?", atencionID, numero).
		First(&t).Error
	return &t, err
}

func (r *turnoRepo) Save(ctx context.Context, tx *gorm.DB, t *model.Turno) error {
	return r.conn(tx).WithContext(ctx).Save(t).Error
}

func (r *turnoRepo) RefrescarHorario(ctx context.Context, tx *gorm.DB, id uuid.UUID, inicio, fin time.Time) error {
	return r.conn(tx).WithContext(ctx).Model(&model.Turno{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"fecha_inicio": inicio, "fecha_fin": fin}).Error
}

func (r *turnoRepo) ListPorAtencion(ctx context.Context, atencionID uuid.UUID) ([]model.Turno, error) {
	var turnos []model.Turno
	err := r.db.WithContext(ctx).
		Where("atencion_id = ?", atencionID).
		Order("numero").
		Find(&turnos).Error
	return turnos, err
}

func (r *turnoRepo) ListExcedentes(ctx context.Context, tx *gorm.DB, atencionID uuid.UUID, turnosTotal int) ([]model.Turno, error) {
	var turnos []model.Turno
	err := r.conn(tx).WithContext(ctx).
		Where("atencion_id = ? AND numero > ?", atencionID, turnosTotal).
		Order("numero").
		Find(&turnos).Error
	return turnos, err
}

func (r *turnoRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).Delete(&model.Turno{}, id).Error
}

func (r *turnoRepo) ListPorGuia(ctx context.Context, guiaID uuid.UUID) ([]model.Turno, error) {
	var turnos []model.Turno
	err := r.db.WithContext(ctx).
		Where("guia_id = ?", guiaID).
		Preload("Atencion").
		Order("fecha_inicio DESC").
		Find(&turnos).Error
	return turnos, err
}

func (r *turnoRepo) Update(ctx context.Context, t *model.Turno) error {
	return r.db.WithContext(ctx).Save(t).Error
}
