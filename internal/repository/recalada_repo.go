package repository

import (
	"context"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VotoPais is one aggregation row of the buque-pais backfill: how many
// recaladas were recorded for a buque against a given origin country.
type VotoPais struct {
	BuqueID      uuid.UUID
	PaisOrigenID uuid.UUID
	Total        int64
}

type RecaladaRepository interface {
	Create(ctx context.Context, r *model.Recalada) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recalada, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Recalada, error)
	FindPorBuqueYArribo(ctx context.Context, buqueID uuid.UUID, arribo time.Time) (*model.Recalada, error)
	Update(ctx context.Context, r *model.Recalada) error
	List(ctx context.Context, filter dto.RecaladaFilter) ([]model.Recalada, int64, error)
	// ContarVotosPais aggregates recaladas by (buque, pais origen) with a
	// deterministic order: per buque, highest count first, ties broken by
	// lowest pais id.
	ContarVotosPais(ctx context.Context) ([]VotoPais, error)
	CountPorPrefijo(ctx context.Context, prefijo string) (int64, error)
}

type recaladaRepo struct{ db *gorm.DB }

func NewRecaladaRepository(db *gorm.DB) RecaladaRepository { return &recaladaRepo{db: db} }

func (r *recaladaRepo) Create(ctx context.Context, rec *model.Recalada) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recaladaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Recalada, error) {
	var rec model.Recalada
	err := r.db.WithContext(ctx).
		Preload("Buque").Preload("PaisOrigen").
		Preload("Supervisor.Usuario").
		Preload("Atenciones.Turnos").
		First(&rec, id).Error
	return &rec, err
}

func (r *recaladaRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Recalada, error) {
	var rec model.Recalada
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&rec).Error
	return &rec, err
}

func (r *recaladaRepo) FindPorBuqueYArribo(ctx context.Context, buqueID uuid.UUID, arribo time.Time) (*model.Recalada, error) {
	var rec model.Recalada
	err := r.db.WithContext(ctx).
		Where("buque_id = ? AND fecha_arribo_programada = ?", buqueID, arribo).
		First(&rec).Error
	return &rec, err
}

func (r *recaladaRepo) Update(ctx context.Context, rec *model.Recalada) error {
	// Save writes the full row, nil pointers included — lifecycle transitions
	// must clear fields that no longer apply (see RecaladaService)
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recaladaRepo) List(ctx context.Context, filter dto.RecaladaFilter) ([]model.Recalada, int64, error) {
	var recaladas []model.Recalada
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Recalada{})
	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.BuqueID != "" {
		q = q.Where("buque_id = ?", filter.BuqueID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Buque").Preload("PaisOrigen").
		Order("fecha_arribo_programada DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&recaladas).Error
	return recaladas, total, err
}

func (r *recaladaRepo) ContarVotosPais(ctx context.Context) ([]VotoPais, error) {
	var votos []VotoPais
	err := r.db.WithContext(ctx).Model(&model.Recalada{}).
		Select("buque_id, pais_origen_id, COUNT(*) AS total").
		Group("buque_id, pais_origen_id").
		Order("buque_id, total DESC, pais_origen_id").
		Scan(&votos).Error
	return votos, err
}

func (r *recaladaRepo) CountPorPrefijo(ctx context.Context, prefijo string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Recalada{}).
		Where("codigo LIKE ?", prefijo+"%").Count(&n).Error
	return n, err
}
