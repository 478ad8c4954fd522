package repository

import (
	"context"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaisRepository interface {
	Create(ctx context.Context, p *model.Pais) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pais, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Pais, error)
	UpdateNombre(ctx context.Context, id uuid.UUID, nombre string) error
	List(ctx context.Context) ([]model.Pais, error)
}

type paisRepo struct{ db *gorm.DB }

func NewPaisRepository(db *gorm.DB) PaisRepository { return &paisRepo{db: db} }

func (r *paisRepo) Create(ctx context.Context, p *model.Pais) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paisRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pais, error) {
	var p model.Pais
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *paisRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Pais, error) {
	var p model.Pais
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&p).Error
	return &p, err
}

// UpdateNombre only touches the display name — Codigo is immutable once created.
func (r *paisRepo) UpdateNombre(ctx context.Context, id uuid.UUID, nombre string) error {
	return r.db.WithContext(ctx).Model(&model.Pais{}).Where("id = ?", id).Update("nombre", nombre).Error
}

func (r *paisRepo) List(ctx context.Context) ([]model.Pais, error) {
	var paises []model.Pais
	err := r.db.WithContext(ctx).Order("nombre").Find(&paises).Error
	return paises, err
}
