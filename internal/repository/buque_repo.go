package repository

import (
	"context"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BuqueRepository interface {
	Create(ctx context.Context, b *model.Buque) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Buque, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Buque, error)
	Update(ctx context.Context, b *model.Buque) error
	List(ctx context.Context) ([]model.Buque, error)
	// ListSinPais returns ships missing a flag country. Runs on tx when given
	// so the backfill's read-then-write stays atomic.
	ListSinPais(ctx context.Context, tx *gorm.DB) ([]model.Buque, error)
	AsignarPais(ctx context.Context, tx *gorm.DB, buqueID, paisID uuid.UUID) error
	// AsignarPaisATodosSinPais bulk-assigns paisID to every ship still missing
	// a country. Returns the number of rows updated.
	AsignarPaisATodosSinPais(ctx context.Context, paisID uuid.UUID) (int64, error)
	CountSinPais(ctx context.Context) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in callers
}

type buqueRepo struct{ db *gorm.DB }

func NewBuqueRepository(db *gorm.DB) BuqueRepository { return &buqueRepo{db: db} }

func (r *buqueRepo) DB() *gorm.DB { return r.db }

func (r *buqueRepo) Create(ctx context.Context, b *model.Buque) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *buqueRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Buque, error) {
	var b model.Buque
	err := r.db.WithContext(ctx).Preload("Pais").First(&b, id).Error
	return &b, err
}

func (r *buqueRepo) FindByNombre(ctx context.Context, nombre string) (*model.Buque, error) {
	var b model.Buque
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&b).Error
	return &b, err
}

func (r *buqueRepo) Update(ctx context.Context, b *model.Buque) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *buqueRepo) List(ctx context.Context) ([]model.Buque, error) {
	var buques []model.Buque
	err := r.db.WithContext(ctx).Preload("Pais").Order("nombre").Find(&buques).Error
	return buques, err
}

func (r *buqueRepo) ListSinPais(ctx context.Context, tx *gorm.DB) ([]model.Buque, error) {
	if tx == nil {
		tx = r.db
	}
	var buques []model.Buque
	err := tx.WithContext(ctx).Where("pais_id IS NULL").Find(&buques).Error
	return buques, err
}

func (r *buqueRepo) AsignarPais(ctx context.Context, tx *gorm.DB, buqueID, paisID uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Model(&model.Buque{}).
		Where("id = ?", buqueID).
		Update("pais_id", paisID).Error
}

func (r *buqueRepo) AsignarPaisATodosSinPais(ctx context.Context, paisID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Buque{}).
		Where("pais_id IS NULL").
		Update("pais_id", paisID)
	return result.RowsAffected, result.Error
}

func (r *buqueRepo) CountSinPais(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Buque{}).Where("pais_id IS NULL").Count(&n).Error
	return n, err
}
