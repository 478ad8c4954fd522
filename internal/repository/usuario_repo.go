package repository

import (
	"context"
	"strings"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	ListAll(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	// Role profiles — 1:1 by UsuarioID
	UpsertSupervisor(ctx context.Context, s *model.Supervisor) error
	UpsertGuia(ctx context.Context, g *model.Guia) error
	FindSupervisorByID(ctx context.Context, id uuid.UUID) (*model.Supervisor, error)
	FindSupervisorPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Supervisor, error)
	FindGuiaByID(ctx context.Context, id uuid.UUID) (*model.Guia, error)
	FindGuiaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Guia, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Where("activo = true").Find(&users).Error
	return users, err
}

func (r *usuarioRepo) ListAll(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Find(&users).Error
	return users, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *usuarioRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("activo", true).Error
}

// UpsertSupervisor creates or updates the 1:1 Supervisor profile for s.UsuarioID.
func (r *usuarioRepo) UpsertSupervisor(ctx context.Context, s *model.Supervisor) error {
	var existing model.Supervisor
	err := r.db.WithContext(ctx).Where("usuario_id = ?", s.UsuarioID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(s).Error
}

// UpsertGuia creates or updates the 1:1 Guia profile for g.UsuarioID.
func (r *usuarioRepo) UpsertGuia(ctx context.Context, g *model.Guia) error {
	var existing model.Guia
	err := r.db.WithContext(ctx).Where("usuario_id = ?", g.UsuarioID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(g).Error
	}
	if err != nil {
		return err
	}
	g.ID = existing.ID
	g.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *usuarioRepo) FindSupervisorByID(ctx context.Context, id uuid.UUID) (*model.Supervisor, error) {
	var s model.Supervisor
	err := r.db.WithContext(ctx).Preload("Usuario").First(&s, id).Error
	return &s, err
}

func (r *usuarioRepo) FindSupervisorPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Supervisor, error) {
	var s model.Supervisor
	err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).First(&s).Error
	return &s, err
}

func (r *usuarioRepo) FindGuiaByID(ctx context.Context, id uuid.UUID) (*model.Guia, error) {
	var g model.Guia
	err := r.db.WithContext(ctx).Preload("Usuario").First(&g, id).Error
	return &g, err
}

func (r *usuarioRepo) FindGuiaPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Guia, error) {
	var g model.Guia
	err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).First(&g).Error
	return &g, err
}
