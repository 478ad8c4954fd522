package service

import (
	"context"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/repository"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/security"

	"github.com/google/uuid"
)

type UsuarioService interface {
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context, incluirInactivos bool) ([]dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type usuarioService struct {
	repo   repository.UsuarioRepository
	hasher *security.Hasher
}

func NewUsuarioService(repo repository.UsuarioRepository, hasher *security.Hasher) UsuarioService {
	return &usuarioService{repo: repo, hasher: hasher}
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailDuplicado
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Email:        req.Email,
		PasswordHash: hash,
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Rol:          req.Rol,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.upsertPerfil(ctx, user, req.Telefono, req.Zona, req.Idiomas); err != nil {
		return nil, err
	}

	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *usuarioService) Listar(ctx context.Context, incluirInactivos bool) ([]dto.UsuarioResponse, error) {
	var users []model.Usuario
	var err error
	if incluirInactivos {
		users, err = s.repo.ListAll(ctx)
	} else {
		users, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = usuarioToResponse(&users[i])
	}
	return resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	if req.Nombre != "" {
		user.Nombre = req.Nombre
	}
	if req.Apellido != "" {
		user.Apellido = req.Apellido
	}
	if req.Rol != "" {
		// A role change does NOT delete the previous role's profile row —
		// worked turnos keep referencing it (see DESIGN.md).
		user.Rol = req.Rol
	}
	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.upsertPerfil(ctx, user, req.Telefono, req.Zona, req.Idiomas); err != nil {
		return nil, err
	}

	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *usuarioService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *usuarioService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}

// upsertPerfil creates or refreshes the 1:1 role profile matching user.Rol.
// SUPER_ADMIN has no profile row.
func (s *usuarioService) upsertPerfil(ctx context.Context, user *model.Usuario, telefono, zona, idiomas string) error {
	switch user.Rol {
	case model.RolSupervisor:
		return s.repo.UpsertSupervisor(ctx, &model.Supervisor{
			UsuarioID: user.ID,
			Telefono:  telefono,
			Zona:      zona,
		})
	case model.RolGuia:
		return s.repo.UpsertGuia(ctx, &model.Guia{
			UsuarioID:  user.ID,
			Telefono:   telefono,
			Idiomas:    idiomas,
			Disponible: true,
		})
	}
	return nil
}
