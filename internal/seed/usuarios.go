package seed

import (
	"context"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// seedUsuarios creates the super admin in every environment and the demo
// accounts in development. An existing user is fully rewritten — fresh hash
// included — so changing SEED_USER_PASSWORD takes effect on the next run.
// Supervisor and guia profile ids are cached for the recalada/atencion steps.
func (s *Seeder) seedUsuarios(ctx context.Context) error {
	if err := s.upsertUsuario(ctx, usuarioSeed{
		Email:    s.cfg.SeedSuperAdminEmail,
		Nombre:   "Super",
		Apellido: "Admin",
		Rol:      model.RolSuperAdmin,
	}, s.cfg.SeedSuperAdminPassword); err != nil {
		return err
	}

	if s.cfg.Env != "development" {
		log.Info().Msg("seed: usuarios de demo omitidos fuera de development")
		return nil
	}

	for _, fx := range usuariosSeed {
		if err := s.upsertUsuario(ctx, fx, s.cfg.SeedUserPassword); err != nil {
			return err
		}
	}

	log.Info().Int("total", len(usuariosSeed)+1).Msg("seed: usuarios")
	return nil
}

func (s *Seeder) upsertUsuario(ctx context.Context, fx usuarioSeed, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	u, err := s.usuarios.FindByEmail(ctx, fx.Email)
	switch {
	case err == gorm.ErrRecordNotFound:
		u = &model.Usuario{
			Email:             fx.Email,
			PasswordHash:      hash,
			Nombre:            fx.Nombre,
			Apellido:          fx.Apellido,
			Rol:               fx.Rol,
			Activo:            true,
			PerfilCompleto:    true,
			EmailVerificadoAt: &now,
		}
		if err := s.usuarios.Create(ctx, u); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		u.PasswordHash = hash
		u.Nombre = fx.Nombre
		u.Apellido = fx.Apellido
		u.Rol = fx.Rol
		u.Activo = true
		u.PerfilCompleto = true
		if u.EmailVerificadoAt == nil {
			u.EmailVerificadoAt = &now
		}
		if err := s.usuarios.Update(ctx, u); err != nil {
			return err
		}
	}

	switch fx.Rol {
	case model.RolSupervisor:
		sup := &model.Supervisor{UsuarioID: u.ID, Telefono: fx.Telefono, Zona: fx.Zona}
		if err := s.usuarios.UpsertSupervisor(ctx, sup); err != nil {
			return err
		}
		s.supervisores[fx.Email] = sup.ID
	case model.RolGuia:
		g := &model.Guia{UsuarioID: u.ID, Telefono: fx.Telefono, Idiomas: fx.Idiomas, Disponible: true}
		if err := s.usuarios.UpsertGuia(ctx, g); err != nil {
			return err
		}
		s.guias[fx.Email] = g.ID
	}

	return nil
}
