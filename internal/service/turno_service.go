package service

import (
	"context"
	"fmt"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/repository"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type TurnoService interface {
	Asignar(ctx context.Context, actor Actor, turnoID uuid.UUID, guiaID uuid.UUID) (*dto.TurnoResponse, error)
	CheckIn(ctx context.Context, actor Actor, turnoID uuid.UUID) (*dto.TurnoResponse, error)
	CheckOut(ctx context.Context, actor Actor, turnoID uuid.UUID) (*dto.TurnoResponse, error)
	Cancelar(ctx context.Context, actor Actor, turnoID uuid.UUID, motivo string) error
	ListarPorGuia(ctx context.Context, guiaID uuid.UUID) ([]dto.TurnoResponse, error)
}

type turnoService struct {
	repo        repository.TurnoRepository
	usuarioRepo repository.UsuarioRepository
	// dispatcher may be nil (unit tests, seed); assignment emails are then skipped
	dispatcher *worker.Dispatcher
}

func NewTurnoService(repo repository.TurnoRepository, usuarioRepo repository.UsuarioRepository, dispatcher *worker.Dispatcher) TurnoService {
	return &turnoService{repo: repo, usuarioRepo: usuarioRepo, dispatcher: dispatcher}
}

// Asignar moves an AVAILABLE turno to ASSIGNED for the given guide and
// enqueues the notification email.
func (s *turnoService) Asignar(ctx context.Context, actor Actor, turnoID uuid.UUID, guiaID uuid.UUID) (*dto.TurnoResponse, error) {
	turno, err := s.repo.FindByID(ctx, turnoID)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	if turno.Estado != model.TurnoDisponible {
		return nil, fmt.Errorf("%w: el turno %d no esta disponible", ErrTransicionInvalida, turno.Numero)
	}
	guia, err := s.usuarioRepo.FindGuiaByID(ctx, guiaID)
	if err != nil {
		return nil, fmt.Errorf("guia no encontrado")
	}
	if !guia.Disponible {
		return nil, fmt.Errorf("el guia no esta disponible")
	}

	turno.Estado = model.TurnoAsignado
	turno.GuiaID = &guiaID
	if err := s.repo.Update(ctx, turno); err != nil {
		return nil, err
	}

	if s.dispatcher != nil && guia.Usuario != nil {
		payload := worker.NotificacionTurnoPayload{
			Email:       guia.Usuario.Email,
			Nombre:      guia.Usuario.Nombre,
			TurnoNumero: turno.Numero,
			FechaInicio: turno.FechaInicio,
			FechaFin:    turno.FechaFin,
		}
		if err := s.dispatcher.EnqueueNotificacionTurno(ctx, payload); err != nil {
			// Assignment already committed; a lost notification is not fatal
			log.Warn().Err(err).Str("turno_id", turnoID.String()).Msg("no se pudo encolar la notificacion")
		}
	}

	resp := turnoToResponse(turno)
	return &resp, nil
}

// CheckIn marks the start of a worked shift. Only the assigned guide (or an
// admin/supervisor) may check in, and only from ASSIGNED.
func (s *turnoService) CheckIn(ctx context.Context, actor Actor, turnoID uuid.UUID) (*dto.TurnoResponse, error) {
	turno, err := s.repo.FindByID(ctx, turnoID)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	if err := s.puedeOperar(ctx, actor, turno); err != nil {
		return nil, err
	}
	if turno.Estado != model.TurnoAsignado {
		return nil, fmt.Errorf("%w: check-in requiere turno asignado", ErrTransicionInvalida)
	}

	now := time.Now()
	turno.Estado = model.TurnoEnCurso
	turno.CheckInAt = &now
	if err := s.repo.Update(ctx, turno); err != nil {
		return nil, err
	}
	resp := turnoToResponse(turno)
	return &resp, nil
}

// CheckOut closes a worked shift: IN_PROGRESS → COMPLETED.
func (s *turnoService) CheckOut(ctx context.Context, actor Actor, turnoID uuid.UUID) (*dto.TurnoResponse, error) {
	turno, err := s.repo.FindByID(ctx, turnoID)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	if err := s.puedeOperar(ctx, actor, turno); err != nil {
		return nil, err
	}
	if turno.Estado != model.TurnoEnCurso {
		return nil, fmt.Errorf("%w: check-out requiere turno en curso", ErrTransicionInvalida)
	}

	now := time.Now()
	turno.Estado = model.TurnoCompletado
	turno.CheckOutAt = &now
	if err := s.repo.Update(ctx, turno); err != nil {
		return nil, err
	}
	resp := turnoToResponse(turno)
	return &resp, nil
}

// Cancelar is only valid from a non-terminal state; COMPLETED and NO_SHOW are
// history and stay untouched.
func (s *turnoService) Cancelar(ctx context.Context, actor Actor, turnoID uuid.UUID, motivo string) error {
	turno, err := s.repo.FindByID(ctx, turnoID)
	if err != nil {
		return ErrNoEncontrado
	}
	if actor.Rol == model.RolGuia {
		return ErrNoAutorizado
	}
	switch turno.Estado {
	case model.TurnoCompletado, model.TurnoNoShow, model.TurnoCancelado:
		return fmt.Errorf("%w: el turno ya termino", ErrTransicionInvalida)
	}

	now := time.Now()
	turno.Estado = model.TurnoCancelado
	turno.CanceladoAt = &now
	turno.MotivoCancelacion = &motivo
	return s.repo.Update(ctx, turno)
}

func (s *turnoService) ListarPorGuia(ctx context.Context, guiaID uuid.UUID) ([]dto.TurnoResponse, error) {
	turnos, err := s.repo.ListPorGuia(ctx, guiaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TurnoResponse, len(turnos))
	for i := range turnos {
		resp[i] = turnoToResponse(&turnos[i])
	}
	return resp, nil
}

// puedeOperar lets admins and supervisors operate any turno; a GUIA only the
// turno assigned to their own profile.
func (s *turnoService) puedeOperar(ctx context.Context, actor Actor, turno *model.Turno) error {
	if actor.Rol == model.RolSuperAdmin || actor.Rol == model.RolSupervisor {
		return nil
	}
	perfil, err := s.usuarioRepo.FindGuiaPorUsuario(ctx, actor.UsuarioID)
	if err != nil || turno.GuiaID == nil || *turno.GuiaID != perfil.ID {
		return ErrNoAutorizado
	}
	return nil
}
