package service

import (
	"context"
	"fmt"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AtencionService interface {
	// Upsert resolves the window by its logical identity
	// (recalada, inicio, fin) and reconciles its turnos against TurnosTotal
	// and the declarative plan. Idempotent for identical input.
	Upsert(ctx context.Context, actor Actor, req dto.UpsertAtencionRequest) (*dto.AtencionResponse, error)
	Cancelar(ctx context.Context, actor Actor, id uuid.UUID, motivo string) error
	Obtener(ctx context.Context, id uuid.UUID) (*dto.AtencionResponse, error)
	ListarPorRecalada(ctx context.Context, recaladaID uuid.UUID) ([]dto.AtencionResponse, error)
}

type atencionService struct {
	repo         repository.AtencionRepository
	turnoRepo    repository.TurnoRepository
	recaladaRepo repository.RecaladaRepository
	usuarioRepo  repository.UsuarioRepository
}

func NewAtencionService(
	repo repository.AtencionRepository,
	turnoRepo repository.TurnoRepository,
	recaladaRepo repository.RecaladaRepository,
	usuarioRepo repository.UsuarioRepository,
) AtencionService {
	return &atencionService{
		repo:         repo,
		turnoRepo:    turnoRepo,
		recaladaRepo: recaladaRepo,
		usuarioRepo:  usuarioRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Upsert ────────────────────────────────────────────────────────────────────
// 1. Resolve window identity: exact (recalada, inicio, fin) match updates in
//    place — the id, and therefore the turnos, are preserved; no match creates.
// 2. In ONE transaction:
//    a. ensure turnos 1..TurnosTotal exist (new ones AVAILABLE/unassigned,
//       existing ones only get their window times refreshed);
//    b. apply the per-turno plan (full replace of mutable fields; entries
//       outside 1..TurnosTotal silently skipped);
//    c. shrink: delete turnos beyond TurnosTotal only when AVAILABLE and
//       unassigned — never a slot with history.

func (s *atencionService) Upsert(ctx context.Context, actor Actor, req dto.UpsertAtencionRequest) (*dto.AtencionResponse, error) {
	recaladaID, _ := uuid.Parse(req.RecaladaID)
	supervisorID, _ := uuid.Parse(req.SupervisorID)

	if _, err := s.recaladaRepo.FindByID(ctx, recaladaID); err != nil {
		return nil, ErrNoEncontrado
	}
	if err := s.puedeGestionar(ctx, actor, supervisorID); err != nil {
		return nil, err
	}

	atencion, err := s.repo.FindByIdentidad(ctx, recaladaID, req.FechaInicio, req.FechaFin)
	if err == gorm.ErrRecordNotFound {
		atencion = &model.Atencion{
			RecaladaID:  recaladaID,
			FechaInicio: req.FechaInicio,
			FechaFin:    req.FechaFin,
		}
		atencion.SupervisorID = supervisorID
		atencion.TurnosTotal = req.TurnosTotal
		atencion.Estado = req.Estado
		if err := s.repo.Create(ctx, atencion); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		// Full replace of mutable fields; a window leaving CANCELED loses its
		// cancellation data
		atencion.SupervisorID = supervisorID
		atencion.TurnosTotal = req.TurnosTotal
		atencion.Estado = req.Estado
		if req.Estado != model.AtencionCancelada {
			atencion.CanceladaAt = nil
			atencion.MotivoCancelacion = nil
		}
		if err := s.repo.Update(ctx, atencion); err != nil {
			return nil, err
		}
	}

	if err := s.reconciliarTurnos(ctx, atencion, req.Plan); err != nil {
		return nil, err
	}

	return s.Obtener(ctx, atencion.ID)
}

// reconciliarTurnos applies the three reconciliation phases atomically.
func (s *atencionService) reconciliarTurnos(ctx context.Context, atencion *model.Atencion, plan []dto.TurnoPlanEntry) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// a. ensure 1..TurnosTotal
		for numero := 1; numero <= atencion.TurnosTotal; numero++ {
			existing, err := s.turnoRepo.FindPorNumero(ctx, tx, atencion.ID, numero)
			if err == gorm.ErrRecordNotFound {
				nuevo := &model.Turno{
					AtencionID:  atencion.ID,
					Numero:      numero,
					Estado:      model.TurnoDisponible,
					FechaInicio: atencion.FechaInicio,
					FechaFin:    atencion.FechaFin,
				}
				if err := s.turnoRepo.Create(ctx, tx, nuevo); err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			// existing slots keep status/assignment here; only window times refresh
			if err := s.turnoRepo.RefrescarHorario(ctx, tx, existing.ID, atencion.FechaInicio, atencion.FechaFin); err != nil {
				return err
			}
		}

		// b. apply plan — full replace of the mutable fields
		for _, entry := range plan {
			if entry.Numero < 1 || entry.Numero > atencion.TurnosTotal {
				continue // out of range: silently skipped
			}
			turno, err := s.turnoRepo.FindPorNumero(ctx, tx, atencion.ID, entry.Numero)
			if err != nil {
				return err
			}
			turno.Estado = entry.Estado
			turno.GuiaID = nil
			if entry.GuiaID != nil {
				gid, err := uuid.Parse(*entry.GuiaID)
				if err != nil {
					return fmt.Errorf("turno %d: guia_id invalido: %w", entry.Numero, err)
				}
				turno.GuiaID = &gid
			}
			turno.CheckInAt = entry.CheckInAt
			turno.CheckOutAt = entry.CheckOutAt
			turno.CanceladoAt = entry.CanceladoAt
			turno.MotivoCancelacion = entry.MotivoCancelacion
			if err := s.turnoRepo.Save(ctx, tx, turno); err != nil {
				return err
			}
		}

		// c. shrink — only pristine slots beyond the target are deletable
		excedentes, err := s.turnoRepo.ListExcedentes(ctx, tx, atencion.ID, atencion.TurnosTotal)
		if err != nil {
			return err
		}
		for _, t := range excedentes {
			if t.Estado == model.TurnoDisponible && t.GuiaID == nil {
				if err := s.turnoRepo.Delete(ctx, tx, t.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *atencionService) Cancelar(ctx context.Context, actor Actor, id uuid.UUID, motivo string) error {
	atencion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNoEncontrado
	}
	if err := s.puedeGestionar(ctx, actor, atencion.SupervisorID); err != nil {
		return err
	}

	now := time.Now()
	atencion.Estado = model.AtencionCancelada
	atencion.CanceladaAt = &now
	atencion.MotivoCancelacion = &motivo
	return s.repo.Update(ctx, atencion)
}

func (s *atencionService) Obtener(ctx context.Context, id uuid.UUID) (*dto.AtencionResponse, error) {
	atencion, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	return atencionToResponse(atencion), nil
}

func (s *atencionService) ListarPorRecalada(ctx context.Context, recaladaID uuid.UUID) ([]dto.AtencionResponse, error) {
	atenciones, err := s.repo.ListPorRecalada(ctx, recaladaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AtencionResponse, len(atenciones))
	for i := range atenciones {
		resp[i] = *atencionToResponse(&atenciones[i])
	}
	return resp, nil
}

func (s *atencionService) puedeGestionar(ctx context.Context, actor Actor, supervisorID uuid.UUID) error {
	if actor.Rol == model.RolSuperAdmin {
		return nil
	}
	perfil, err := s.usuarioRepo.FindSupervisorPorUsuario(ctx, actor.UsuarioID)
	if err != nil || perfil.ID != supervisorID {
		return ErrNoAutorizado
	}
	return nil
}

func atencionToResponse(a *model.Atencion) *dto.AtencionResponse {
	resp := &dto.AtencionResponse{
		ID:                a.ID.String(),
		RecaladaID:        a.RecaladaID.String(),
		SupervisorID:      a.SupervisorID.String(),
		FechaInicio:       a.FechaInicio,
		FechaFin:          a.FechaFin,
		TurnosTotal:       a.TurnosTotal,
		Estado:            a.Estado,
		CanceladaAt:       a.CanceladaAt,
		MotivoCancelacion: a.MotivoCancelacion,
		Turnos:            make([]dto.TurnoResponse, len(a.Turnos)),
	}
	for i := range a.Turnos {
		resp.Turnos[i] = turnoToResponse(&a.Turnos[i])
	}
	return resp
}

func turnoToResponse(t *model.Turno) dto.TurnoResponse {
	resp := dto.TurnoResponse{
		ID:                t.ID.String(),
		AtencionID:        t.AtencionID.String(),
		Numero:            t.Numero,
		Estado:            t.Estado,
		FechaInicio:       t.FechaInicio,
		FechaFin:          t.FechaFin,
		CheckInAt:         t.CheckInAt,
		CheckOutAt:        t.CheckOutAt,
		CanceladoAt:       t.CanceladoAt,
		MotivoCancelacion: t.MotivoCancelacion,
	}
	if t.GuiaID != nil {
		gid := t.GuiaID.String()
		resp.GuiaID = &gid
	}
	return resp
}
