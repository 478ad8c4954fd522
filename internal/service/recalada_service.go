package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/infra"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/repository"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/timeutil"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller for ownership checks.
type Actor struct {
	UsuarioID uuid.UUID
	Rol       string
}

type RecaladaService interface {
	Crear(ctx context.Context, actor Actor, req dto.CrearRecaladaRequest) (*dto.RecaladaResponse, error)
	Actualizar(ctx context.Context, actor Actor, id uuid.UUID, req dto.ActualizarRecaladaRequest) (*dto.RecaladaResponse, error)
	Cancelar(ctx context.Context, actor Actor, id uuid.UUID, motivo string) error
	Obtener(ctx context.Context, id uuid.UUID) (*dto.RecaladaResponse, error)
	Listar(ctx context.Context, filter dto.RecaladaFilter) (*dto.RecaladaListResponse, error)
	GenerarReporte(ctx context.Context, id uuid.UUID) (string, error)
}

type recaladaService struct {
	repo        repository.RecaladaRepository
	buqueRepo   repository.BuqueRepository
	paisRepo    repository.PaisRepository
	usuarioRepo repository.UsuarioRepository
	pdfPath     string
}

func NewRecaladaService(
	repo repository.RecaladaRepository,
	buqueRepo repository.BuqueRepository,
	paisRepo repository.PaisRepository,
	usuarioRepo repository.UsuarioRepository,
	pdfPath string,
) RecaladaService {
	return &recaladaService{
		repo:        repo,
		buqueRepo:   buqueRepo,
		paisRepo:    paisRepo,
		usuarioRepo: usuarioRepo,
		pdfPath:     pdfPath,
	}
}

// GenerarCodigo builds the business code for a recalada created at instant
// now: RA-<year>-90<YYYYMMDD><seq>, with the date taken in the UTC-5 civil
// frame. The sequence restarts per civil day.
func GenerarCodigo(now time.Time, secuencia int64) string {
	return fmt.Sprintf("%s%d", PrefijoCodigo(now), secuencia)
}

// PrefijoCodigo is the per-civil-day code prefix shared by every recalada
// created on the same day; counting rows under it yields the next sequence.
func PrefijoCodigo(now time.Time) string {
	y, m, d := timeutil.CivilDate(now)
	return fmt.Sprintf("RA-%d-90%04d%02d%02d", y, y, int(m), d)
}

func (s *recaladaService) Crear(ctx context.Context, actor Actor, req dto.CrearRecaladaRequest) (*dto.RecaladaResponse, error) {
	buqueID, _ := uuid.Parse(req.BuqueID)
	paisID, _ := uuid.Parse(req.PaisOrigenID)
	supervisorID, _ := uuid.Parse(req.SupervisorID)

	if _, err := s.buqueRepo.FindByID(ctx, buqueID); err != nil {
		return nil, errors.New("buque no encontrado")
	}
	if _, err := s.paisRepo.FindByID(ctx, paisID); err != nil {
		return nil, errors.New("pais de origen no encontrado")
	}
	if _, err := s.usuarioRepo.FindSupervisorByID(ctx, supervisorID); err != nil {
		return nil, errors.New("supervisor no encontrado")
	}
	if req.FechaZarpeProgramada.Before(req.FechaArriboProgramada) {
		return nil, errors.New("el zarpe programado no puede ser anterior al arribo")
	}

	now := time.Now()
	previos, err := s.repo.CountPorPrefijo(ctx, PrefijoCodigo(now))
	if err != nil {
		return nil, err
	}

	rec := &model.Recalada{
		Codigo:                GenerarCodigo(now, previos+1),
		BuqueID:               buqueID,
		PaisOrigenID:          paisID,
		SupervisorID:          supervisorID,
		FechaArriboProgramada: req.FechaArriboProgramada,
		FechaZarpeProgramada:  req.FechaZarpeProgramada,
		Estado:                model.RecaladaProgramada,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return recaladaToResponse(rec), nil
}

// Actualizar replaces the full lifecycle state of the recalada. Fields that
// do not apply to the target Estado are explicitly nulled so nothing stale
// (an old cancellation reason, a leftover actual arrival) survives the
// transition. CANCELED must go through Cancelar.
func (s *recaladaService) Actualizar(ctx context.Context, actor Actor, id uuid.UUID, req dto.ActualizarRecaladaRequest) (*dto.RecaladaResponse, error) {
	if req.Estado == model.RecaladaCancelada {
		return nil, errors.New("use el endpoint de cancelacion")
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	if err := s.puedeGestionar(ctx, actor, rec.SupervisorID); err != nil {
		return nil, err
	}

	paisID, _ := uuid.Parse(req.PaisOrigenID)
	supervisorID, _ := uuid.Parse(req.SupervisorID)

	rec.PaisOrigenID = paisID
	rec.SupervisorID = supervisorID
	rec.FechaArriboProgramada = req.FechaArriboProgramada
	rec.FechaZarpeProgramada = req.FechaZarpeProgramada
	rec.Estado = req.Estado

	// Full replace — actual dates only where the lifecycle reached them
	rec.FechaArriboReal = nil
	rec.FechaZarpeReal = nil
	switch req.Estado {
	case model.RecaladaArribada:
		rec.FechaArriboReal = req.FechaArriboReal
	case model.RecaladaZarpada:
		rec.FechaArriboReal = req.FechaArriboReal
		rec.FechaZarpeReal = req.FechaZarpeReal
	}
	// Re-opening a previously canceled recalada clears its cancellation data
	rec.CanceladaAt = nil
	rec.MotivoCancelacion = nil

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return recaladaToResponse(rec), nil
}

func (s *recaladaService) Cancelar(ctx context.Context, actor Actor, id uuid.UUID, motivo string) error {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNoEncontrado
	}
	if err := s.puedeGestionar(ctx, actor, rec.SupervisorID); err != nil {
		return err
	}
	if rec.Estado == model.RecaladaZarpada {
		return fmt.Errorf("%w: una recalada zarpada no se puede cancelar", ErrTransicionInvalida)
	}

	now := time.Now()
	rec.Estado = model.RecaladaCancelada
	rec.CanceladaAt = &now
	rec.MotivoCancelacion = &motivo
	// Cancellation does NOT cascade to atenciones — their lifecycle is independent
	return s.repo.Update(ctx, rec)
}

func (s *recaladaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.RecaladaResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	return recaladaToResponse(rec), nil
}

func (s *recaladaService) Listar(ctx context.Context, filter dto.RecaladaFilter) (*dto.RecaladaListResponse, error) {
	recaladas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.RecaladaListResponse{
		Data:  make([]dto.RecaladaResponse, len(recaladas)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range recaladas {
		resp.Data[i] = *recaladaToResponse(&recaladas[i])
	}
	return resp, nil
}

// GenerarReporte renders the operations PDF and returns its path.
func (s *recaladaService) GenerarReporte(ctx context.Context, id uuid.UUID) (string, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", ErrNoEncontrado
	}

	// Resolve assigned guide emails for the roster table
	guiaEmails := make(map[string]string)
	for i := range rec.Atenciones {
		for _, t := range rec.Atenciones[i].Turnos {
			if t.GuiaID == nil {
				continue
			}
			if _, ok := guiaEmails[t.GuiaID.String()]; ok {
				continue
			}
			g, err := s.usuarioRepo.FindGuiaByID(ctx, *t.GuiaID)
			if err == nil && g.Usuario != nil {
				guiaEmails[t.GuiaID.String()] = g.Usuario.Email
			}
		}
	}

	return infra.GenerateRecaladaPDF(rec, guiaEmails, s.pdfPath)
}

// puedeGestionar allows SUPER_ADMIN always; a SUPERVISOR only when the
// recalada is under their own profile.
func (s *recaladaService) puedeGestionar(ctx context.Context, actor Actor, supervisorID uuid.UUID) error {
	if actor.Rol == model.RolSuperAdmin {
		return nil
	}
	perfil, err := s.usuarioRepo.FindSupervisorPorUsuario(ctx, actor.UsuarioID)
	if err != nil || perfil.ID != supervisorID {
		return ErrNoAutorizado
	}
	return nil
}

func recaladaToResponse(rec *model.Recalada) *dto.RecaladaResponse {
	resp := &dto.RecaladaResponse{
		ID:                    rec.ID.String(),
		Codigo:                rec.Codigo,
		BuqueID:               rec.BuqueID.String(),
		PaisOrigenID:          rec.PaisOrigenID.String(),
		SupervisorID:          rec.SupervisorID.String(),
		FechaArriboProgramada: rec.FechaArriboProgramada,
		FechaZarpeProgramada:  rec.FechaZarpeProgramada,
		FechaArriboReal:       rec.FechaArriboReal,
		FechaZarpeReal:        rec.FechaZarpeReal,
		Estado:                rec.Estado,
		CanceladaAt:           rec.CanceladaAt,
		MotivoCancelacion:     rec.MotivoCancelacion,
	}
	if rec.Buque != nil {
		resp.BuqueNombre = rec.Buque.Nombre
	}
	if rec.PaisOrigen != nil {
		resp.PaisOrigenNombre = rec.PaisOrigen.Nombre
	}
	return resp
}
