package service_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repository implementations. All tx parameters are ignored: the
// services call runTx with a nil DB, which executes the closure directly.

type stubAtencionRepo struct {
	atenciones map[uuid.UUID]*model.Atencion
	turnos     *stubTurnoRepo // linked so FindByID can populate Turnos
}

func newStubAtencionRepo(turnos *stubTurnoRepo) *stubAtencionRepo {
	return &stubAtencionRepo{atenciones: make(map[uuid.UUID]*model.Atencion), turnos: turnos}
}

func (r *stubAtencionRepo) Create(_ context.Context, a *model.Atencion) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.atenciones[a.ID] = a
	return nil
}

func (r *stubAtencionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Atencion, error) {
	a, ok := r.atenciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *a
	copia.Turnos = r.turnos.porAtencion(id)
	return &copia, nil
}

func (r *stubAtencionRepo) FindByIdentidad(_ context.Context, recaladaID uuid.UUID, inicio, fin time.Time) (*model.Atencion, error) {
	for _, a := range r.atenciones {
		if a.RecaladaID == recaladaID && a.FechaInicio.Equal(inicio) && a.FechaFin.Equal(fin) {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAtencionRepo) Update(_ context.Context, a *model.Atencion) error {
	r.atenciones[a.ID] = a
	return nil
}

func (r *stubAtencionRepo) ListPorRecalada(_ context.Context, recaladaID uuid.UUID) ([]model.Atencion, error) {
	var out []model.Atencion
	for _, a := range r.atenciones {
		if a.RecaladaID == recaladaID {
			copia := *a
			copia.Turnos = r.turnos.porAtencion(a.ID)
			out = append(out, copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaInicio.Before(out[j].FechaInicio) })
	return out, nil
}

func (r *stubAtencionRepo) DB() *gorm.DB { return nil }

var _ repository.AtencionRepository = (*stubAtencionRepo)(nil)

type stubTurnoRepo struct {
	turnos map[uuid.UUID]*model.Turno
}

func newStubTurnoRepo() *stubTurnoRepo {
	return &stubTurnoRepo{turnos: make(map[uuid.UUID]*model.Turno)}
}

func (r *stubTurnoRepo) porAtencion(atencionID uuid.UUID) []model.Turno {
	var out []model.Turno
	for _, t := range r.turnos {
		if t.AtencionID == atencionID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numero < out[j].Numero })
	return out
}

func (r *stubTurnoRepo) Create(_ context.Context, _ *gorm.DB, t *model.Turno) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.turnos[t.ID] = t
	return nil
}

func (r *stubTurnoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Turno, error) {
	t, ok := r.turnos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTurnoRepo) FindPorNumero(_ context.Context, _ *gorm.DB, atencionID uuid.UUID, numero int) (*model.Turno, error) {
	for _, t := range r.turnos {
		if t.AtencionID == atencionID && t.Numero == numero {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTurnoRepo) Save(_ context.Context, _ *gorm.DB, t *model.Turno) error {
	r.turnos[t.ID] = t
	return nil
}

func (r *stubTurnoRepo) RefrescarHorario(_ context.Context, _ *gorm.DB, id uuid.UUID, inicio, fin time.Time) error {
	t, ok := r.turnos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.FechaInicio = inicio
	t.FechaFin = fin
	return nil
}

func (r *stubTurnoRepo) ListPorAtencion(_ context.Context, atencionID uuid.UUID) ([]model.Turno, error) {
	return r.porAtencion(atencionID), nil
}

func (r *stubTurnoRepo) ListExcedentes(_ context.Context, _ *gorm.DB, atencionID uuid.UUID, turnosTotal int) ([]model.Turno, error) {
	var out []model.Turno
	for _, t := range r.turnos {
		if t.AtencionID == atencionID && t.Numero > turnosTotal {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Numero < out[j].Numero })
	return out, nil
}

func (r *stubTurnoRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	delete(r.turnos, id)
	return nil
}

func (r *stubTurnoRepo) ListPorGuia(_ context.Context, guiaID uuid.UUID) ([]model.Turno, error) {
	var out []model.Turno
	for _, t := range r.turnos {
		if t.GuiaID != nil && *t.GuiaID == guiaID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTurnoRepo) Update(_ context.Context, t *model.Turno) error {
	r.turnos[t.ID] = t
	return nil
}

var _ repository.TurnoRepository = (*stubTurnoRepo)(nil)

type stubRecaladaRepo struct {
	recaladas map[uuid.UUID]*model.Recalada
	votos     []repository.VotoPais
}

func newStubRecaladaRepo() *stubRecaladaRepo {
	return &stubRecaladaRepo{recaladas: make(map[uuid.UUID]*model.Recalada)}
}

func (r *stubRecaladaRepo) Create(_ context.Context, rec *model.Recalada) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.recaladas[rec.ID] = rec
	return nil
}

func (r *stubRecaladaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Recalada, error) {
	rec, ok := r.recaladas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (r *stubRecaladaRepo) FindByCodigo(_ context.Context, codigo string) (*model.Recalada, error) {
	for _, rec := range r.recaladas {
		if rec.Codigo == codigo {
			return rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRecaladaRepo) FindPorBuqueYArribo(_ context.Context, buqueID uuid.UUID, arribo time.Time) (*model.Recalada, error) {
	for _, rec := range r.recaladas {
		if rec.BuqueID == buqueID && rec.FechaArriboProgramada.Equal(arribo) {
			return rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRecaladaRepo) Update(_ context.Context, rec *model.Recalada) error {
	r.recaladas[rec.ID] = rec
	return nil
}

func (r *stubRecaladaRepo) List(_ context.Context, filter dto.RecaladaFilter) ([]model.Recalada, int64, error) {
	var out []model.Recalada
	for _, rec := range r.recaladas {
		if filter.Estado != "" && filter.Estado != "all" && rec.Estado != filter.Estado {
			continue
		}
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

func (r *stubRecaladaRepo) ContarVotosPais(_ context.Context) ([]repository.VotoPais, error) {
	return r.votos, nil
}

func (r *stubRecaladaRepo) CountPorPrefijo(_ context.Context, prefijo string) (int64, error) {
	var n int64
	for _, rec := range r.recaladas {
		if len(rec.Codigo) >= len(prefijo) && rec.Codigo[:len(prefijo)] == prefijo {
			n++
		}
	}
	return n, nil
}

var _ repository.RecaladaRepository = (*stubRecaladaRepo)(nil)

type stubUsuarioRepo struct {
	usuarios     map[uuid.UUID]*model.Usuario
	supervisores map[uuid.UUID]*model.Supervisor // by profile id
	guias        map[uuid.UUID]*model.Guia       // by profile id
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{
		usuarios:     make(map[uuid.UUID]*model.Usuario),
		supervisores: make(map[uuid.UUID]*model.Supervisor),
		guias:        make(map[uuid.UUID]*model.Guia),
	}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = false
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = true
	return nil
}

func (r *stubUsuarioRepo) UpsertSupervisor(_ context.Context, s *model.Supervisor) error {
	for _, existing := range r.supervisores {
		if existing.UsuarioID == s.UsuarioID {
			s.ID = existing.ID
			r.supervisores[s.ID] = s
			return nil
		}
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.supervisores[s.ID] = s
	return nil
}

func (r *stubUsuarioRepo) UpsertGuia(_ context.Context, g *model.Guia) error {
	for _, existing := range r.guias {
		if existing.UsuarioID == g.UsuarioID {
			g.ID = existing.ID
			r.guias[g.ID] = g
			return nil
		}
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.guias[g.ID] = g
	return nil
}

func (r *stubUsuarioRepo) FindSupervisorByID(_ context.Context, id uuid.UUID) (*model.Supervisor, error) {
	s, ok := r.supervisores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubUsuarioRepo) FindSupervisorPorUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Supervisor, error) {
	for _, s := range r.supervisores {
		if s.UsuarioID == usuarioID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindGuiaByID(_ context.Context, id uuid.UUID) (*model.Guia, error) {
	g, ok := r.guias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *stubUsuarioRepo) FindGuiaPorUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Guia, error) {
	for _, g := range r.guias {
		if g.UsuarioID == usuarioID {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

type stubBuqueRepo struct {
	buques map[uuid.UUID]*model.Buque
}

func newStubBuqueRepo() *stubBuqueRepo {
	return &stubBuqueRepo{buques: make(map[uuid.UUID]*model.Buque)}
}

func (r *stubBuqueRepo) Create(_ context.Context, b *model.Buque) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.buques[b.ID] = b
	return nil
}

func (r *stubBuqueRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Buque, error) {
	b, ok := r.buques[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBuqueRepo) FindByNombre(_ context.Context, nombre string) (*model.Buque, error) {
	for _, b := range r.buques {
		if b.Nombre == nombre {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBuqueRepo) Update(_ context.Context, b *model.Buque) error {
	r.buques[b.ID] = b
	return nil
}

func (r *stubBuqueRepo) List(_ context.Context) ([]model.Buque, error) {
	var out []model.Buque
	for _, b := range r.buques {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBuqueRepo) ListSinPais(_ context.Context, _ *gorm.DB) ([]model.Buque, error) {
	var out []model.Buque
	for _, b := range r.buques {
		if b.PaisID == nil {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubBuqueRepo) AsignarPais(_ context.Context, _ *gorm.DB, buqueID, paisID uuid.UUID) error {
	b, ok := r.buques[buqueID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.PaisID = &paisID
	return nil
}

func (r *stubBuqueRepo) AsignarPaisATodosSinPais(_ context.Context, paisID uuid.UUID) (int64, error) {
	var n int64
	for _, b := range r.buques {
		if b.PaisID == nil {
			pid := paisID
			b.PaisID = &pid
			n++
		}
	}
	return n, nil
}

func (r *stubBuqueRepo) CountSinPais(_ context.Context) (int64, error) {
	var n int64
	for _, b := range r.buques {
		if b.PaisID == nil {
			n++
		}
	}
	return n, nil
}

func (r *stubBuqueRepo) DB() *gorm.DB { return nil }

var _ repository.BuqueRepository = (*stubBuqueRepo)(nil)

type stubPaisRepo struct {
	paises map[uuid.UUID]*model.Pais
}

func newStubPaisRepo() *stubPaisRepo {
	return &stubPaisRepo{paises: make(map[uuid.UUID]*model.Pais)}
}

func (r *stubPaisRepo) Create(_ context.Context, p *model.Pais) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.paises[p.ID] = p
	return nil
}

func (r *stubPaisRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pais, error) {
	p, ok := r.paises[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPaisRepo) FindByCodigo(_ context.Context, codigo string) (*model.Pais, error) {
	for _, p := range r.paises {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPaisRepo) UpdateNombre(_ context.Context, id uuid.UUID, nombre string) error {
	p, ok := r.paises[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Nombre = nombre
	return nil
}

func (r *stubPaisRepo) List(_ context.Context) ([]model.Pais, error) {
	var out []model.Pais
	for _, p := range r.paises {
		out = append(out, *p)
	}
	return out, nil
}

var _ repository.PaisRepository = (*stubPaisRepo)(nil)
