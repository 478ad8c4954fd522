package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type turnoFixture struct {
	svc      service.TurnoService
	turnos   *stubTurnoRepo
	usuarios *stubUsuarioRepo
	guia     *model.Guia
	guiaUser *model.Usuario
	admin    service.Actor
}

func newTurnoFixture(t *testing.T) *turnoFixture {
	t.Helper()
	turnos := newStubTurnoRepo()
	usuarios := newStubUsuarioRepo()

	adminUser := &model.Usuario{Email: "admin@test.local", Rol: model.RolSuperAdmin, Activo: true}
	require.NoError(t, usuarios.Create(context.Background(), adminUser))

	guiaUser := &model.Usuario{Email: "guia@test.local", Nombre: "Laura", Rol: model.RolGuia, Activo: true}
	require.NoError(t, usuarios.Create(context.Background(), guiaUser))
	guia := &model.Guia{UsuarioID: guiaUser.ID, Disponible: true, Usuario: guiaUser}
	require.NoError(t, usuarios.UpsertGuia(context.Background(), guia))

	return &turnoFixture{
		// nil dispatcher: assignment emails skipped in unit tests
		svc:      service.NewTurnoService(turnos, usuarios, nil),
		turnos:   turnos,
		usuarios: usuarios,
		guia:     guia,
		guiaUser: guiaUser,
		admin:    service.Actor{UsuarioID: adminUser.ID, Rol: model.RolSuperAdmin},
	}
}

func (f *turnoFixture) nuevoTurno(t *testing.T, estado string, guiaID *uuid.UUID) *model.Turno {
	t.Helper()
	inicio := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	turno := &model.Turno{
		AtencionID:  uuid.New(),
		Numero:      1,
		Estado:      estado,
		GuiaID:      guiaID,
		FechaInicio: inicio,
		FechaFin:    inicio.Add(3 * time.Hour),
	}
	require.NoError(t, f.turnos.Create(context.Background(), nil, turno))
	return turno
}

func TestAsignarTurnoDisponible(t *testing.T) {
	f := newTurnoFixture(t)
	turno := f.nuevoTurno(t, model.TurnoDisponible, nil)

	resp, err := f.svc.Asignar(context.Background(), f.admin, turno.ID, f.guia.ID)
	require.NoError(t, err)

	assert.Equal(t, model.TurnoAsignado, resp.Estado)
	require.NotNil(t, resp.GuiaID)
	assert.Equal(t, f.guia.ID.String(), *resp.GuiaID)
}

func TestAsignarRechazaTurnoNoDisponible(t *testing.T) {
	f := newTurnoFixture(t)
	turno := f.nuevoTurno(t, model.TurnoAsignado, &f.guia.ID)

	_, err := f.svc.Asignar(context.Background(), f.admin, turno.ID, f.guia.ID)
	assert.ErrorIs(t, err, service.ErrTransicionInvalida)
}

func TestAsignarRechazaGuiaNoDisponible(t *testing.T) {
	f := newTurnoFixture(t)
	f.guia.Disponible = false
	turno := f.nuevoTurno(t, model.TurnoDisponible, nil)

	_, err := f.svc.Asignar(context.Background(), f.admin, turno.ID, f.guia.ID)
	assert.Error(t, err)
}

func TestCheckInDesdeAsignado(t *testing.T) {
	f := newTurnoFixture(t)
	turno := f.nuevoTurno(t, model.TurnoAsignado, &f.guia.ID)

	actor := service.Actor{UsuarioID: f.guiaUser.ID, Rol: model.RolGuia}
	resp, err := f.svc.CheckIn(context.Background(), actor, turno.ID)
	require.NoError(t, err)

	assert.Equal(t, model.TurnoEnCurso, resp.Estado)
	assert.NotNil(t, resp.CheckInAt)
}

func TestCheckInRechazadoDesdeDisponible(t *testing.T) {
	f := newTurnoFixture(t)
	turno := f.nuevoTurno(t, model.TurnoDisponible, nil)

	_, err := f.svc.CheckIn(context.Background(), f.admin, turno.ID)
	assert.ErrorIs(t, err, service.ErrTransicionInvalida)
}

func TestCheckInDeOtroGuiaProhibido(t *testing.T) {
	f := newTurnoFixture(t)
	turno := f.nuevoTurno(t, model.TurnoAsignado, &f.guia.ID)

	otroUser := &model.Usuario{Email: "otro@test.local", Rol: model.RolGuia, Activo: true}
	require.NoError(t, f.usuarios.Create(context.Background(), otroUser))
	otro := &model.Guia{UsuarioID: otroUser.ID, Disponible: true}
	require.NoError(t, f.usuarios.UpsertGuia(context.Background(), otro))

	actor := service.Actor{UsuarioID: otroUser.ID, Rol: model.RolGuia}
	_, err := f.svc.CheckIn(context.Background(), actor, turno.ID)
	assert.ErrorIs(t, err, service.ErrNoAutorizado)
}

func TestCheckOutDesdeEnCurso(t *testing.T) {
	f := newTurnoFixture(t)
	turno := f.nuevoTurno(t, model.TurnoEnCurso, &f.guia.ID)

	resp, err := f.svc.CheckOut(context.Background(), f.admin, turno.ID)
	require.NoError(t, err)

	assert.Equal(t, model.TurnoCompletado, resp.Estado)
	assert.NotNil(t, resp.CheckOutAt)
}

func TestCheckOutRechazadoSinCheckIn(t *testing.T) {
	f := newTurnoFixture(t)
	turno := f.nuevoTurno(t, model.TurnoAsignado, &f.guia.ID)

	_, err := f.svc.CheckOut(context.Background(), f.admin, turno.ID)
	assert.ErrorIs(t, err, service.ErrTransicionInvalida)
}

func TestCancelarTurnoGuiaProhibido(t *testing.T) {
	f := newTurnoFixture(t)
	turno := f.nuevoTurno(t, model.TurnoAsignado, &f.guia.ID)

	actor := service.Actor{UsuarioID: f.guiaUser.ID, Rol: model.RolGuia}
	err := f.svc.Cancelar(context.Background(), actor, turno.ID, "no puedo asistir")
	assert.ErrorIs(t, err, service.ErrNoAutorizado)
}

func TestCancelarTurnoTerminalRechazado(t *testing.T) {
	f := newTurnoFixture(t)

	for _, estado := range []string{model.TurnoCompletado, model.TurnoNoShow, model.TurnoCancelado} {
		turno := f.nuevoTurno(t, estado, &f.guia.ID)
		err := f.svc.Cancelar(context.Background(), f.admin, turno.ID, "cierre de muelle")
		assert.ErrorIs(t, err, service.ErrTransicionInvalida, estado)
	}
}

func TestCancelarTurnoGuardaMotivo(t *testing.T) {
	f := newTurnoFixture(t)
	turno := f.nuevoTurno(t, model.TurnoAsignado, &f.guia.ID)

	require.NoError(t, f.svc.Cancelar(context.Background(), f.admin, turno.ID, "cierre de muelle"))

	guardado, err := f.turnos.FindByID(context.Background(), turno.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TurnoCancelado, guardado.Estado)
	require.NotNil(t, guardado.MotivoCancelacion)
	assert.Equal(t, "cierre de muelle", *guardado.MotivoCancelacion)
	assert.NotNil(t, guardado.CanceladoAt)
}

func TestListarPorGuia(t *testing.T) {
	f := newTurnoFixture(t)
	f.nuevoTurno(t, model.TurnoAsignado, &f.guia.ID)
	f.nuevoTurno(t, model.TurnoCompletado, &f.guia.ID)
	f.nuevoTurno(t, model.TurnoDisponible, nil)

	resp, err := f.svc.ListarPorGuia(context.Background(), f.guia.ID)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}
