package service_test

import (
	"context"
	"testing"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/security"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsuarioService() (service.UsuarioService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	return service.NewUsuarioService(repo, security.NewHasher("pepper-test")), repo
}

func crearGuiaRequest() dto.CrearUsuarioRequest {
	return dto.CrearUsuarioRequest{
		Email:    "guia@test.local",
		Password: "Secreta123*",
		Nombre:   "Laura",
		Apellido: "Rios",
		Rol:      model.RolGuia,
		Telefono: "3011112233",
		Idiomas:  "es,en",
	}
}

func TestCrearUsuarioConPerfilGuia(t *testing.T) {
	svc, repo := newUsuarioService()

	resp, err := svc.Crear(context.Background(), crearGuiaRequest())
	require.NoError(t, err)

	assert.Equal(t, model.RolGuia, resp.Rol)
	assert.True(t, resp.Activo)

	guia, err := repo.FindGuiaPorUsuario(context.Background(), mustUUID(t, resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "es,en", guia.Idiomas)
	assert.True(t, guia.Disponible)
}

func TestCrearUsuarioEmailDuplicado(t *testing.T) {
	svc, _ := newUsuarioService()

	_, err := svc.Crear(context.Background(), crearGuiaRequest())
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), crearGuiaRequest())
	assert.ErrorIs(t, err, service.ErrEmailDuplicado)
}

func TestCrearUsuarioGuardaHashNoElPlano(t *testing.T) {
	svc, repo := newUsuarioService()

	resp, err := svc.Crear(context.Background(), crearGuiaRequest())
	require.NoError(t, err)

	u, err := repo.FindByID(context.Background(), mustUUID(t, resp.ID))
	require.NoError(t, err)
	assert.NotEqual(t, "Secreta123*", u.PasswordHash)
	assert.Contains(t, u.PasswordHash, "$argon2id$")
}

func TestCrearSupervisorConZona(t *testing.T) {
	svc, repo := newUsuarioService()

	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Email:    "sup@test.local",
		Password: "Secreta123*",
		Nombre:   "Jorge",
		Rol:      model.RolSupervisor,
		Zona:     "Muelle Norte",
	})
	require.NoError(t, err)

	sup, err := repo.FindSupervisorPorUsuario(context.Background(), mustUUID(t, resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "Muelle Norte", sup.Zona)
}

func TestActualizarCambioDeRolConservaPerfilAnterior(t *testing.T) {
	svc, repo := newUsuarioService()

	resp, err := svc.Crear(context.Background(), crearGuiaRequest())
	require.NoError(t, err)
	id := mustUUID(t, resp.ID)

	actualizado, err := svc.Actualizar(context.Background(), id, dto.ActualizarUsuarioRequest{
		Rol:  model.RolSupervisor,
		Zona: "Muelle Sur",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolSupervisor, actualizado.Rol)

	// the new role profile exists...
	_, err = repo.FindSupervisorPorUsuario(context.Background(), id)
	require.NoError(t, err)
	// ...and the old one stays: worked turnos keep referencing it
	_, err = repo.FindGuiaPorUsuario(context.Background(), id)
	require.NoError(t, err)
}

func TestDesactivarYReactivar(t *testing.T) {
	svc, _ := newUsuarioService()

	resp, err := svc.Crear(context.Background(), crearGuiaRequest())
	require.NoError(t, err)
	id := mustUUID(t, resp.ID)

	require.NoError(t, svc.Desactivar(context.Background(), id))
	activos, err := svc.Listar(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, activos)

	todos, err := svc.Listar(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	require.NoError(t, svc.Reactivar(context.Background(), id))
	activos, err = svc.Listar(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, activos, 1)
}
