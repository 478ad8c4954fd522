package handler

import (
	"net/http"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/apierror"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Crear godoc
// @Summary Crea un usuario con su perfil de rol
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body dto.CrearUsuarioRequest true "Datos del usuario"
// @Success 201 {object} dto.UsuarioResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/usuarios [post]
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Lista usuarios (activos por defecto, ?todos=true incluye inactivos)
// @Tags usuarios
// @Produce json
// @Success 200 {array} dto.UsuarioResponse
// @Router /v1/usuarios [get]
func (h *UsuariosHandler) Listar(c *gin.Context) {
	incluirInactivos := c.Query("todos") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), incluirInactivos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Desactivar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UsuariosHandler) Reactivar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reactivar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
