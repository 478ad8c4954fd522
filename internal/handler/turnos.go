package handler

import (
	"net/http"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TurnosHandler struct{ svc service.TurnoService }

func NewTurnosHandler(svc service.TurnoService) *TurnosHandler {
	return &TurnosHandler{svc: svc}
}

// Asignar godoc
// @Summary Asigna un guia a un turno disponible
// @Tags turnos
// @Accept json
// @Produce json
// @Param body body dto.AsignarTurnoRequest true "Guia a asignar"
// @Success 200 {object} dto.TurnoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/turnos/{id}/asignar [post]
func (h *TurnosHandler) Asignar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AsignarTurnoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	guiaID, _ := uuid.Parse(req.GuiaID)
	resp, err := h.svc.Asignar(c.Request.Context(), actorFrom(c), id, guiaID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TurnosHandler) CheckIn(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.CheckIn(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TurnosHandler) CheckOut(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.CheckOut(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TurnosHandler) Cancelar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CancelarTurnoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Cancelar(c.Request.Context(), actorFrom(c), id, req.Motivo); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MisTurnos lists the turnos of the authenticated guide.
func (h *TurnosHandler) MisTurnos(c *gin.Context) {
	guiaID, ok := pathUUID(c, "guiaId")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorGuia(c.Request.Context(), guiaID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
