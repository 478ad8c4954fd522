package handler

import (
	"net/http"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type AtencionesHandler struct{ svc service.AtencionService }

func NewAtencionesHandler(svc service.AtencionService) *AtencionesHandler {
	return &AtencionesHandler{svc: svc}
}

// Upsert godoc
// @Summary Crea o actualiza una atencion y reconcilia sus turnos
// @Description La identidad logica es (recalada_id, fecha_inicio, fecha_fin):
// @Description una coincidencia exacta actualiza la atencion en sitio y sus
// @Description turnos se reconcilian contra turnos_total y el plan declarado.
// @Tags atenciones
// @Accept json
// @Produce json
// @Param body body dto.UpsertAtencionRequest true "Atencion y plan de turnos"
// @Success 200 {object} dto.AtencionResponse
// @Failure 403 {object} apierror.APIError
// @Router /v1/atenciones [post]
func (h *AtencionesHandler) Upsert(c *gin.Context) {
	var req dto.UpsertAtencionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Upsert(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtencionesHandler) Obtener(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtencionesHandler) ListarPorRecalada(c *gin.Context) {
	recaladaID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListarPorRecalada(c.Request.Context(), recaladaID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AtencionesHandler) Cancelar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CancelarAtencionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Cancelar(c.Request.Context(), actorFrom(c), id, req.Motivo); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
