package handler

import (
	"net/http"
	"strconv"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/dto"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type RecaladasHandler struct{ svc service.RecaladaService }

func NewRecaladasHandler(svc service.RecaladaService) *RecaladasHandler {
	return &RecaladasHandler{svc: svc}
}

// Listar godoc
// @Summary Lista recaladas con filtros y paginacion
// @Tags recaladas
// @Produce json
// @Param estado query string false "SCHEDULED|ARRIVED|DEPARTED|CANCELED|all"
// @Param buque_id query string false "Filtra por buque"
// @Param page query int false "Pagina (1-based)"
// @Param limit query int false "Tamano de pagina"
// @Success 200 {object} dto.RecaladaListResponse
// @Router /v1/recaladas [get]
func (h *RecaladasHandler) Listar(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filter := dto.RecaladaFilter{
		Estado:  c.Query("estado"),
		BuqueID: c.Query("buque_id"),
		Page:    page,
		Limit:   limit,
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecaladasHandler) Obtener(c *gin.Context) {
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

// Crear godoc
// @Summary Programa una recalada; el codigo se genera en el servidor
// @Tags recaladas
// @Accept json
// @Produce json
// @Param body body dto.CrearRecaladaRequest true "Datos de la recalada"
// @Success 201 {object} dto.RecaladaResponse
// @Router /v1/recaladas [post]
func (h *RecaladasHandler) Crear(c *gin.Context) {
	var req dto.CrearRecaladaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar replaces the full lifecycle state; CANCELED goes through
// the cancel endpoint instead.
func (h *RecaladasHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarRecaladaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecaladasHandler) Cancelar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CancelarRecaladaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Cancelar(c.Request.Context(), actorFrom(c), id, req.Motivo); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reporte godoc
// @Summary Genera y descarga el reporte PDF de operaciones de la recalada
// @Tags recaladas
// @Produce application/pdf
// @Success 200 {file} file
// @Router /v1/recaladas/{id}/reporte [get]
func (h *RecaladasHandler) Reporte(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.GenerarReporte(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.FileAttachment(path, "reporte.pdf")
}
