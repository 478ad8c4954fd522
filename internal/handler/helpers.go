package handler

import (
	"errors"
	"net/http"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/apierror"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/middleware"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathUUID parses the :id (or named) path param; writes the 400 itself.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("identificador invalido"))
		return uuid.Nil, false
	}
	return id, true
}

// actorFrom builds the service-layer actor from the JWT claims.
func actorFrom(c *gin.Context) service.Actor {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.UserID)
	return service.Actor{UsuarioID: id, Rol: claims.Rol}
}

// writeServiceError maps sentinel business errors to HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrNoAutorizado):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case errors.Is(err, service.ErrEmailDuplicado), errors.Is(err, service.ErrIdentidadOcupada):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrTransicionInvalida):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
