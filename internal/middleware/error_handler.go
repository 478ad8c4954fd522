package middleware

import (
	"net/http"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrorHandler turns errors that handlers attached via c.Error into a safe
// 500 envelope. Service errors (duplicado, no autorizado, transicion
// invalida) never land here — handlers map those to 4xx themselves; this is
// the net under genuinely unexpected failures.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		evento(c, log.Error()).Err(err.Err).Msg("unhandled error")

		c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

// Recovery converts panics into 500 responses without killing the worker
// goroutine serving the request.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				evento(c, log.Error()).Interface("panic", r).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			}
		}()
		c.Next()
	}
}

// Logger writes one line per request. On authenticated routes the line
// carries who acted and as which rol, which is the audit trail for
// recalada/atencion/turno mutations.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		evento(c, log.Info()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// evento stamps an entry with the request id, route and, when the JWT
// middleware already ran, the acting user.
func evento(c *gin.Context, e *zerolog.Event) *zerolog.Event {
	e = e.
		Str("request_id", c.GetString(RequestIDKey)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path)
	if raw, ok := c.Get(ClaimsKey); ok {
		if claims, ok := raw.(*JWTClaims); ok {
			e = e.Str("usuario", claims.Email).Str("rol", claims.Rol)
		}
	}
	return e
}
