package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/middleware"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret, rol string, expiresIn time.Duration) string {
	t.Helper()
	claims := &middleware.JWTClaims{
		UserID: "9f3c2a10-0000-0000-0000-000000000001",
		Email:  "prueba@gestionguias.com",
		Rol:    rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	grupo := r.Group("/", middleware.JWTAuth(testSecret))
	if len(roles) > 0 {
		grupo.Use(middleware.RequireRole(roles...))
	}
	grupo.GET("/recurso", func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email, "rol": claims.Rol})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/recurso", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthTokenValido(t *testing.T) {
	r := protectedRouter()
	token := signToken(t, testSecret, model.RolGuia, time.Hour)

	w := doGet(r, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "prueba@gestionguias.com")
}

func TestJWTAuthSinHeader(t *testing.T) {
	r := protectedRouter()

	w := doGet(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthTokenExpirado(t *testing.T) {
	r := protectedRouter()
	token := signToken(t, testSecret, model.RolGuia, -time.Minute)

	w := doGet(r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthFirmaIncorrecta(t *testing.T) {
	r := protectedRouter()
	token := signToken(t, "otro-secreto", model.RolGuia, time.Hour)

	w := doGet(r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolePermitido(t *testing.T) {
	r := protectedRouter(model.RolSuperAdmin, model.RolSupervisor)
	token := signToken(t, testSecret, model.RolSupervisor, time.Hour)

	w := doGet(r, token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRechazado(t *testing.T) {
	r := protectedRouter(model.RolSuperAdmin, model.RolSupervisor)
	token := signToken(t, testSecret, model.RolGuia, time.Hour)

	w := doGet(r, token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimiterVentana(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimiter(3, 80*time.Millisecond))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.9.8.7:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit())
	}
	assert.Equal(t, http.StatusTooManyRequests, hit())

	// La ventana expira y el contador se reinicia.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit())
}
