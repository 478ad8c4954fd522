package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Login attempts are throttled hard: guides share terminal devices at the
// pier, so one misbehaving client must not lock the whole terminal's IP out
// of the API — only out of further login attempts.
const (
	loginAttemptLimit = 10
	loginWindow       = time.Minute
)

// ventana counts requests from one IP inside a fixed window.
type ventana struct {
	mu    sync.Mutex
	count int
	hasta time.Time
}

// permitir registers one hit and reports whether it is within the limit.
func (v *ventana) permitir(limit int, window time.Duration) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := time.Now()
	if now.After(v.hasta) {
		v.count = 0
		v.hasta = now.Add(window)
	}
	v.count++
	return v.count <= limit
}

func (v *ventana) reintentarEn() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.hasta.Format(time.RFC1123)
}

// ventanas is a purgeable per-IP window map shared by both limiters.
type ventanas struct {
	mu  sync.Mutex
	m   map[string]*ventana
	tag string
}

func newVentanas(tag string) *ventanas {
	return &ventanas{m: make(map[string]*ventana), tag: tag}
}

func (vs *ventanas) para(ip string) *ventana {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	v, ok := vs.m[ip]
	if !ok {
		v = &ventana{}
		vs.m[ip] = v
	}
	return v
}

func (vs *ventanas) purgar(now time.Time) int {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	purged := 0
	for ip, v := range vs.m {
		v.mu.Lock()
		if now.After(v.hasta) {
			delete(vs.m, ip)
			purged++
		}
		v.mu.Unlock()
	}
	return purged
}

var (
	loginVentanas = newVentanas("login")
	apiVentanas   = newVentanas("api")
)

// LoginRateLimiter caps /auth/login attempts per IP. Counts successes and
// failures alike; a fixed window is enough at this traffic level.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !loginVentanas.para(c.ClientIP()).permitir(loginAttemptLimit, loginWindow) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter throttles the whole API per IP. The router sizes it for the
// busiest legitimate pattern: a supervisor panel polling recaladas and
// atenciones while several turno check-ins arrive from the same pier IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		v := apiVentanas.para(c.ClientIP())
		if !v.permitir(limit, window) {
			c.Header("Retry-After", v.reintentarEn())
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

// Expired windows are purged so IPs that never return do not accumulate.
const purgeInterval = 5 * time.Minute

func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			for _, vs := range []*ventanas{loginVentanas, apiVentanas} {
				if n := vs.purgar(now); n > 0 {
					log.Debug().Str("limiter", vs.tag).Int("purged", n).Msg("rate limiter purge")
				}
			}
		}
	}()
}
