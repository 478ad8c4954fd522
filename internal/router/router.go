package router

import (
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/config"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/handler"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/middleware"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/repository"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/security"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/service"
	"github.com/duvanmesal/gestionguias-api-sub001/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	// Sized for a shared pier IP: supervisor panels polling plus guide
	// check-ins behind the same NAT.
	r.Use(middleware.RateLimiter(1000, time.Minute))

	hasher := security.NewHasher(cfg.PasswordPepper)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	paisRepo := repository.NewPaisRepository(db)
	buqueRepo := repository.NewBuqueRepository(db)
	recaladaRepo := repository.NewRecaladaRepository(db)
	atencionRepo := repository.NewAtencionRepository(db)
	turnoRepo := repository.NewTurnoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, hasher, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, hasher)
	recaladaSvc := service.NewRecaladaService(recaladaRepo, buqueRepo, paisRepo, usuarioRepo, cfg.PDFStoragePath)
	atencionSvc := service.NewAtencionService(atencionRepo, turnoRepo, recaladaRepo, usuarioRepo)
	turnoSvc := service.NewTurnoService(turnoRepo, usuarioRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	recaladasH := handler.NewRecaladasHandler(recaladaSvc)
	atencionesH := handler.NewAtencionesHandler(atencionSvc)
	turnosH := handler.NewTurnosHandler(turnoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		todos := middleware.RequireRole(model.RolSuperAdmin, model.RolSupervisor, model.RolGuia)
		gestores := middleware.RequireRole(model.RolSuperAdmin, model.RolSupervisor)

		usuarios := v1.Group("/usuarios", middleware.RequireRole(model.RolSuperAdmin))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}

		// Recaladas — lectura para todos los roles, escritura para gestores
		v1.GET("/recaladas", todos, recaladasH.Listar)
		v1.GET("/recaladas/:id", todos, recaladasH.Obtener)
		v1.GET("/recaladas/:id/atenciones", todos, atencionesH.ListarPorRecalada)
		v1.GET("/recaladas/:id/reporte", gestores, recaladasH.Reporte)
		recaladas := v1.Group("/recaladas", gestores)
		{
			recaladas.POST("", recaladasH.Crear)
			recaladas.PUT("/:id", recaladasH.Actualizar)
			recaladas.POST("/:id/cancelar", recaladasH.Cancelar)
		}

		// Atenciones — el upsert reconcilia los turnos en la misma transaccion
		v1.GET("/atenciones/:id", todos, atencionesH.Obtener)
		atenciones := v1.Group("/atenciones", gestores)
		{
			atenciones.POST("", atencionesH.Upsert)
			atenciones.POST("/:id/cancelar", atencionesH.Cancelar)
		}

		// Turnos — los guias operan sobre sus propios turnos (el servicio
		// aplica la comprobacion de pertenencia)
		turnos := v1.Group("/turnos", todos)
		{
			turnos.POST("/:id/asignar", gestores, turnosH.Asignar)
			turnos.POST("/:id/check-in", turnosH.CheckIn)
			turnos.POST("/:id/check-out", turnosH.CheckOut)
			turnos.POST("/:id/cancelar", turnosH.Cancelar)
		}
		v1.GET("/guias/:guiaId/turnos", todos, turnosH.MisTurnos)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
