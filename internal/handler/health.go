package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 3 * time.Second

// Health reports whether the API can serve traffic: postgres (all CRUD) and
// redis (notification queue) are probed with a short timeout. When redis is
// up the payload also exposes the depth of the notification dead-letter
// queue so operators notice stuck turno emails without digging into redis.
//
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /health [get]
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		checks := gin.H{}
		healthy := true

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			checks["postgres"] = "down"
			healthy = false
		} else {
			checks["postgres"] = "up"
		}

		if err := rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = "down"
			healthy = false
		} else {
			checks["redis"] = "up"
			if n, err := worker.DLQLength(ctx, rdb, worker.QueueNotificaciones); err == nil {
				checks["notificaciones_dlq"] = n
			}
		}

		status := http.StatusOK
		estado := "ok"
		if !healthy {
			status = http.StatusServiceUnavailable
			estado = "degradado"
		}

		c.JSON(status, gin.H{
			"service": "gestionguias-api",
			"estado":  estado,
			"checks":  checks,
		})
	}
}
