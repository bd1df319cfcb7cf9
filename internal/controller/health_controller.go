package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pengasuh_backend/internal/service"
	"pengasuh_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Cache service.KeyValueStore
}

func NewHealthController(db *gorm.DB, cache service.KeyValueStore) *HealthController {
	return &HealthController{DB: db, Cache: cache}
}

// @Summary Pemeriksaan kesehatan
// @Description Memeriksa koneksi database dan cache
// @Tags Sistem
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	cache := "up"
	if _, err := c.Cache.Get(pingCtx, "health:ping"); err != nil && !errors.Is(err, service.ErrCacheMiss) {
		cache = "down"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
			"cache":    cache,
		},
	})
}
