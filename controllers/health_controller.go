package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Govind-619/CorpSite/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController reports liveness and store reachability
type HealthController struct {
	db      *gorm.DB
	started time.Time
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db, started: time.Now()}
}

// GET /api/health
func (hc *HealthController) Health(c *gin.Context) {
	database := "ok"
	status := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := hc.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		utils.LogError("Health check database ping failed: %v", err)
		database = "unavailable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"success":   status == http.StatusOK,
		"status":    "ok",
		"database":  database,
		"uptime":    time.Since(hc.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
