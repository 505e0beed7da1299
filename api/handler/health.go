package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/streamcat/addon"
	"github.com/use-agent/streamcat/models"
)

// Health returns the handler for GET /health.
func Health(svc *addon.Service, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:       "healthy",
			Uptime:       time.Since(startTime).Round(time.Second).String(),
			Sources:      svc.SourceCount(),
			CacheEntries: svc.CacheEntries(),
			Version:      "1.0.0",
		})
	}
}
