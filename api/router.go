package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/streamcat/addon"
	"github.com/use-agent/streamcat/api/handler"
	"github.com/use-agent/streamcat/api/middleware"
	"github.com/use-agent/streamcat/config"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger → CORS → RateLimit
//
// The whole surface is public and read-only, so CORS is global (the media
// client fetches the manifest cross-origin too) and there is no auth.
func NewRouter(svc *addon.Service, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(cfg.RateLimit))

	r.GET("/manifest.json", handler.Manifest(cfg.Addon))

	r.GET("/catalog/:type/:id", handler.CatalogNoExtra())
	r.GET("/catalog/:type/:id/:extra", handler.Catalog(svc))

	r.GET("/meta/:type/:id", handler.Meta(svc, cfg.Addon.IDPrefix))

	r.GET("/stream/:type/:id", handler.Stream(svc, cfg.Addon.IDPrefix))

	r.GET("/health", handler.Health(svc, startTime))

	return r
}
