package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/streamcat/config"
	"github.com/use-agent/streamcat/models"
)

// Manifest returns the handler for GET /manifest.json. The manifest is
// static for the process lifetime, so it is built once up front.
func Manifest(cfg config.AddonConfig) gin.HandlerFunc {
	manifest := models.Manifest{
		ID:          cfg.ID,
		Version:     cfg.Version,
		Name:        cfg.Name,
		Description: cfg.Description,
		Logo:        cfg.Logo,
		Background:  cfg.Background,
		Resources:   []string{"catalog", "meta", "stream"},
		Types:       []string{"movie", "series"},
		IDPrefixes:  []string{cfg.IDPrefix + ":"},
		Catalogs: []models.ManifestCatalog{{
			Type:  "movie",
			ID:    cfg.IDPrefix + ".search",
			Name:  cfg.Name + " Search",
			Extra: []models.ManifestExtra{{Name: "search", IsRequired: true}},
		}},
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, manifest)
	}
}
