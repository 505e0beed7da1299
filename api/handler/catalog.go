package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/streamcat/addon"
	"github.com/use-agent/streamcat/models"
)

// Catalog returns the handler for GET /catalog/:type/:id/:extra.
//
// The search query arrives in the extra segment ("search=<query>"). A
// request without a query is valid and yields an empty catalog rather
// than an error.
func Catalog(svc *addon.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := parseSearchExtra(cleanParam(c.Param("extra")))
		resp := svc.HandleCatalogSearch(c.Request.Context(), query)
		c.JSON(http.StatusOK, resp)
	}
}

// CatalogNoExtra returns the handler for GET /catalog/:type/:id — the
// route variant without an extra segment. Always an empty catalog, since
// this addon only serves search-driven listings.
func CatalogNoExtra() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.CatalogResponse{Metas: []models.MetaPreview{}})
	}
}
