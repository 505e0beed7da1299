package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/streamcat/addon"
	"github.com/use-agent/streamcat/models"
)

// Meta returns the handler for GET /meta/:type/:id.
//
// The id is a composite "<prefix>:<sourceId>:<query>". Malformed ids are
// input errors; unknown source ids map to 404.
func Meta(svc *addon.Service, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cleanParam(c.Param("id"))
		sourceID, query, ok := splitCompositeID(id, prefix)
		if !ok {
			respondError(c, models.NewAddonError(models.ErrCodeInvalidInput,
				"malformed meta id: "+id, nil))
			return
		}

		resp, err := svc.HandleMetaLookup(c.Request.Context(), sourceID, query)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// respondError maps an AddonError to the correct HTTP status code and
// writes a structured JSON error response.
func respondError(c *gin.Context, err error) {
	var addonErr *models.AddonError
	if !errors.As(err, &addonErr) {
		addonErr = models.NewAddonError(models.ErrCodeInternal, err.Error(), err)
	}
	c.JSON(mapErrorToStatus(addonErr), gin.H{"error": addonErr.ToDetail()})
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.AddonError) int {
	switch e.Code {
	case models.ErrCodeUnknownSource:
		return http.StatusNotFound // 404
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	default:
		return http.StatusInternalServerError // 500
	}
}
