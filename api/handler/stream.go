package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/streamcat/addon"
)

// Stream returns the handler for GET /stream/:type/:id.
//
// The id is "<prefix>:<absoluteUrl>". The client appends ".json" to every
// resource request, so exactly one trailing suffix belongs to the transport:
// a video URL that itself ends in ".json" arrives as "<url>.json.json" and
// survives the single trim intact. Ids without the namespace, or whose
// payload is not an absolute http(s) URL, resolve to an empty stream list.
func Stream(svc *addon.Service, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cleanParam(c.Param("id"))
		videoURL, found := strings.CutPrefix(id, prefix+":")
		if !found {
			videoURL = ""
		}
		c.JSON(http.StatusOK, svc.HandleStreamResolve(videoURL))
	}
}
