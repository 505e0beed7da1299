package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/streamcat/addon"
	"github.com/use-agent/streamcat/aggregate"
	"github.com/use-agent/streamcat/cache"
	"github.com/use-agent/streamcat/models"
	"github.com/use-agent/streamcat/source"
)

func newStreamService(t *testing.T) *addon.Service {
	t.Helper()
	reg, err := source.NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	c := cache.New(10, time.Minute)
	t.Cleanup(c.Stop)
	return addon.NewService(reg, aggregate.New(reg, nil), nil, c,
		addon.Assembler{Prefix: "streamcat"}, time.Minute)
}

func TestStreamHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newStreamService(t)
	h := Stream(svc, "streamcat")

	tests := []struct {
		name        string
		param       string
		wantStreams int
		wantURL     string
	}{
		{
			name:        "escaped id with transport suffix",
			param:       url.PathEscape("streamcat:https://site.example.com/video/1") + ".json",
			wantStreams: 1,
			wantURL:     "https://site.example.com/video/1",
		},
		{
			name:        "video url itself ending in .json",
			param:       url.PathEscape("streamcat:https://site.example.com/data.json") + ".json",
			wantStreams: 1,
			wantURL:     "https://site.example.com/data.json",
		},
		{
			name:        "raw id without transport suffix",
			param:       "streamcat:https://site.example.com/video/1",
			wantStreams: 1,
			wantURL:     "https://site.example.com/video/1",
		},
		{
			name:        "missing namespace",
			param:       url.PathEscape("other:https://site.example.com/video/1") + ".json",
			wantStreams: 0,
		},
		{
			name:        "relative payload",
			param:       url.PathEscape("streamcat:/video/1") + ".json",
			wantStreams: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/stream/movie/x", nil)
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			h(c)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var resp models.StreamResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if len(resp.Streams) != tt.wantStreams {
				t.Fatalf("got %d streams, want %d", len(resp.Streams), tt.wantStreams)
			}
			if tt.wantStreams == 1 && resp.Streams[0].ExternalURL != tt.wantURL {
				t.Errorf("ExternalURL = %q, want %q", resp.Streams[0].ExternalURL, tt.wantURL)
			}
		})
	}
}
