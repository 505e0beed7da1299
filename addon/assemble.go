package addon

import (
	"fmt"
	"net/url"
	"time"

	"github.com/use-agent/streamcat/aggregate"
	"github.com/use-agent/streamcat/models"
	"github.com/use-agent/streamcat/source"
)

// Assembler converts extraction outcomes into the response shapes the
// client protocol expects. All methods are pure transformations.
type Assembler struct {
	// Prefix namespaces every emitted identifier.
	Prefix string

	// Background is the artwork URL shown behind detail listings.
	Background string
}

// BuildCatalog emits one catalog entry per source whose outcome carried
// records. Sources that failed or returned nothing are omitted entirely:
// the user only sees sources worth clicking.
func (a Assembler) BuildCatalog(results []aggregate.Result, query string) []models.MetaPreview {
	metas := make([]models.MetaPreview, 0, len(results))
	for _, r := range results {
		if !r.Outcome.OK() {
			continue
		}
		metas = append(metas, models.MetaPreview{
			ID:          fmt.Sprintf("%s:%s:%s", a.Prefix, r.Source.ID, query),
			Type:        "movie",
			Name:        fmt.Sprintf("Results from %s", r.Source.Name),
			Poster:      r.Source.Logo,
			Description: fmt.Sprintf("Search results for %q from %s", query, r.Source.Name),
		})
	}
	return metas
}

// BuildMeta lists every scraped record for one (source, query) pair as a
// series, numbered season 1 / episode N starting at 1.
func (a Assembler) BuildMeta(src *source.Source, query string, records []models.Video) models.Meta {
	videos := make([]models.MetaVideo, 0, len(records))
	released := time.Now().UTC().Format(time.RFC3339)
	for i, v := range records {
		videos = append(videos, models.MetaVideo{
			ID:        fmt.Sprintf("%s:%s", a.Prefix, v.URL),
			Title:     v.Title,
			Season:    1,
			Episode:   i + 1,
			Thumbnail: v.Thumbnail,
			Overview:  fmt.Sprintf("Duration: %s\nSource: %s", v.Duration, v.Source),
			Released:  released,
		})
	}
	return models.Meta{
		ID:          fmt.Sprintf("%s:%s:%s", a.Prefix, src.ID, query),
		Type:        "series",
		Name:        fmt.Sprintf("Results for: %s", query),
		Description: fmt.Sprintf("Showing top %d results from %s", len(records), src.Name),
		Poster:      src.Logo,
		Background:  a.Background,
		Videos:      videos,
	}
}

// BuildErrorMeta produces a single-entry placeholder listing that tells
// the user why a source failed. The detail view is never empty: it shows
// either real results or a visible explanation.
func (a Assembler) BuildErrorMeta(src *source.Source, query string, extractErr *models.ExtractError) models.Meta {
	return models.Meta{
		ID:          fmt.Sprintf("%s:error:%s:%s", a.Prefix, src.ID, query),
		Type:        "series",
		Name:        fmt.Sprintf("Error: %s", src.Name),
		Description: fmt.Sprintf("Failed to fetch results for %q from %s.", query, src.Name),
		Poster:      src.Logo,
		Background:  a.Background,
		Videos: []models.MetaVideo{{
			ID:       fmt.Sprintf("%s:error:%s", a.Prefix, src.ID),
			Title:    extractErr.Kind.Message(),
			Season:   1,
			Episode:  1,
			Overview: extractErr.Detail,
		}},
	}
}

// BuildStream wraps an absolute http(s) URL as a single external-redirect
// stream. Anything else yields an empty list rather than an error.
func (a Assembler) BuildStream(videoURL string) []models.Stream {
	u, err := url.Parse(videoURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []models.Stream{}
	}
	return []models.Stream{{
		Title:         "Open in Browser",
		ExternalURL:   videoURL,
		BehaviorHints: models.BehaviorHints{ExternalURL: true},
	}}
}
