package addon

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/use-agent/streamcat/aggregate"
	"github.com/use-agent/streamcat/cache"
	"github.com/use-agent/streamcat/models"
	"github.com/use-agent/streamcat/source"
)

// Service wires the registry, aggregator, extractor, and cache into the
// three operations the routing layer exposes.
type Service struct {
	registry   *source.Registry
	aggregator *aggregate.Aggregator
	extractor  aggregate.Extractor
	cache      *cache.Cache
	assembler  Assembler
	ttl        time.Duration
}

// NewService creates the addon pipeline service.
func NewService(registry *source.Registry, aggregator *aggregate.Aggregator, extractor aggregate.Extractor, c *cache.Cache, assembler Assembler, ttl time.Duration) *Service {
	return &Service{
		registry:   registry,
		aggregator: aggregator,
		extractor:  extractor,
		cache:      c,
		assembler:  assembler,
		ttl:        ttl,
	}
}

// HandleCatalogSearch fans the query out to every source and returns one
// catalog entry per source that produced results. A blank query yields an
// empty, valid catalog.
//
// The catalog is cached only when no source reported a connection-level
// failure: a transiently degraded catalog must not be pinned for the full
// TTL window.
func (s *Service) HandleCatalogSearch(ctx context.Context, query string) models.CatalogResponse {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.CatalogResponse{Metas: []models.MetaPreview{}}
	}

	// An abandoned client request must not cancel the scrape; the result
	// still populates the cache for the next caller.
	bg := context.WithoutCancel(ctx)

	key := cache.Key("catalog", query)
	v := s.cache.GetOrCompute(key, s.ttl, func() (any, bool) {
		slog.Info("scraping all sources", "query", query)
		results := s.aggregator.Search(bg, query)

		cacheable := true
		for _, r := range results {
			if r.Outcome.Err != nil && !r.Outcome.Err.Cacheable() {
				cacheable = false
			}
		}
		return s.assembler.BuildCatalog(results, query), cacheable
	})

	return models.CatalogResponse{Metas: v.([]models.MetaPreview)}
}

// HandleMetaLookup scrapes one source for the query and returns the full
// listing, or a visible error placeholder when extraction failed. Unknown
// source ids are caller-input errors and are surfaced before any cache
// interaction.
func (s *Service) HandleMetaLookup(ctx context.Context, sourceID, query string) (models.MetaResponse, error) {
	src, ok := s.registry.Get(sourceID)
	if !ok {
		return models.MetaResponse{}, models.NewAddonError(models.ErrCodeUnknownSource,
			fmt.Sprintf("invalid source id: %s", sourceID), nil)
	}
	query = strings.TrimSpace(query)

	bg := context.WithoutCancel(ctx)

	key := cache.Key("meta", sourceID, query)
	v := s.cache.GetOrCompute(key, s.ttl, func() (any, bool) {
		slog.Info("scraping source", "source", sourceID, "query", query)
		outcome := s.extractor.Search(bg, src, query)

		if outcome.Err != nil {
			return models.MetaResponse{
				Meta: s.assembler.BuildErrorMeta(src, query, outcome.Err),
			}, outcome.Err.Cacheable()
		}
		return models.MetaResponse{
			Meta: s.assembler.BuildMeta(src, query, outcome.Records),
		}, true
	})

	return v.(models.MetaResponse), nil
}

// HandleStreamResolve wraps a scraped video URL as an external redirect.
// Missing or non-absolute URLs yield an empty stream list, not an error.
func (s *Service) HandleStreamResolve(videoURL string) models.StreamResponse {
	return models.StreamResponse{Streams: s.assembler.BuildStream(videoURL)}
}

// SourceCount reports the number of registered sources (health endpoint).
func (s *Service) SourceCount() int {
	return s.registry.Len()
}

// CacheEntries reports the number of live cache entries (health endpoint).
func (s *Service) CacheEntries() int {
	return s.cache.Len()
}
