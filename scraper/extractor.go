package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/use-agent/streamcat/models"
	"github.com/use-agent/streamcat/source"
)

// maxResults caps how many records one source contributes per query.
const maxResults = 15

// maxTitleRunes bounds result titles.
const maxTitleRunes = 100

// Extractor runs the fetch → block-check → cascade pipeline for one source
// at a time. Safe for concurrent use.
type Extractor struct {
	fetcher *Fetcher
	timeout time.Duration
}

// NewExtractor creates an Extractor with the given fetcher and per-fetch
// timeout.
func NewExtractor(fetcher *Fetcher, timeout time.Duration) *Extractor {
	return &Extractor{fetcher: fetcher, timeout: timeout}
}

// Search fetches the source's search page for query and extracts video
// records. Every failure mode maps to a structured outcome; nothing
// escapes as a panic or unhandled error.
func (e *Extractor) Search(ctx context.Context, src *source.Source, query string) models.Outcome {
	targetURL := src.SearchURL(query)

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	body, err := e.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		slog.Debug("fetch failed", "source", src.ID, "url", targetURL, "error", err)
		return models.Fail(models.KindConnectionFailed,
			fmt.Sprintf("Could not connect to %s: %v", src.Name, err))
	}

	// A challenge page parses fine but contains no content; detect it
	// before wasting a cascade run on it.
	if IsBlocked(body) {
		slog.Info("source blocked", "source", src.ID, "url", targetURL)
		return models.Fail(models.KindBlocked, "Detected protection service")
	}

	records := runCascade(src, string(body))
	records = finalize(src, records)
	if len(records) == 0 {
		return models.Fail(models.KindNoResults,
			"No video links found in HTML. The site structure may have changed or search returned no results.")
	}

	slog.Debug("extraction done", "source", src.ID, "records", len(records))
	return models.Outcome{Records: records}
}

// runCascade tries each strategy in order and returns the first non-empty
// result. A panicking strategy counts as empty: malformed markup must
// degrade, never fault.
func runCascade(src *source.Source, page string) (records []models.Video) {
	for _, s := range cascade {
		records = runStrategy(s, src, page)
		if len(records) > 0 {
			slog.Debug("strategy matched", "source", src.ID, "strategy", s.name, "raw", len(records))
			return records
		}
	}
	return nil
}

func runStrategy(s strategy, src *source.Source, page string) (records []models.Video) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("strategy panicked", "source", src.ID, "strategy", s.name, "panic", r)
			records = nil
		}
	}()
	return s.run(src, page)
}

// finalize resolves relative URLs against the source base, truncates
// titles, drops duplicate URLs (first occurrence wins), and caps the count.
func finalize(src *source.Source, records []models.Video) []models.Video {
	seen := make(map[string]struct{}, len(records))
	out := make([]models.Video, 0, len(records))
	for _, v := range records {
		v.URL = src.ResolveURL(v.URL)
		v.Thumbnail = src.ResolveURL(v.Thumbnail)
		v.Title = strings.TrimSpace(truncate(v.Title, maxTitleRunes))

		if v.URL == "" {
			continue
		}
		if _, dup := seen[v.URL]; dup {
			continue
		}
		seen[v.URL] = struct{}{}

		out = append(out, v)
		if len(out) >= maxResults {
			break
		}
	}
	return out
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
