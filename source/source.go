package source

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/use-agent/streamcat/config"
)

// Source is one configured upstream site. Immutable after construction.
type Source struct {
	ID      string
	Name    string
	Logo    string
	BaseURL string

	// searchURL is the search page template with a {{query}} placeholder.
	searchURL string

	// Selectors is the CSS selector set for the structured strategy.
	// Every selector is validated with cascadia at construction.
	Selectors config.SelectorConfig
}

// newSource validates a SourceConfig and builds an immutable Source.
func newSource(cfg config.SourceConfig) (*Source, error) {
	if cfg.ID == "" || cfg.Name == "" {
		return nil, fmt.Errorf("source: id and name are required")
	}
	if !strings.Contains(cfg.SearchURL, "{{query}}") {
		return nil, fmt.Errorf("source %s: search URL missing {{query}} placeholder", cfg.ID)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("source %s: invalid base URL: %w", cfg.ID, err)
	}

	// Bad selectors should fail at startup, not mid-scrape.
	for _, sel := range []string{
		cfg.Selectors.ResultItem,
		cfg.Selectors.Link,
		cfg.Selectors.Thumbnail,
		cfg.Selectors.Duration,
	} {
		if sel == "" {
			continue
		}
		if _, err := cascadia.Parse(sel); err != nil {
			return nil, fmt.Errorf("source %s: invalid selector %q: %w", cfg.ID, sel, err)
		}
	}

	return &Source{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Logo:      cfg.Logo,
		BaseURL:   cfg.BaseURL,
		searchURL: cfg.SearchURL,
		Selectors: cfg.Selectors,
	}, nil
}

// SearchURL builds the search page URL for a query. The query is trimmed
// and URL-encoded before substitution.
func (s *Source) SearchURL(query string) string {
	encoded := url.QueryEscape(strings.TrimSpace(query))
	return strings.ReplaceAll(s.searchURL, "{{query}}", encoded)
}

// ResolveURL resolves a possibly-relative href against the source's base URL.
// Absolute URLs pass through unchanged; unparseable hrefs are returned as-is.
func (s *Source) ResolveURL(href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if ref.IsAbs() {
		return href
	}
	base, err := url.Parse(s.BaseURL)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
