package models

// Response shapes for the Stremio addon protocol. Field names follow the
// protocol's JSON, so these marshal directly from the handlers.

// CatalogResponse is the body for /catalog requests.
type CatalogResponse struct {
	Metas []MetaPreview `json:"metas"`
}

// MetaResponse is the body for /meta requests.
type MetaResponse struct {
	Meta Meta `json:"meta"`
}

// StreamResponse is the body for /stream requests.
type StreamResponse struct {
	Streams []Stream `json:"streams"`
}

// MetaPreview is one catalog entry: a clickable pointer to a source's
// result listing for the current query.
type MetaPreview struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Poster      string `json:"poster,omitempty"`
	Description string `json:"description,omitempty"`
}

// Meta is the full detail record for one (source, query) pair.
type Meta struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Poster      string      `json:"poster,omitempty"`
	Background  string      `json:"background,omitempty"`
	Videos      []MetaVideo `json:"videos"`
}

// MetaVideo is one entry in a Meta's video listing. Results are presented
// as season 1 episodes, numbered from 1 in scrape order.
type MetaVideo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Season    int    `json:"season"`
	Episode   int    `json:"episode"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Overview  string `json:"overview,omitempty"`
	Released  string `json:"released,omitempty"`
}

// Stream points the client at an external URL instead of a playable stream.
type Stream struct {
	Title         string        `json:"title"`
	ExternalURL   string        `json:"externalUrl"`
	BehaviorHints BehaviorHints `json:"behaviorHints"`
}

// BehaviorHints tells the client how to treat a stream.
type BehaviorHints struct {
	ExternalURL bool `json:"externalUrl"`
}

// Manifest describes the addon to the client.
type Manifest struct {
	ID          string            `json:"id"`
	Version     string            `json:"version"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Logo        string            `json:"logo,omitempty"`
	Background  string            `json:"background,omitempty"`
	Resources   []string          `json:"resources"`
	Types       []string          `json:"types"`
	IDPrefixes  []string          `json:"idPrefixes"`
	Catalogs    []ManifestCatalog `json:"catalogs"`
}

// ManifestCatalog declares one searchable catalog.
type ManifestCatalog struct {
	Type  string          `json:"type"`
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Extra []ManifestExtra `json:"extra,omitempty"`
}

// ManifestExtra declares a supported catalog extra parameter.
type ManifestExtra struct {
	Name       string `json:"name"`
	IsRequired bool   `json:"isRequired"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status       string `json:"status"`
	Uptime       string `json:"uptime"`
	Sources      int    `json:"sources"`
	CacheEntries int    `json:"cache_entries"`
	Version      string `json:"version"`
}
