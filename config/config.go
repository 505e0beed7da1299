package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Client    ClientConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Addon     AddonConfig
	Sources   []SourceConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 7000
	Mode string // "debug", "release", "test"; default: "release"
}

// ClientConfig controls outbound page fetches.
type ClientConfig struct {
	// UserAgent is sent on every fetch. Defaults to a current Chrome UA.
	UserAgent string

	// Timeout bounds one page fetch end to end.
	Timeout time.Duration // default: 8s

	// Proxy is an optional proxy URL applied to all fetches.
	Proxy string
}

// CacheConfig controls the query result cache.
type CacheConfig struct {
	// TTL is how long catalog and meta results stay valid.
	TTL time.Duration // default: 168h (7 days)

	// MaxEntries bounds the number of cached values.
	MaxEntries int // default: 1000

	// SweepInterval is how often expired entries are evicted in the background.
	SweepInterval time.Duration // default: 10m
}

// RateLimitConfig controls per-IP rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client IP.
	RequestsPerSecond float64 // default: 10

	// Burst is the maximum burst size per client IP.
	Burst int // default: 20
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// AddonConfig holds the manifest identity fields.
type AddonConfig struct {
	ID          string
	Version     string
	Name        string
	Description string
	Logo        string
	Background  string

	// IDPrefix namespaces every identifier this addon emits, e.g.
	// "streamcat" → "streamcat:<sourceId>:<query>".
	IDPrefix string
}

// SourceConfig describes one upstream site to scrape.
type SourceConfig struct {
	ID      string
	Name    string
	Logo    string
	BaseURL string

	// SearchURL is the search page template with a {{query}} placeholder.
	SearchURL string

	// Selectors drive the structured extraction strategy.
	Selectors SelectorConfig
}

// SelectorConfig is the CSS selector set for a source's result markup.
type SelectorConfig struct {
	ResultItem string
	Link       string
	Thumbnail  string
	Duration   string
}

// Load reads configuration from environment variables with sane defaults.
// The source set is static: sources are compiled in and constructed once
// at process start.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("STREAMCAT_HOST", "0.0.0.0"),
			Port: envIntOr("STREAMCAT_PORT", 7000),
			Mode: envOr("STREAMCAT_MODE", "release"),
		},
		Client: ClientConfig{
			UserAgent: envOr("STREAMCAT_USER_AGENT",
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36"),
			Timeout: envDurationOr("STREAMCAT_FETCH_TIMEOUT", 8*time.Second),
			Proxy:   os.Getenv("STREAMCAT_PROXY"),
		},
		Cache: CacheConfig{
			TTL:           envDurationOr("STREAMCAT_CACHE_TTL", 7*24*time.Hour),
			MaxEntries:    envIntOr("STREAMCAT_CACHE_MAX_ENTRIES", 1000),
			SweepInterval: envDurationOr("STREAMCAT_CACHE_SWEEP", 10*time.Minute),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("STREAMCAT_RATE_RPS", 10.0),
			Burst:             envIntOr("STREAMCAT_RATE_BURST", 20),
		},
		Log: LogConfig{
			Level:  envOr("STREAMCAT_LOG_LEVEL", "info"),
			Format: envOr("STREAMCAT_LOG_FORMAT", "json"),
		},
		Addon: AddonConfig{
			ID:          envOr("STREAMCAT_ADDON_ID", "org.streamcat.addon"),
			Version:     "1.0.0",
			Name:        envOr("STREAMCAT_ADDON_NAME", "Streamcat"),
			Description: "Search-driven catalog addon aggregating results from multiple content sites.",
			Logo:        os.Getenv("STREAMCAT_ADDON_LOGO"),
			Background:  os.Getenv("STREAMCAT_ADDON_BACKGROUND"),
			IDPrefix:    "streamcat",
		},
		Sources: defaultSources(),
	}
}

// defaultSources returns the built-in source set. Both sites share the same
// result markup, so the selector set is shared too.
func defaultSources() []SourceConfig {
	shared := SelectorConfig{
		ResultItem: "div.card",
		Link:       "a.item-title",
		Thumbnail:  "img.item-image",
		Duration:   "span.badge.float-right",
	}
	return []SourceConfig{
		{
			ID:        "metaporn",
			Name:      "Metaporn",
			Logo:      os.Getenv("STREAMCAT_METAPORN_LOGO"),
			BaseURL:   "https://www.metaporn.com",
			SearchURL: "https://www.metaporn.com/search/{{query}}",
			Selectors: shared,
		},
		{
			ID:        "pornmd",
			Name:      "PornMD",
			Logo:      os.Getenv("STREAMCAT_PORNMD_LOGO"),
			BaseURL:   "https://www.pornmd.com",
			SearchURL: "https://www.pornmd.com/search/{{query}}",
			Selectors: shared,
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
