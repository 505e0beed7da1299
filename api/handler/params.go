package handler

import (
	"net/url"
	"strings"
)

// cleanParam strips the protocol's .json suffix and unescapes a path
// parameter. Clients URL-escape composite ids, but a raw id must also
// survive, so unescape failures fall back to the raw value.
func cleanParam(raw string) string {
	raw = strings.TrimSuffix(raw, ".json")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

// splitCompositeID parses "<prefix>:<sourceId>:<query>" and reports
// whether the id carried the expected namespace. The query component may
// itself contain colons, so only two splits are made.
func splitCompositeID(id, prefix string) (sourceID, query string, ok bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != prefix {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// parseSearchExtra pulls the search query out of a catalog extra segment
// like "search=big+buck+bunny" or "search=foo&skip=20".
func parseSearchExtra(extra string) string {
	for _, pair := range strings.Split(extra, "&") {
		k, v, found := strings.Cut(pair, "=")
		if !found || k != "search" {
			continue
		}
		if unescaped, err := url.QueryUnescape(v); err == nil {
			return unescaped
		}
		return v
	}
	return ""
}
