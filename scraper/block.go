package scraper

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// blockMarkers are literal fingerprints of bot-protection interstitials.
// Matching any of them means the body is a challenge page, not content.
var blockMarkers = []string{
	"Just a moment",
	"Access denied",
	"Cloudflare",
	"Attention Required!",
	"Checking your browser",
	"cf-challenge",
	"DDoS-Guard",
}

// titleMarkers are fingerprints checked against the <title> element only,
// where they are unambiguous.
var titleMarkers = []string{
	"cloudflare",
	"access denied",
	"just a moment",
}

// IsBlocked reports whether the body looks like a bot-protection challenge
// page rather than search results.
func IsBlocked(body []byte) bool {
	for _, marker := range blockMarkers {
		if bytes.Contains(body, []byte(marker)) {
			return true
		}
	}

	title := strings.ToLower(extractTitle(body))
	for _, marker := range titleMarkers {
		if strings.Contains(title, marker) {
			return true
		}
	}
	return false
}

// extractTitle extracts the first <title> content from raw HTML bytes.
func extractTitle(body []byte) string {
	tokenizer := html.NewTokenizer(bytes.NewReader(body))
	inTitle := false
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			if string(tn) == "title" {
				inTitle = true
			}
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(tokenizer.Text()))
			}
		case html.EndTagToken:
			if inTitle {
				return ""
			}
		}
	}
}
