package handler

import "testing"

func TestCleanParam(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"manifest.json", "manifest"},
		{"streamcat%3Asite%3Abunny.json", "streamcat:site:bunny"},
		{"streamcat%3Ahttps%3A%2F%2Fsite%2Fdata.json.json", "streamcat:https://site/data.json"},
		{"streamcat:site:bunny", "streamcat:site:bunny"},
		{"plain", "plain"},
		{"bad%zzescape", "bad%zzescape"},
	}
	for _, tt := range tests {
		if got := cleanParam(tt.in); got != tt.want {
			t.Errorf("cleanParam(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitCompositeID(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantSource string
		wantQuery  string
		wantOK     bool
	}{
		{"basic", "streamcat:site:bunny", "site", "bunny", true},
		{"query with colons", "streamcat:site:big:buck:bunny", "site", "big:buck:bunny", true},
		{"wrong prefix", "other:site:bunny", "", "", false},
		{"too few parts", "streamcat:site", "", "", false},
		{"empty", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, query, ok := splitCompositeID(tt.id, "streamcat")
			if ok != tt.wantOK || src != tt.wantSource || query != tt.wantQuery {
				t.Errorf("splitCompositeID(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.id, src, query, ok, tt.wantSource, tt.wantQuery, tt.wantOK)
			}
		})
	}
}

func TestParseSearchExtra(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"search=bunny", "bunny"},
		{"search=big+buck+bunny", "big buck bunny"},
		{"search=big%20buck", "big buck"},
		{"skip=20&search=bunny", "bunny"},
		{"skip=20", ""},
		{"", ""},
		{"search=", ""},
	}
	for _, tt := range tests {
		if got := parseSearchExtra(tt.in); got != tt.want {
			t.Errorf("parseSearchExtra(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
