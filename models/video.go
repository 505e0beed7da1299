package models

// DurationUnknown is the sentinel duration shown when no H:MM[:SS] value
// could be found near a scraped result.
const DurationUnknown = "N/A"

// Video is one scraped search result. Instances are immutable once built
// by an extraction strategy.
type Video struct {
	// Title is the result title, truncated to 100 runes.
	Title string `json:"title"`

	// URL is the absolute link to the video page.
	URL string `json:"url"`

	// Thumbnail is an absolute image URL, or empty when none was found.
	Thumbnail string `json:"thumbnail"`

	// Duration is formatted H:MM or H:MM:SS, or DurationUnknown.
	Duration string `json:"duration"`

	// Source is the display name of the site the result came from.
	Source string `json:"source"`
}
