package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/streamcat/models"
	"github.com/use-agent/streamcat/source"
)

// A strategy is a pure function turning one fetched page into raw video
// records. Strategies never resolve URLs, de-duplicate, or cap: that
// happens once, uniformly, in the extractor.
type strategy struct {
	name string
	run  func(src *source.Source, page string) []models.Video
}

// cascade is the ordered fallback chain. Structured selectors break first
// when a site redesigns its markup, so looser strategies follow to recover
// partial results instead of returning nothing.
var cascade = []strategy{
	{name: "structured", run: extractStructured},
	{name: "link_image", run: extractLinkImage},
	{name: "any_link", run: extractAnyLink},
}

var (
	reDuration  = regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?`)
	reLinkImage = regexp.MustCompile(`(?is)<a[^>]+href="([^"]+)"[^>]*>.*?<img[^>]+src="([^"]+)"[^>]*alt="([^"]*)".*?</a>`)
	reAnyLink   = regexp.MustCompile(`(?is)<a[^>]+href="([^"]*(?:video|watch)[^"]*)"[^>]*>(.*?)</a>`)
	reTitleAttr = regexp.MustCompile(`(?i)title="([^"]+)"`)
	reAltAttr   = regexp.MustCompile(`(?i)alt="([^"]+)"`)
	reLinkText  = regexp.MustCompile(`>\s*([^<>]+\S)\s*<`)
)

// extractStructured reads the source's known result markup via its CSS
// selector set.
func extractStructured(src *source.Source, page string) []models.Video {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var videos []models.Video
	doc.Find(src.Selectors.ResultItem).Each(func(_ int, el *goquery.Selection) {
		link := el.Find(src.Selectors.Link)
		href, _ := link.Attr("href")
		title := link.AttrOr("title", "")
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		if href == "" || title == "" {
			return
		}

		thumbnail := el.Find(src.Selectors.Thumbnail).AttrOr("src", "")
		duration := matchDuration(el.Find(src.Selectors.Duration).Text())

		videos = append(videos, models.Video{
			Title:     title,
			URL:       href,
			Thumbnail: thumbnail,
			Duration:  duration,
			Source:    src.Name,
		})
	})
	return videos
}

// extractLinkImage scans for anchor+image pairs whose href looks like a
// content link. The duration is searched in a ±500 character window around
// the match, since sites commonly render it as a sibling badge.
func extractLinkImage(src *source.Source, page string) []models.Video {
	matches := reLinkImage.FindAllStringSubmatchIndex(page, 20)

	var videos []models.Video
	for _, m := range matches {
		href := page[m[2]:m[3]]
		imgSrc := page[m[4]:m[5]]
		alt := page[m[6]:m[7]]

		if !looksLikeContentLink(href) {
			continue
		}

		title := alt
		if title == "" {
			title = "Unknown Video"
		}

		windowStart := max(0, m[0]-500)
		windowEnd := min(len(page), m[1]+500)
		duration := matchDuration(page[windowStart:windowEnd])

		videos = append(videos, models.Video{
			Title:     title,
			URL:       href,
			Thumbnail: imgSrc,
			Duration:  duration,
			Source:    src.Name,
		})
	}
	return videos
}

// extractAnyLink is the last resort: any anchor whose href mentions video
// or watch, titled from whatever attribute or text is available.
func extractAnyLink(src *source.Source, page string) []models.Video {
	matches := reAnyLink.FindAllStringSubmatch(page, 10)

	var videos []models.Video
	for _, m := range matches {
		href, content := m[1], m[2]

		title := "Video"
		if t := reTitleAttr.FindStringSubmatch(content); t != nil {
			title = t[1]
		} else if a := reAltAttr.FindStringSubmatch(content); a != nil {
			title = a[1]
		} else if txt := reLinkText.FindStringSubmatch(content); txt != nil {
			title = txt[1]
		} else if txt := strings.TrimSpace(content); txt != "" && !strings.Contains(txt, "<") {
			title = txt
		}

		videos = append(videos, models.Video{
			Title:    title,
			URL:      href,
			Duration: models.DurationUnknown,
			Source:   src.Name,
		})
	}
	return videos
}

// looksLikeContentLink filters hrefs down to ones that plausibly point at
// a video page.
func looksLikeContentLink(href string) bool {
	return strings.Contains(href, "/video/") ||
		strings.Contains(href, "/watch/") ||
		strings.Contains(href, ".html")
}

// matchDuration pulls the first H:MM[:SS] shaped substring out of text,
// or returns the unknown sentinel.
func matchDuration(text string) string {
	if m := reDuration.FindString(text); m != "" {
		return m
	}
	return models.DurationUnknown
}
