// Package metadata implements the Metadata Extractor (spec §4.6):
// structured-data-first, then ranked meta-tag, then DOM fallback chains for
// title, description, author, date, keywords, top image, and top video.
package metadata

import (
	"strings"
	"time"

	"github.com/kettle-labs/readably/internal/dom"
	"github.com/markusmobius/go-dateparser"
)

// Metadata is the set of article-level fields this package produces.
type Metadata struct {
	Title         string
	Description   string
	Author        string
	DatePublished string
	Keywords      []string
	TopImage      string
	TopVideo      string
}

var genericTitles = map[string]bool{
	"home":           true,
	"menu":           true,
	"index":          true,
	"untitled":       true,
	"page not found": true,
}

// Extract runs the full structured-data → meta → DOM fallback chain over
// the pre-merge document (spec §5 ordering requirement).
func Extract(doc *dom.Document) Metadata {
	sd := extractStructuredData(doc)

	var m Metadata
	if sd != nil {
		m.Title = sd.Title
		m.Description = sd.Description
		m.Author = sd.Author
		m.DatePublished = sd.DatePublished
		m.Keywords = sd.Keywords
		m.TopImage = sd.Image
	}

	if m.Title == "" {
		m.Title = fallbackTitle(doc)
	}
	if m.Description == "" {
		m.Description = fallbackDescription(doc)
	}
	if m.Author == "" {
		m.Author = fallbackAuthor(doc)
	}
	if m.DatePublished == "" {
		m.DatePublished = fallbackDate(doc)
	}
	if len(m.Keywords) == 0 {
		m.Keywords = fallbackKeywords(doc)
	}
	if m.TopImage == "" {
		m.TopImage = fallbackTopImage(doc)
	}
	m.TopVideo = firstMetaContent(doc, topVideoMetaSelectors)

	m.DatePublished = normalizeDate(m.DatePublished)

	return m
}

func fallbackTitle(doc *dom.Document) string {
	if t := firstMetaContent(doc, titleMetaSelectors); t != "" {
		return t
	}

	title := ""
	if e := doc.QueryOne("title"); e != nil {
		title = e.TrimmedText()
	}

	if title == "" || genericTitles[strings.ToLower(title)] {
		if h1 := doc.QueryOne("h1"); h1 != nil {
			if text := h1.TrimmedText(); text != "" {
				return text
			}
		}
	}

	return title
}

func fallbackDescription(doc *dom.Document) string {
	if d := firstMetaContent(doc, descriptionMetaSelectors); d != "" {
		return d
	}
	for _, p := range doc.Query("p") {
		text := p.TrimmedText()
		if len([]rune(text)) > 40 {
			return text
		}
	}
	return ""
}

var authorFallbackSelectors = ".byline, .by-author, .author, [rel='author'], .posted-by, .article-author, [itemprop='author']"

func fallbackAuthor(doc *dom.Document) string {
	if a := firstMetaContent(doc, authorMetaSelectors); a != "" {
		return a
	}
	if e := doc.QueryOne(authorFallbackSelectors); e != nil {
		return e.TrimmedText()
	}
	return ""
}

func fallbackDate(doc *dom.Document) string {
	if d := firstMetaContent(doc, dateMetaSelectors); d != "" {
		return d
	}
	if e := doc.QueryOne("time[datetime]"); e != nil {
		if dt, ok := e.Attr("datetime"); ok && dt != "" {
			return dt
		}
	}
	if e := doc.QueryOne("time"); e != nil {
		if text := e.TrimmedText(); text != "" {
			return text
		}
	}
	return ""
}

func fallbackKeywords(doc *dom.Document) []string {
	raw := firstMetaContent(doc, keywordsMetaSelectors)
	if raw == "" {
		return nil
	}
	return splitKeywords(raw)
}

var imgFallbackAttrs = []string{"src", "data-src", "data-original", "data-lazy-src"}

func fallbackTopImage(doc *dom.Document) string {
	if img := firstMetaContent(doc, topImageMetaSelectors); img != "" {
		return img
	}

	body := doc.QueryOne("body")
	if body == nil {
		return ""
	}

	for _, img := range body.Query("img") {
		for _, attr := range imgFallbackAttrs {
			if v, ok := img.Attr(attr); ok && v != "" {
				return v
			}
		}
		if srcset, ok := img.Attr("data-srcset"); ok && srcset != "" {
			if first := strings.Fields(srcset); len(first) > 0 {
				return first[0]
			}
		}
	}
	return ""
}

// normalizeDate reformats a recognizable date string to RFC3339 via
// go-dateparser; unparseable strings pass through unchanged rather than
// being dropped, since a raw timestamp is still useful to a caller.
func normalizeDate(raw string) string {
	if raw == "" {
		return raw
	}
	cfg := &dateparser.Configuration{
		CurrentTime:   time.Now(),
		StrictParsing: false,
	}
	parsed, err := dateparser.Parse(cfg, raw)
	if err != nil || parsed == nil || parsed.Time.IsZero() {
		return raw
	}
	return parsed.Time.Format(time.RFC3339)
}
