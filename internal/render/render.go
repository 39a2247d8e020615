// Package render implements the Renderer and Reading-Time component
// (spec §4.8): serializing the merged container to sanitized HTML and
// plain text, and estimating reading time.
package render

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"

	"github.com/kettle-labs/readably/internal/dom"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// WordsPerMinute is the divisor for estimated_reading_time (spec §4.8).
const WordsPerMinute = 200

// Rendered is the output of a render pass.
type Rendered struct {
	Content              string
	Text                 string
	EstimatedReadingTime int
	HasReadingTime       bool
}

var wordSplitRegexp = regexp.MustCompile(`[^\p{L}]+`)

// contentPolicy allows the article-formatting tag/attribute surface the
// merged container can legitimately contain while keeping the synthetic
// wrapper's id intact, so sanitized content still satisfies invariant I1
// (content begins with a tag having id "readability-content").
func contentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements("p", "br", "strong", "b", "em", "i", "u", "s",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "pre", "code",
		"figure", "figcaption", "img", "a", "span", "div", "table",
		"thead", "tbody", "tr", "td", "th")

	p.AllowAttrs("href").OnElements("a")
	p.RequireNoReferrerOnLinks(true)
	p.AllowAttrs("src", "alt", "width", "height", "srcset").OnElements("img")
	p.AllowAttrs("id").Globally()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("data-node-index", "data-content-digest").Globally()

	return p
}

var sanitizer = contentPolicy()

// blockSelector matches the block-level elements eligible for
// data-node-index/data-content-digest tagging.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, li, blockquote, pre, figure, table"

// Options controls the optional supplemented annotations a render pass may
// attach to block elements before serialization.
type Options struct {
	NodeIndexes    bool
	ContentDigests bool
}

// Render serializes container into sanitized HTML, plain text, and a
// reading-time estimate, with no supplemented annotations.
func Render(container *dom.Element) Rendered {
	return RenderWithOptions(container, Options{})
}

// RenderWithOptions is Render with the supplemented node-index and
// content-digest annotations (spec §13) applied to block elements before
// sanitization, when requested.
func RenderWithOptions(container *dom.Element, opts Options) Rendered {
	if container == nil || !container.Exists() {
		return Rendered{}
	}

	if opts.NodeIndexes || opts.ContentDigests {
		annotateBlocks(container, opts)
	}

	rawHTML := container.OuterHTML()
	content := sanitizer.Sanitize(rawHTML)

	text := normalizeText(container.TrimmedText())

	r := Rendered{Content: content, Text: text}
	if text != "" {
		r.EstimatedReadingTime = estimateReadingTime(text)
		r.HasReadingTime = true
	}
	return r
}

// annotateBlocks tags each block-level descendant with a stable
// data-node-index (document order within the container) and/or a
// data-content-digest (SHA-256 of its trimmed text), so a caller can
// correlate rendered blocks back to source elements or detect content
// changes across extractions.
func annotateBlocks(container *dom.Element, opts Options) {
	for i, block := range container.Query(blockSelector) {
		if opts.NodeIndexes {
			block.SetAttr("data-node-index", strconv.Itoa(i))
		}
		if opts.ContentDigests {
			sum := sha256.Sum256([]byte(block.TrimmedText()))
			block.SetAttr("data-content-digest", hex.EncodeToString(sum[:]))
		}
	}
}

// normalizeText applies NFKC normalization so composed and decomposed forms
// of the same glyph compare and measure identically downstream.
func normalizeText(text string) string {
	if text == "" {
		return ""
	}
	return norm.NFKC.String(text)
}

// estimateReadingTime implements spec §4.8: max(1, word_count/200), where
// word_count splits on non-letter boundaries (Unicode letter class).
func estimateReadingTime(text string) int {
	words := wordSplitRegexp.Split(text, -1)
	count := 0
	for _, w := range words {
		if w != "" {
			count++
		}
	}
	minutes := count / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
