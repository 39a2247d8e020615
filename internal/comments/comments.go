// Package comments implements the Comment Extractor (spec §4.7): an
// optional pass over the pre-merge document selecting comment-shaped nodes.
package comments

import (
	"strings"

	"github.com/kettle-labs/readably/internal/dom"
)

// MaxComments bounds the output (spec §3 invariant, §4.7 step 3).
const MaxComments = 50

// Comment mirrors the (author, date, content) triple from spec §3.
type Comment struct {
	Author  string
	Date    string
	Content string
}

var primarySelectors = []string{
	".comment-list .comment", ".comments .comment", ".comment", "li.comment",
	"[itemprop='comment']",
}

var secondarySelectors = []string{
	"[class*=comment]", "[id*=comment]", "[class*=reply]", "[id*=reply]",
	"[class*=discussion]", "[id*=discussion]", ".comment-list",
	".comment-body", ".comment-content", "#disqus_thread", ".fb-comments",
}

var fallbackSelectors = []string{"div.comment", "li.comment"}

var contentSelectors = []string{"div.post-body", "p", ".comment-content", ".comment-body", ".content"}
var authorSelectors = []string{".author", ".user", ".username", "span.post-author", ".comment-author", "[itemprop='author']", ".fn"}
var dateSelectors = []string{"time[datetime]", "time", "[data-datetime]", ".comment-date", ".date", "[itemprop='datePublished']"}

// Extract walks doc for comment-shaped nodes, deduplicates on
// (author, date, content), and bounds the result to MaxComments.
func Extract(doc *dom.Document) []Comment {
	nodes := selectCommentNodes(doc)

	seen := make(map[string]bool, len(nodes))
	out := make([]Comment, 0, len(nodes))

	for _, e := range nodes {
		content := extractContent(e)
		if len([]rune(content)) < 20 {
			continue
		}

		author := extractAuthor(e)
		date := extractDate(e)

		key := author + "|" + date + "|" + content
		if seen[key] {
			continue
		}
		seen[key] = true

		out = append(out, Comment{Author: author, Date: date, Content: content})
		if len(out) >= MaxComments {
			break
		}
	}

	return out
}

func selectCommentNodes(doc *dom.Document) []*dom.Element {
	if nodes := doc.Query(strings.Join(primarySelectors, ", ")); len(nodes) > 0 {
		return nodes
	}
	if nodes := doc.Query(strings.Join(secondarySelectors, ", ")); len(nodes) > 0 {
		return nodes
	}
	return doc.Query(strings.Join(fallbackSelectors, ", "))
}

func extractContent(e *dom.Element) string {
	var parts []string
	for _, d := range e.Query(strings.Join(contentSelectors, ", ")) {
		if t := d.TrimmedText(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// extractAuthor returns the first match, trying each selector in rank order
// (spec §4.7 step 2: "first match of .author, .user, ...").
func extractAuthor(e *dom.Element) string {
	for _, sel := range authorSelectors {
		if a := e.QueryOne(sel); a != nil {
			if text := a.TrimmedText(); text != "" {
				return text
			}
		}
	}
	return "Anonymous"
}

func extractDate(e *dom.Element) string {
	for _, sel := range dateSelectors {
		d := e.QueryOne(sel)
		if d == nil {
			continue
		}
		if dt, ok := d.Attr("datetime"); ok && dt != "" {
			return dt
		}
		if dt, ok := d.Attr("data-datetime"); ok && dt != "" {
			return dt
		}
		if text := d.TrimmedText(); text != "" {
			return text
		}
	}
	return ""
}
