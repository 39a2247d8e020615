package metadata

import (
	"encoding/json"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/kettle-labs/readably/internal/dom"
)

// maxJSONLDDepth guards the recursive @graph/@type walk against pathological
// nesting (spec §9 design note: "guard against pathological nesting with a
// depth cap, e.g. 64").
const maxJSONLDDepth = 64

// structuredData is what the JSON-LD walk produces; any field may be zero.
type structuredData struct {
	Title         string
	Description   string
	Author        string
	DatePublished string
	Image         string
	Keywords      []string
}

// extractStructuredData finds the first <script type="application/ld+json">
// node whose @type (directly or within @graph) case-insensitively contains
// "article" or "blogposting", and pulls metadata from it (spec §4.6).
//
// Script nodes are located with an XPath query rather than goquery's CSS
// selector API: htmlquery walks the same parse tree goquery produced, which
// lets this one lookup reuse a query language suited to "any script
// anywhere" without adding a second HTML parse.
func extractStructuredData(doc *dom.Document) *structuredData {
	root := doc.GoqueryDocument().Nodes
	if len(root) == 0 {
		return nil
	}

	nodes := htmlquery.Find(root[0], "//script[@type='application/ld+json']")
	for _, n := range nodes {
		text := htmlquery.InnerText(n)
		if strings.TrimSpace(text) == "" {
			continue
		}

		var raw interface{}
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			continue
		}

		if obj := findArticleObject(raw, 0); obj != nil {
			return parseArticleObject(obj)
		}
	}
	return nil
}

// findArticleObject recursively searches raw for an object whose @type
// (string or array of strings) contains "article" or "blogposting",
// descending into @graph arrays and plain arrays.
func findArticleObject(raw interface{}, depth int) map[string]interface{} {
	if depth > maxJSONLDDepth {
		return nil
	}

	switch v := raw.(type) {
	case map[string]interface{}:
		if isArticleType(v["@type"]) {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			if found := findArticleObject(graph, depth+1); found != nil {
				return found
			}
		}
		return nil
	case []interface{}:
		for _, item := range v {
			if found := findArticleObject(item, depth+1); found != nil {
				return found
			}
		}
		return nil
	default:
		return nil
	}
}

func isArticleType(t interface{}) bool {
	switch v := t.(type) {
	case string:
		return matchesArticleType(v)
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && matchesArticleType(s) {
				return true
			}
		}
	}
	return false
}

func matchesArticleType(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "article") || strings.Contains(lower, "blogposting")
}

func parseArticleObject(obj map[string]interface{}) *structuredData {
	sd := &structuredData{}

	if v, ok := nonEmptyString(obj["headline"]); ok {
		sd.Title = v
	} else if v, ok := nonEmptyString(obj["name"]); ok {
		sd.Title = v
	}

	if v, ok := obj["description"].(string); ok {
		sd.Description = v
	}

	sd.Author = extractPersonName(obj["author"], 0)

	if v, ok := nonEmptyString(obj["datePublished"]); ok {
		sd.DatePublished = v
	} else if v, ok := nonEmptyString(obj["dateCreated"]); ok {
		sd.DatePublished = v
	}

	sd.Image = extractImageURL(obj["image"], 0)
	sd.Keywords = extractKeywords(obj["keywords"])

	return sd
}

// extractPersonName handles author as a string, an object with a "name"
// field, or a sequence (first non-empty recursive result wins), per
// spec §4.6.
func extractPersonName(v interface{}, depth int) string {
	if depth > maxJSONLDDepth {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]interface{}:
		if name, ok := nonEmptyString(t["name"]); ok {
			return name
		}
		return ""
	case []interface{}:
		for _, item := range t {
			if name := extractPersonName(item, depth+1); name != "" {
				return name
			}
		}
	}
	return ""
}

// extractImageURL handles image as a string, an object with a "url" field,
// or a sequence, per spec §4.6.
func extractImageURL(v interface{}, depth int) string {
	if depth > maxJSONLDDepth {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]interface{}:
		if url, ok := nonEmptyString(t["url"]); ok {
			return url
		}
		return ""
	case []interface{}:
		for _, item := range t {
			if url := extractImageURL(item, depth+1); url != "" {
				return url
			}
		}
	}
	return ""
}

// extractKeywords handles keywords as a sequence of strings (trimmed,
// non-empty) or a comma-split string, per spec §4.6.
func extractKeywords(v interface{}) []string {
	switch t := v.(type) {
	case string:
		return splitKeywords(t)
	case []interface{}:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return nil
}

func splitKeywords(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func nonEmptyString(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
