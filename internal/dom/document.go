// Package dom is the DOM Adapter: a thin capability wrapping goquery so the
// rest of the extraction pipeline never imports goquery or golang.org/x/net
// directly. Everything downstream of this package is written against
// Document and Element alone.
package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is the root handle for a parsed page.
type Document struct {
	gq *goquery.Document
}

// Parse parses raw HTML into a Document.
func Parse(rawHTML string) (*Document, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("dom: parse html: %w", err)
	}
	return &Document{gq: gq}, nil
}

// Root returns the document's root element (the <html> node, or whatever
// goquery produced for malformed fragments).
func (d *Document) Root() *Element {
	return &Element{sel: d.gq.Selection}
}

// GoqueryDocument exposes the underlying *goquery.Document for packages that
// need XPath-style access (e.g. the structured-data walk), which goquery's
// CSS selector API cannot express. This keeps the escape hatch narrow and
// named rather than leaking goquery types into every package's signatures.
func (d *Document) GoqueryDocument() *goquery.Document {
	return d.gq
}

// Query runs a CSS selector against the whole document and returns matching
// elements in document order.
func (d *Document) Query(selector string) []*Element {
	return wrapAll(d.gq.Find(selector))
}

// QueryOne returns the first element matching selector, or nil.
func (d *Document) QueryOne(selector string) *Element {
	sel := d.gq.Find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return &Element{sel: sel.First()}
}

func wrapAll(sel *goquery.Selection) []*Element {
	out := make([]*Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, &Element{sel: s})
	})
	return out
}

// NewContainer creates a detached element with the given tag name, not yet
// attached anywhere in the document. Used by the Sibling Merger to build the
// synthetic <div id="readability-content"> root.
func NewContainer(tag string) *Element {
	node := &html.Node{
		Type: html.ElementNode,
		Data: tag,
	}
	return &Element{sel: goquery.NewDocumentFromNode(node).Selection}
}
