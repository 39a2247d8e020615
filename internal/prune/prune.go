// Package prune implements the Selector Pruner (spec §4.2): removing a
// fixed list of non-content selectors and short-text anchor elements.
package prune

import (
	"strings"

	"github.com/kettle-labs/readably/internal/dom"
)

// Prune removes every element matching Selectors, then every <a> whose
// trimmed text length is in the open interval (0, 20). stripUnlikelies gates
// the whole pass per the wired strip_unlikelies flag decision recorded in
// DESIGN.md (spec §9: "Implementations may wire... strip_unlikelies to gate
// §4.2"); when false, Prune is a no-op.
func Prune(doc *dom.Document, stripUnlikelies bool) {
	if !stripUnlikelies {
		return
	}
	removeSelectors(doc)
	removeShortLinks(doc)
}

func removeSelectors(doc *dom.Document) {
	selector := strings.Join(Selectors, ", ")
	matches := doc.Query(selector)
	for i := len(matches) - 1; i >= 0; i-- {
		matches[i].Remove()
	}
}

func removeShortLinks(doc *dom.Document) {
	anchors := doc.Query("a")
	for i := len(anchors) - 1; i >= 0; i-- {
		n := dom.TextLength(anchors[i])
		if n > 0 && n < 20 {
			anchors[i].Remove()
		}
	}
}
