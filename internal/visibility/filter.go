// Package visibility implements the Visibility & Role Filter (spec §4.1):
// removing elements the user would never see before any scoring happens.
package visibility

import (
	"strings"

	"github.com/kettle-labs/readably/internal/dom"
)

// chromeRoles are removed outright regardless of other attributes.
var chromeRoles = map[string]bool{
	"navigation":    true,
	"menubar":       true,
	"complementary": true,
	"dialog":        true,
	"alertdialog":   true,
}

// hiddenRoles are additionally removed by the visibility pass, alongside
// style/attribute hiding (spec §4.1 lists navigation, menu, complementary
// here). Only "menu" is not already in chromeRoles.
var hiddenRoles = map[string]bool{
	"navigation":    true,
	"menu":          true,
	"complementary": true,
}

// Filter removes role-chrome elements, then visibility-hidden elements, in
// that order (spec §4.1: "Order: role-removal, then visibility-removal").
func Filter(doc *dom.Document) {
	removeByRole(doc, chromeRoles)
	removeHidden(doc)
}

func removeByRole(doc *dom.Document, roles map[string]bool) {
	var toRemove []*dom.Element
	for _, e := range doc.Query("*") {
		role, ok := e.Attr("role")
		if !ok {
			continue
		}
		if roles[strings.ToLower(strings.TrimSpace(role))] {
			toRemove = append(toRemove, e)
		}
	}
	for i := len(toRemove) - 1; i >= 0; i-- {
		toRemove[i].Remove()
	}
}

func removeHidden(doc *dom.Document) {
	var toRemove []*dom.Element
	for _, e := range doc.Query("*") {
		if isHidden(e) {
			toRemove = append(toRemove, e)
		}
	}
	for i := len(toRemove) - 1; i >= 0; i-- {
		toRemove[i].Remove()
	}
}

// isHidden implements the four visibility predicates from spec §4.1 plus
// the narrower hiddenRoles set.
func isHidden(e *dom.Element) bool {
	if _, ok := e.Attr("hidden"); ok {
		return true
	}
	if style, ok := e.Attr("style"); ok {
		s := strings.ToLower(style)
		s = strings.ReplaceAll(s, " ", "")
		if strings.Contains(s, "display:none") || strings.Contains(s, "visibility:hidden") {
			return true
		}
	}
	if aria, ok := e.Attr("aria-hidden"); ok && strings.EqualFold(strings.TrimSpace(aria), "true") {
		return true
	}
	if role, ok := e.Attr("role"); ok && hiddenRoles[strings.ToLower(strings.TrimSpace(role))] {
		return true
	}
	return false
}
