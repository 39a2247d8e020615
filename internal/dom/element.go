package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Element wraps a single-node goquery selection. The tree is changed only
// through AppendChild and Remove; SetAttr and AddClass change attributes;
// every other method is a pure read.
type Element struct {
	sel *goquery.Selection
}

// Goquery exposes the underlying selection for the rare case (structured
// data, regex-based matching) where a package must read the raw node tree.
func (e *Element) Goquery() *goquery.Selection {
	if e == nil {
		return nil
	}
	return e.sel
}

// TagName returns the lowercased tag name, or "" for a nil/empty element.
func (e *Element) TagName() string {
	if e == nil || e.sel == nil || e.sel.Length() == 0 {
		return ""
	}
	return strings.ToLower(e.sel.Get(0).Data)
}

// Attr returns an attribute value and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.sel == nil {
		return "", false
	}
	return e.sel.Attr(name)
}

// AttrOr returns an attribute value or a fallback.
func (e *Element) AttrOr(name, fallback string) string {
	if e == nil || e.sel == nil {
		return fallback
	}
	return e.sel.AttrOr(name, fallback)
}

// SetAttr sets an attribute on the element.
func (e *Element) SetAttr(name, value string) {
	if e == nil || e.sel == nil {
		return
	}
	e.sel.SetAttr(name, value)
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return e.AttrOr("id", "")
}

// ClassName returns the element's raw class attribute string.
func (e *Element) ClassName() string {
	return e.AttrOr("class", "")
}

// Text returns the concatenated descendant text content.
func (e *Element) Text() string {
	if e == nil || e.sel == nil {
		return ""
	}
	return e.sel.Text()
}

// TrimmedText returns Text with leading/trailing whitespace removed.
func (e *Element) TrimmedText() string {
	return strings.TrimSpace(e.Text())
}

// OuterHTML serializes the element and its subtree.
func (e *Element) OuterHTML() string {
	if e == nil || e.sel == nil || e.sel.Length() == 0 {
		return ""
	}
	out, err := goquery.OuterHtml(e.sel)
	if err != nil {
		return ""
	}
	return out
}

// Children returns the element's direct element children in document order.
func (e *Element) Children() []*Element {
	if e == nil || e.sel == nil {
		return nil
	}
	return wrapAll(e.sel.Children())
}

// Parent returns the element's parent, or nil if it has none.
func (e *Element) Parent() *Element {
	if e == nil || e.sel == nil {
		return nil
	}
	p := e.sel.Parent()
	if p.Length() == 0 {
		return nil
	}
	return &Element{sel: p}
}

// NextSibling returns the next sibling element, or nil.
func (e *Element) NextSibling() *Element {
	if e == nil || e.sel == nil {
		return nil
	}
	n := e.sel.Next()
	if n.Length() == 0 {
		return nil
	}
	return &Element{sel: n}
}

// Query runs a CSS selector scoped to this element's descendants.
func (e *Element) Query(selector string) []*Element {
	if e == nil || e.sel == nil {
		return nil
	}
	return wrapAll(e.sel.Find(selector))
}

// QueryOne returns the first descendant matching selector, or nil.
func (e *Element) QueryOne(selector string) *Element {
	if e == nil || e.sel == nil {
		return nil
	}
	sel := e.sel.Find(selector)
	if sel.Length() == 0 {
		return nil
	}
	return &Element{sel: sel.First()}
}

// Is reports whether the element itself matches selector.
func (e *Element) Is(selector string) bool {
	if e == nil || e.sel == nil {
		return false
	}
	return e.sel.Is(selector)
}

// AppendChild appends child to e, detaching child from wherever it was.
func (e *Element) AppendChild(child *Element) {
	if e == nil || e.sel == nil || child == nil || child.sel == nil {
		return
	}
	e.sel.AppendSelection(child.sel)
}

// Remove detaches the element from the document.
func (e *Element) Remove() {
	if e == nil || e.sel == nil {
		return
	}
	e.sel.Remove()
}

// AddClass adds a class to the element.
func (e *Element) AddClass(class string) {
	if e == nil || e.sel == nil {
		return
	}
	e.sel.AddClass(class)
}

// Exists reports whether the element wraps a real node.
func (e *Element) Exists() bool {
	return e != nil && e.sel != nil && e.sel.Length() > 0
}

// SameNode reports whether e and other wrap the same underlying DOM node.
// Element values are created fresh by every accessor (Children, Query, ...),
// so pointer identity on *Element never holds; this is the correct
// equality check.
func (e *Element) SameNode(other *Element) bool {
	if e == nil || other == nil || e.sel == nil || other.sel == nil {
		return false
	}
	if e.sel.Length() == 0 || other.sel.Length() == 0 {
		return false
	}
	return e.sel.Get(0) == other.sel.Get(0)
}
