// Package merge implements the Sibling Merger (spec §4.4): wrapping the top
// candidate in a synthetic container and reattaching siblings that look
// like they belong to the same article.
package merge

import "github.com/kettle-labs/readably/internal/dom"

// ContainerID is the id of the synthetic wrapper; part of the external
// interface (spec §6) as a stable hook for downstream consumers.
const ContainerID = "readability-content"

// MinSiblingTextLength is the L threshold from spec §4.4 step 3.
const MinSiblingTextLength = 25

// MaxSiblingLinkDensity is the D threshold from spec §4.4 step 3.
const MaxSiblingLinkDensity = 0.2

// Merge wraps top in a fresh <div id="readability-content">, then appends
// siblings of top's original parent that pass the text-length-or-media and
// link-density test, in document order.
func Merge(top *dom.Element) *dom.Element {
	container := dom.NewContainer("div")
	container.SetAttr("id", ContainerID)

	parent := top.Parent()
	var siblings []*dom.Element
	if parent != nil {
		siblings = parent.Children()
	}

	container.AppendChild(top)

	for _, s := range siblings {
		if s.SameNode(top) {
			continue
		}
		if qualifies(s) {
			container.AppendChild(s)
		}
	}

	return container
}

func qualifies(s *dom.Element) bool {
	l := dom.TextLength(s)
	m := dom.ContainsInlineMedia(s)
	d := dom.LinkDensity(s)

	lengthOrMedia := l >= MinSiblingTextLength || m
	densityOK := d < MaxSiblingLinkDensity || m

	return lengthOrMedia && densityOK
}
