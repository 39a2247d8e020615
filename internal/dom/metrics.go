package dom

// TextLength returns the rune count of an element's trimmed text.
func TextLength(e *Element) int {
	return len([]rune(e.TrimmedText()))
}

// LinkDensity is the ratio of descendant anchor text length to total text
// length, in [0, 1]; 0 when the element has no text (spec §4.3 step 6).
func LinkDensity(e *Element) float64 {
	total := TextLength(e)
	if total == 0 {
		return 0
	}
	linkLen := 0
	for _, a := range e.Query("a") {
		linkLen += TextLength(a)
	}
	return float64(linkLen) / float64(total)
}

// ContainsInlineMedia reports whether selector "img, picture img" matches a
// descendant (spec §4.4 step 3, the M test).
func ContainsInlineMedia(e *Element) bool {
	return len(e.Query("img, picture img")) > 0
}

// AnchorCount returns the number of descendant <a> elements.
func AnchorCount(e *Element) int {
	return len(e.Query("a"))
}
