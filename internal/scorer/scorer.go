// Package scorer implements the Candidate Scorer (spec §4.3): a weighted
// tag/class/density score over block candidate elements.
package scorer

import (
	"math"
	"strings"

	"github.com/kettle-labs/readably/internal/dom"
)

// MinTextLength is the minimum text length (spec §4.3 step 1) for an
// element to be scored at all.
const MinTextLength = 25

var tagDeltas = map[string]float64{
	"article": 15,
	"main":    12,
	"section": 4,
	"p":       5,
	"div":     3,
	"ul":      -3,
	"ol":      -3,
	"nav":     -6,
	"h1":      -1,
	"h2":      -1,
	"h3":      -1,
	"h4":      -1,
	"h5":      -1,
	"h6":      -1,
}

// Candidate returns the highest-scoring element among article, div, section,
// p descendants, or nil if no candidate scores above 0 (spec §4.3).
func Candidate(doc *dom.Document, weightClasses bool) *dom.Element {
	var best *dom.Element
	bestScore := 0.0

	for _, e := range doc.Query("article, div, section, p") {
		text := e.TrimmedText()
		if len([]rune(text)) < MinTextLength {
			continue
		}

		score := Score(e, text, weightClasses)
		if score > bestScore {
			bestScore = score
			best = e
		}
	}

	if best == nil {
		return nil
	}
	return best
}

// Score computes the content score for a single element per spec §4.3
// steps 2-6. text is passed in to avoid re-walking the subtree.
func Score(e *dom.Element, text string, weightClasses bool) float64 {
	score := tagDeltas[e.TagName()]

	if weightClasses {
		class := strings.ToLower(e.ClassName())
		if strings.Contains(class, "article") {
			score += 10
		}
		if strings.Contains(class, "comment") {
			score -= 10
		}
	}

	score += float64(strings.Count(text, ","))

	textLen := len([]rune(text))
	lengthBoost := math.Min(math.Floor(float64(textLen)/100), 3)
	score += lengthBoost

	density := dom.LinkDensity(e)
	score *= 1 - density

	return score
}
