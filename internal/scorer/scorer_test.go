package scorer

import (
	"testing"

	"github.com/kettle-labs/readably/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidatePrefersArticleOverDiv(t *testing.T) {
	long := "This is a reasonably long paragraph of article prose, written to exceed the minimum text length threshold, with several commas, clauses, and enough content to score well under the weighted scheme."
	doc, err := dom.Parse(`<html><body>
		<div class="chrome"><p>` + long + `</p></div>
		<article>` + long + `</article>
	</body></html>`)
	require.NoError(t, err)

	top := Candidate(doc, true)
	require.NotNil(t, top)
	assert.Equal(t, "article", top.TagName())
}

func TestCandidateSkipsShortText(t *testing.T) {
	doc, err := dom.Parse(`<html><body><article>too short</article></body></html>`)
	require.NoError(t, err)

	assert.Nil(t, Candidate(doc, true))
}

func TestCandidateNilWhenNoPositiveScore(t *testing.T) {
	long := "word "
	for i := 0; i < 10; i++ {
		long += "word "
	}
	doc, err := dom.Parse(`<html><body><nav>` + long + `</nav></body></html>`)
	require.NoError(t, err)

	assert.Nil(t, Candidate(doc, true))

	// A long-enough div whose class penalty leaves it at 3 - 10 = -7.
	doc, err = dom.Parse(`<html><body><div class="comment">` + long + `</div></body></html>`)
	require.NoError(t, err)

	assert.Nil(t, Candidate(doc, true))
}

func TestScoreWeightClassesToggle(t *testing.T) {
	doc, err := dom.Parse(`<html><body><div class="article-wrap">hello, world, this is text</div></body></html>`)
	require.NoError(t, err)

	e := doc.QueryOne("div")
	text := e.TrimmedText()

	withClasses := Score(e, text, true)
	withoutClasses := Score(e, text, false)
	assert.Greater(t, withClasses, withoutClasses)
}
