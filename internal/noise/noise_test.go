package noise

import (
	"testing"

	"github.com/kettle-labs/readably/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripRemovesShareWidgetsAlways(t *testing.T) {
	doc, err := dom.Parse(`<html><body><div id="c">
		<div class="sharedaddy">share this</div>
		<p>Real article text that should remain untouched by the stripper.</p>
	</div></body></html>`)
	require.NoError(t, err)

	container := doc.QueryOne("#c")
	Strip(container, false)

	assert.False(t, container.QueryOne(".sharedaddy").Exists())
	assert.True(t, container.QueryOne("p").Exists())
}

func TestStripHighLinkDensityGatedByCleanConditionally(t *testing.T) {
	linkHeavy := `<ul id="links">`
	for i := 0; i < 6; i++ {
		linkHeavy += `<li><a href="#">related link text here</a></li>`
	}
	linkHeavy += `</ul>`

	html := `<html><body><div id="c"><p>Main article body text that is long enough to stay.</p>` + linkHeavy + `</div></body></html>`

	doc1, err := dom.Parse(html)
	require.NoError(t, err)
	c1 := doc1.QueryOne("#c")
	Strip(c1, false)
	assert.True(t, c1.QueryOne("#links").Exists())

	doc2, err := dom.Parse(html)
	require.NoError(t, err)
	c2 := doc2.QueryOne("#c")
	Strip(c2, true)
	assert.False(t, c2.QueryOne("#links").Exists())
}

func TestStripNoiseMarkerAndFollowingList(t *testing.T) {
	html := `<html><body><div id="c">
		<p>Main article body text that is long enough to stay in place.</p>
		<h3 id="marker">Related Stories</h3>
		<div id="after" class="high-density"><a href="#">one two three four five six seven</a><a href="#">eight nine ten eleven twelve</a></div>
	</div></body></html>`

	doc, err := dom.Parse(html)
	require.NoError(t, err)
	c := doc.QueryOne("#c")
	Strip(c, true)

	assert.False(t, c.QueryOne("#marker").Exists())
	assert.False(t, c.QueryOne("#after").Exists())
}
