package comments

import (
	"strconv"
	"testing"

	"github.com/kettle-labs/readably/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPrimarySelectorsAndDedup(t *testing.T) {
	html := `<html><body>
		<li class="comment">
			<span class="comment-author">Alice</span>
			<time datetime="2024-02-03T10:00:00Z">Feb 3</time>
			<div class="comment-content">Great article about the topic, thanks for writing it!</div>
		</li>
		<li class="comment">
			<span class="comment-author">Alice</span>
			<time datetime="2024-02-03T10:00:00Z">Feb 3</time>
			<div class="comment-content">Great article about the topic, thanks for writing it!</div>
		</li>
	</body></html>`

	doc, err := dom.Parse(html)
	require.NoError(t, err)

	result := Extract(doc)
	require.Len(t, result, 1)
	assert.Equal(t, "Alice", result[0].Author)
	assert.Equal(t, "2024-02-03T10:00:00Z", result[0].Date)
	assert.Contains(t, result[0].Content, "Great article")
}

func TestExtractDefaultsAnonymousAuthor(t *testing.T) {
	html := `<li class="comment"><div class="comment-content">A comment with no author information attached at all.</div></li>`
	doc, err := dom.Parse(html)
	require.NoError(t, err)

	result := Extract(doc)
	require.Len(t, result, 1)
	assert.Equal(t, "Anonymous", result[0].Author)
}

func TestExtractSkipsShortContent(t *testing.T) {
	html := `<li class="comment"><div class="comment-content">too short</div></li>`
	doc, err := dom.Parse(html)
	require.NoError(t, err)

	assert.Empty(t, Extract(doc))
}

func TestExtractRespectsMaxComments(t *testing.T) {
	html := "<html><body>"
	for i := 0; i < MaxComments+5; i++ {
		html += `<li class="comment"><span class="comment-author">U` + strconv.Itoa(i) + `</span><div class="comment-content">A distinct comment body with enough length to count, number ` + strconv.Itoa(i) + `</div></li>`
	}
	html += "</body></html>"

	doc, err := dom.Parse(html)
	require.NoError(t, err)

	result := Extract(doc)
	assert.Len(t, result, MaxComments)
}
