package readably_test

import (
	"strings"
	"testing"

	"github.com/kettle-labs/readably"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArticleHTML = `<html><head><title>Test Title</title></head><body>
<header><nav><ul><li><a href="#">Home</a></li><li><a href="#">About</a></li></ul></nav></header>
<main><article><h1>Test Title</h1>
<p>This is a test paragraph with enough text to be considered relevant content by the scoring algorithm. We need to ensure that this paragraph has sufficient length to be scored highly by the content extraction algorithm. The algorithm looks for blocks of text that appear to be the main content of the page, as opposed to navigation, headers, footers, or other ancillary content.</p>
<p>Adding another paragraph increases the content score for this article element, making it more likely to be identified as the main content of the page. This algorithm is designed to extract the primary content from a webpage, ignoring elements that are likely to be navigation, ads, or other non-content features.</p>
</article></main>
<footer><p>Copyright 2025</p></footer>
</body></html>`

func TestExtractReadabilityData(t *testing.T) {
	r, err := readably.New(sampleArticleHTML)
	require.NoError(t, err)

	data, err := r.ExtractReadabilityData(true)
	require.NoError(t, err)

	assert.Equal(t, "Test Title", data.Title)
	assert.NotEmpty(t, data.Content)
	assert.NotEmpty(t, data.Text)
	assert.Greater(t, data.EstimatedReadingTime, 0)
	assert.True(t, strings.HasPrefix(data.Content, `<div id="readability-content"`))
}

func TestScenarioJSONLDWins(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">{"@type":"NewsArticle","headline":"Structured Headline","author":{"name":"Jane Doe"},"datePublished":"2024-01-02T00:00:00Z","keywords":["alpha","beta","gamma"],"image":"https://e.x/img.jpg","description":"d"}</script>
	</head><body><article><p>JSON-LD is preferred when present, and this sentence pads the paragraph out well past two hundred characters so the scorer treats this element as a real candidate worth keeping around for the test.</p></article></body></html>`

	r, err := readably.New(html)
	require.NoError(t, err)
	data, err := r.ExtractReadabilityData(false)
	require.NoError(t, err)

	assert.Equal(t, "Structured Headline", data.Title)
	assert.Equal(t, "Jane Doe", data.Author)
	assert.True(t, strings.HasPrefix(data.DatePublished, "2024-01-02"))
	assert.ElementsMatch(t, []string{"alpha", "beta", "gamma"}, data.Keywords)
	assert.Equal(t, "https://e.x/img.jpg", data.TopImage)
	assert.Contains(t, data.Text, "JSON-LD is preferred when present")
}

func TestScenarioCommentExtraction(t *testing.T) {
	html := `<html><body><article><p>` + strings.Repeat("article body text ", 20) + `</p></article>
		<li class="comment"><span class="comment-author">Alice</span><time datetime="2024-02-03T10:00:00Z">Feb 3</time><div class="comment-content">Great article about the subject matter here.</div></li>
		<li class="comment"><span class="comment-author">Bob</span><time datetime="2024-02-04T11:00:00Z">Feb 4</time><div class="comment-content">I disagree with some of the points raised above.</div></li>
		<li class="comment"><span class="comment-author">Alice</span><time datetime="2024-02-03T10:00:00Z">Feb 3</time><div class="comment-content">Great article about the subject matter here.</div></li>
	</body></html>`

	r, err := readably.New(html)
	require.NoError(t, err)
	data, err := r.ExtractReadabilityData(true)
	require.NoError(t, err)

	require.Len(t, data.Comments, 2)
	assert.Equal(t, "Alice", data.Comments[0].Author)
	assert.Equal(t, "2024-02-03T10:00:00Z", data.Comments[0].Date)
	assert.Contains(t, data.Comments[0].Content, "Great article")
	assert.Equal(t, "Bob", data.Comments[1].Author)
}

func TestNoCandidateReturnsParsingFailed(t *testing.T) {
	r, err := readably.New(`<html><body><nav>too short</nav></body></html>`)
	require.NoError(t, err)

	_, err = r.ExtractReadabilityData(false)
	assert.ErrorIs(t, err, readably.ErrParsingFailed)
}

func TestWithIncludeCommentsFalseSkipsCommentPass(t *testing.T) {
	html := sampleArticleHTML + `<li class="comment"><div class="comment-content">A comment that is long enough to count if extracted.</div></li>`
	r, err := readably.New(html, readably.WithIncludeComments(false))
	require.NoError(t, err)

	data, err := r.ExtractReadabilityData(true)
	require.NoError(t, err)
	assert.Empty(t, data.Comments)
}
