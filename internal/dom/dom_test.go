package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndQuery(t *testing.T) {
	doc, err := Parse(`<html><body><div id="a" class="x"><p>hello <a href="#">world</a></p></div></body></html>`)
	require.NoError(t, err)

	div := doc.QueryOne("#a")
	require.NotNil(t, div)
	assert.Equal(t, "div", div.TagName())
	assert.Equal(t, "x", div.ClassName())
	assert.Equal(t, "hello world", div.TrimmedText())

	paras := doc.Query("p")
	assert.Len(t, paras, 1)
}

func TestElementMutation(t *testing.T) {
	doc, err := Parse(`<html><body><div id="root"><p id="keep">keep</p><p id="drop">drop</p></div></body></html>`)
	require.NoError(t, err)

	drop := doc.QueryOne("#drop")
	require.NotNil(t, drop)
	drop.Remove()

	assert.False(t, doc.QueryOne("#drop").Exists())
	assert.True(t, doc.QueryOne("#keep").Exists())
}

func TestSameNode(t *testing.T) {
	doc, err := Parse(`<html><body><div id="root"><p>a</p><p>b</p></div></body></html>`)
	require.NoError(t, err)

	root := doc.QueryOne("#root")
	children := root.Children()
	require.Len(t, children, 2)

	first := doc.QueryOne("p")
	assert.True(t, first.SameNode(children[0]))
	assert.False(t, first.SameNode(children[1]))
}

func TestNewContainer(t *testing.T) {
	container := NewContainer("div")
	container.SetAttr("id", "readability-content")
	assert.Equal(t, "div", container.TagName())
	assert.Equal(t, "readability-content", container.ID())
}
