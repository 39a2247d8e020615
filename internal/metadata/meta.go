package metadata

import "github.com/kettle-labs/readably/internal/dom"

// Ranked meta-tag selectors from spec §6; order matters, first match wins.
var (
	titleMetaSelectors = []string{
		"meta[property='og:title']",
		"meta[name='twitter:title']",
		"meta[name='title']",
	}

	descriptionMetaSelectors = []string{
		"meta[name='description']",
		"meta[property='og:description']",
		"meta[name='twitter:description']",
	}

	keywordsMetaSelectors = []string{
		"meta[name='keywords']",
		"meta[name='news_keywords']",
		"meta[name='parsely-tags']",
		"meta[name='article:tag']",
	}

	authorMetaSelectors = []string{
		"meta[name='author']",
		"meta[property='article:author']",
		"meta[name='byl']",
		"meta[name='sailthru.author']",
		"meta[name='parsely-author']",
		"meta[property='og:article:author']",
	}

	dateMetaSelectors = []string{
		"meta[property='article:published_time']",
		"meta[name='pubdate']",
		"meta[name='date']",
		"meta[name='parsely-pub-date']",
		"meta[name='DC.date']",
		"meta[itemprop='datePublished']",
	}

	topImageMetaSelectors = []string{
		"meta[property='og:image']",
		"meta[name='twitter:image']",
		"meta[property='og:image:url']",
	}

	topVideoMetaSelectors = []string{
		"meta[property='og:video:url']",
	}
)

// firstMetaContent returns the "content" attribute of the first element
// across selectors (tried in order) that has one, non-empty.
func firstMetaContent(doc *dom.Document, selectors []string) string {
	for _, sel := range selectors {
		if e := doc.QueryOne(sel); e != nil {
			if v, ok := e.Attr("content"); ok && v != "" {
				return v
			}
		}
	}
	return ""
}
