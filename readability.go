package readably

import (
	"github.com/kettle-labs/readably/internal/comments"
	"github.com/kettle-labs/readably/internal/dom"
	"github.com/kettle-labs/readably/internal/merge"
	"github.com/kettle-labs/readably/internal/metadata"
	"github.com/kettle-labs/readably/internal/noise"
	"github.com/kettle-labs/readably/internal/prune"
	"github.com/kettle-labs/readably/internal/render"
	"github.com/kettle-labs/readably/internal/scorer"
	"github.com/kettle-labs/readably/internal/visibility"
)

// Readability holds a parsed document and its configuration. New parses and
// performs visibility/role/selector/short-link pruning eagerly; the
// remaining pipeline runs on demand in ExtractReadabilityData.
type Readability struct {
	doc    *dom.Document
	config ExtractionConfig
}

// New parses rawHTML and performs the eager pruning passes (spec §6). It
// returns ErrParsingFailed if the HTML cannot be parsed at all.
func New(rawHTML string, opts ...Option) (*Readability, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if !config.VerboseLogging {
		config.Logger = NoopLogger{}
	}

	doc, err := dom.Parse(rawHTML)
	if err != nil {
		return nil, wrapErr(ErrParsingFailed, "New", err)
	}

	r := &Readability{doc: doc, config: config}

	config.Logger.Debugf("running visibility and role filter")
	visibility.Filter(doc)

	config.Logger.Debugf("running selector pruner")
	prune.Prune(doc, config.Flags.StripUnlikelies)

	return r, nil
}

// ExtractReadabilityData runs the remaining pipeline: metadata and comment
// extraction over the pruned, pre-merge document, then scoring, sibling-merge,
// noise-stripping and rendering (spec §5 ordering). It returns
// ErrParsingFailed if no candidate survives scoring.
func (r *Readability) ExtractReadabilityData(includeComments bool) (*ReadabilityData, error) {
	meta := metadata.Extract(r.doc)
	r.config.Logger.Debugf("extracted metadata: title=%q author=%q", meta.Title, meta.Author)

	var extractedComments []Comment
	if includeComments && r.config.IncludeComments {
		if r.config.CommentExtractor != nil {
			extractedComments = r.config.CommentExtractor(r)
		} else {
			for _, c := range comments.Extract(r.doc) {
				extractedComments = append(extractedComments, Comment{
					Author: c.Author, Date: c.Date, Content: c.Content,
				})
			}
		}
		r.config.Logger.Debugf("extracted %d comments", len(extractedComments))
	}

	top := scorer.Candidate(r.doc, r.config.Flags.WeightClasses)
	if top == nil {
		return nil, wrapErr(ErrParsingFailed, "ExtractReadabilityData", errNoCandidate)
	}

	container := merge.Merge(top)
	noise.Strip(container, r.config.Flags.CleanConditionally)

	rendered := render.RenderWithOptions(container, render.Options{
		NodeIndexes:    r.config.NodeIndexes,
		ContentDigests: r.config.ContentDigests,
	})

	data := &ReadabilityData{
		Title:         meta.Title,
		Description:   meta.Description,
		Author:        meta.Author,
		DatePublished: meta.DatePublished,
		Keywords:      meta.Keywords,
		TopImage:      meta.TopImage,
		TopVideo:      meta.TopVideo,
		Content:       rendered.Content,
		Text:          rendered.Text,
		Comments:      extractedComments,
	}
	if rendered.HasReadingTime {
		data.EstimatedReadingTime = rendered.EstimatedReadingTime
	}
	if data.TopImage == "" {
		data.TopImage = fallbackTopImageFromContainer(container)
	}

	return data, nil
}

// Document exposes the underlying parsed document to a custom
// CommentExtractor.
func (r *Readability) Document() *dom.Document {
	return r.doc
}

// fallbackTopImageFromContainer rescues an image that only became visible
// after the sibling merge (spec §8 Scenario F: a hero image's own caption is
// too short to survive independently, but the merge keeps it for media
// reasons).
func fallbackTopImageFromContainer(container *dom.Element) string {
	if container == nil {
		return ""
	}
	for _, img := range container.Query("img") {
		if src, ok := img.Attr("src"); ok && src != "" {
			return src
		}
	}
	return ""
}
