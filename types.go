// Package readably extracts the primary article — content, plain text,
// metadata, reading time, and optionally comments — from a raw HTML
// document.
package readably

// Comment is a single reader comment (spec §3, §4.7).
type Comment struct {
	Author  string `json:"author"`
	Date    string `json:"date,omitempty"`
	Content string `json:"content"`
}

// CommentExtractor lets a caller override the built-in comment extractor
// with one tailored to a specific site's comment markup.
type CommentExtractor func(html *Readability) []Comment

// ReadabilityData is the output payload (spec §3). Every field but Title is
// optional; a zero value means "not found," not "found and empty."
type ReadabilityData struct {
	Title                string    `json:"title"`
	Description          string    `json:"description,omitempty"`
	Author               string    `json:"author,omitempty"`
	DatePublished        string    `json:"date_published,omitempty"`
	Keywords             []string  `json:"keywords,omitempty"`
	TopImage             string    `json:"top_image,omitempty"`
	TopVideo             string    `json:"top_video,omitempty"`
	Content              string    `json:"content,omitempty"`
	Text                 string    `json:"text,omitempty"`
	EstimatedReadingTime int       `json:"estimated_reading_time,omitempty"`
	Comments             []Comment `json:"comments,omitempty"`
}

// Flags are the three independently toggleable pipeline behaviors from
// spec §3: all default to enabled.
type Flags struct {
	StripUnlikelies    bool
	WeightClasses      bool
	CleanConditionally bool
}

// DefaultFlags returns all three flags enabled, matching spec §3's default.
func DefaultFlags() Flags {
	return Flags{StripUnlikelies: true, WeightClasses: true, CleanConditionally: true}
}

// ExtractionConfig is the immutable configuration an extraction runs with
// (spec §3).
type ExtractionConfig struct {
	Flags            Flags
	VerboseLogging   bool
	CommentExtractor CommentExtractor
	IncludeComments  bool
	NodeIndexes      bool
	ContentDigests   bool
	Logger           Logger
}

// DefaultConfig returns the spec's documented defaults: all flags enabled,
// logging off, built-in comment extractor, comments included, no
// supplemented block annotations.
func DefaultConfig() ExtractionConfig {
	return ExtractionConfig{
		Flags:           DefaultFlags(),
		VerboseLogging:  false,
		IncludeComments: true,
		Logger:          NoopLogger{},
	}
}

// Option configures an ExtractionConfig. Follows the functional-options
// pattern used throughout this codebase.
type Option func(*ExtractionConfig)

// WithFlags overrides all three pipeline flags at once.
func WithFlags(flags Flags) Option {
	return func(c *ExtractionConfig) { c.Flags = flags }
}

// WithStripUnlikelies toggles the Selector Pruner pass (fixed selector list
// and short links). The Visibility & Role Filter always runs.
func WithStripUnlikelies(enable bool) Option {
	return func(c *ExtractionConfig) { c.Flags.StripUnlikelies = enable }
}

// WithWeightClasses toggles class-name-based scoring bonuses/penalties.
func WithWeightClasses(enable bool) Option {
	return func(c *ExtractionConfig) { c.Flags.WeightClasses = enable }
}

// WithCleanConditionally toggles the high-link-density and noise-marker
// noise-stripper passes.
func WithCleanConditionally(enable bool) Option {
	return func(c *ExtractionConfig) { c.Flags.CleanConditionally = enable }
}

// WithVerboseLogging enables diagnostic logging through the configured
// Logger (default log/slog-backed when none is supplied).
func WithVerboseLogging(enable bool) Option {
	return func(c *ExtractionConfig) {
		c.VerboseLogging = enable
		if !enable {
			return
		}
		if _, isNoop := c.Logger.(NoopLogger); c.Logger == nil || isNoop {
			c.Logger = newSlogLogger()
		}
	}
}

// WithLogger installs a custom Logger sink, overriding the default.
func WithLogger(l Logger) Option {
	return func(c *ExtractionConfig) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithCommentExtractor overrides the built-in Comment Extractor.
func WithCommentExtractor(fn CommentExtractor) Option {
	return func(c *ExtractionConfig) { c.CommentExtractor = fn }
}

// WithIncludeComments toggles whether ExtractReadabilityData runs the
// comment pass at all.
func WithIncludeComments(include bool) Option {
	return func(c *ExtractionConfig) { c.IncludeComments = include }
}

// WithNodeIndexes tags each rendered block element with a stable
// data-node-index attribute so a caller can correlate text back to source
// elements (spec §13). Off by default.
func WithNodeIndexes(enable bool) Option {
	return func(c *ExtractionConfig) { c.NodeIndexes = enable }
}

// WithContentDigests tags each rendered block element with a
// data-content-digest (SHA-256 of its trimmed text) for downstream
// change-detection (spec §13). Off by default.
func WithContentDigests(enable bool) Option {
	return func(c *ExtractionConfig) { c.ContentDigests = enable }
}
