package prune

// Selectors is the fixed non-content selector list from spec §6, bit-exact
// where downstream compatibility matters. Joined with ", " it is a single
// valid CSS selector for one goquery Find call.
var Selectors = []string{
	"header", "nav", "footer", "aside",
	".advertisement", ".sponsored", ".subscribe", ".related", ".breadcrumbs",
	".combx", ".community", ".cover-wrap", ".disqus", ".extra", ".gdpr",
	".legends", ".menu", ".remark", ".replies", ".rss", ".shoutbox",
	".sidebar", ".skyscraper", ".social", ".sponsor", ".supplemental",
	".ad-break", ".agegate", ".pagination", ".pager", ".popup",
	".yom-remote", ".newsletter", ".cookie", ".cookie-banner", ".modal",
	".overlay", ".promo", ".trending", ".signup", ".cta", ".outbrain",
	".taboola", "[data-component='header']", "[data-component='footer']",
}
