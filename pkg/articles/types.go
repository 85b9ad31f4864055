package articles

// Content is the extracted article. Produced by the extractor from one
// fetch, consumed once by the summarizer, then discarded. Nothing stores it.
type Content struct {
	Title string
	Body  string
	URL   string
}

// Summary is the result of a full pipeline run.
type Summary struct {
	Title   string
	Summary string
	URL     string
}

// DocumentKind says what the fetcher managed to pull down.
type DocumentKind int

const (
	// KindHTML carries raw markup for the extractor's heuristics.
	KindHTML DocumentKind = iota
	// KindText carries pre-extracted plain text (PDF documents, feed
	// entries) that skips the HTML pass.
	KindText
)

// Document is the fetched payload before extraction.
type Document struct {
	URL  string
	Kind DocumentKind
	// HTML is set for KindHTML documents.
	HTML string
	// Text is set for KindText documents.
	Text string
	// Title carries a source-provided title (feed entries); usually empty.
	Title string
}
