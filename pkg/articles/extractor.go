package articles

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/nafamubarokhusni/News-Summary/pkg/lib"
	"github.com/rs/zerolog"
)

const (
	// defaultTitle stands in when no heuristic finds a title.
	defaultTitle = "Article Title"
	// minContentRunes is the shortest body worth summarizing.
	minContentRunes = 50
	// selectorContentRunes is the point below which the selector result is
	// considered a miss and the paragraph fallback runs.
	selectorContentRunes = 100
	// minParagraphRunes filters out link lists and picture captions in the
	// paragraph fallback.
	minParagraphRunes = 20
)

// strippedElements never contain article prose.
const strippedElements = "script, style, nav, header, footer, aside, iframe, noscript"

// titleSelectors in priority order.
var titleSelectors = []string{
	"h1",
	"title",
	".headline",
	".article-title",
	`[class*="title"]`,
	`[class*="headline"]`,
}

// contentSelectors are common article containers; the longest text across
// all of them wins.
var contentSelectors = []string{
	"article",
	".article-content",
	".post-content",
	".entry-content",
	`[class*="article"]`,
	`[class*="content"]`,
	".story-body",
	"main",
}

// Extractor locates the title and readable body of a fetched document.
// A readability pass runs first; selector heuristics and a paragraph
// fallback cover the pages readability chokes on.
type Extractor struct {
	logger *zerolog.Logger
}

func NewExtractor(logger *zerolog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

func (e *Extractor) Extract(doc *Document) (*Content, error) {
	if doc.Kind == KindText {
		return e.extractText(doc)
	}
	return e.extractHTML(doc)
}

// extractText handles documents that arrive as plain text (PDFs, feed
// entries). Normalization and the length gate still apply.
func (e *Extractor) extractText(doc *Document) (*Content, error) {
	body := lib.CollapseWhitespace(doc.Text)
	if utf8.RuneCountInString(body) < minContentRunes {
		return nil, fmt.Errorf("%w: %d usable characters", ErrNoContent, utf8.RuneCountInString(body))
	}

	title := lib.CollapseWhitespace(doc.Title)
	if title == "" {
		title = defaultTitle
	}

	return &Content{Title: title, Body: body, URL: doc.URL}, nil
}

func (e *Extractor) extractHTML(doc *Document) (*Content, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	gq.Find(strippedElements).Remove()

	var title, body string

	if article, err := readability.FromReader(strings.NewReader(doc.HTML), pageURL(doc.URL)); err == nil {
		title = lib.CollapseWhitespace(article.Title)
		body = lib.CollapseWhitespace(article.TextContent)
	} else {
		e.logger.Debug().Err(err).Str("url", doc.URL).Msg("Readability pass failed")
	}

	if utf8.RuneCountInString(body) < selectorContentRunes {
		if selected := longestSelectorText(gq); utf8.RuneCountInString(selected) > utf8.RuneCountInString(body) {
			body = selected
		}
	}
	if utf8.RuneCountInString(body) < selectorContentRunes {
		if paragraphs := joinedParagraphText(gq); utf8.RuneCountInString(paragraphs) > utf8.RuneCountInString(body) {
			body = paragraphs
		}
	}

	if title == "" {
		title = findTitle(gq)
	}

	if utf8.RuneCountInString(body) < minContentRunes {
		return nil, fmt.Errorf("%w: %d usable characters", ErrNoContent, utf8.RuneCountInString(body))
	}

	return &Content{Title: title, Body: body, URL: doc.URL}, nil
}

// findTitle returns the first selector hit with visible text.
func findTitle(gq *goquery.Document) string {
	for _, selector := range titleSelectors {
		if title := lib.CollapseWhitespace(gq.Find(selector).First().Text()); title != "" {
			return title
		}
	}
	return defaultTitle
}

// longestSelectorText scans every content selector and keeps the single
// longest element text found anywhere.
func longestSelectorText(gq *goquery.Document) string {
	var best string
	bestLen := 0

	for _, selector := range contentSelectors {
		gq.Find(selector).Each(func(_ int, s *goquery.Selection) {
			text := lib.CollapseWhitespace(s.Text())
			if n := utf8.RuneCountInString(text); n > bestLen {
				best, bestLen = text, n
			}
		})
	}

	return best
}

// joinedParagraphText is the last resort: all paragraphs of meaningful
// length, joined in document order.
func joinedParagraphText(gq *goquery.Document) string {
	var parts []string

	gq.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := lib.CollapseWhitespace(s.Text())
		if utf8.RuneCountInString(text) > minParagraphRunes {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, " ")
}

// pageURL parses the document URL for readability's relative-link
// resolution. A nil URL is fine, readability treats it as unknown origin.
func pageURL(rawURL string) *url.URL {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return parsed
}
