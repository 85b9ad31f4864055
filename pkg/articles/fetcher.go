package articles

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/mmcdole/gofeed"
	"github.com/nafamubarokhusni/News-Summary/pkg/lib"
	"github.com/rs/zerolog"
)

// minFeedEntryRunes is the point where a feed entry's own text is worth
// summarizing directly instead of following the entry link.
const minFeedEntryRunes = 200

// Fetcher retrieves the document behind a URL. One GET per call, fixed
// timeout, browser-like User-Agent, no retries.
type Fetcher struct {
	client *http.Client
	logger *zerolog.Logger
}

func NewFetcher(config *Config, logger *zerolog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: config.FetchTimeout},
		logger: logger,
	}
}

// ValidateURL accepts absolute http(s) URLs only. No request is made.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return nil
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Document, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	return f.fetch(ctx, rawURL, true)
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string, allowFeed bool) (*Document, error) {
	resp, err := lib.FetchURL(ctx, f.client, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	finalURL := resp.Request.URL.String()

	switch {
	case strings.Contains(contentType, "application/pdf") || strings.HasSuffix(resp.Request.URL.Path, ".pdf"):
		text, err := lib.ExtractTextFromPDF(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("extract pdf text: %w", err)
		}
		return &Document{URL: finalURL, Kind: KindText, Text: text}, nil

	case strings.Contains(contentType, "text/html"),
		strings.Contains(contentType, "application/xhtml+xml"),
		contentType == "": // some sites omit the header, assume HTML
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return &Document{URL: finalURL, Kind: KindHTML, HTML: string(body)}, nil

	case isFeedContentType(contentType):
		if !allowFeed {
			return nil, fmt.Errorf("%w: feed entry links to another feed", ErrUnsupportedContent)
		}
		return f.resolveFeed(ctx, resp)

	default:
		f.logger.Warn().
			Str("url", finalURL).
			Str("content_type", contentType).
			Msg("Unsupported content type")
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContent, contentType)
	}
}

// resolveFeed turns an RSS/Atom response into a document for its newest
// entry. Entries that embed enough text are used as-is; short ones are
// resolved by following the entry link one hop.
func (f *Fetcher) resolveFeed(ctx context.Context, resp *http.Response) (*Document, error) {
	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	if len(feed.Items) == 0 {
		return nil, fmt.Errorf("%w: feed %q has no entries", ErrNoContent, feed.Title)
	}

	item := feed.Items[0]

	body := item.Content
	if body == "" {
		body = item.Description
	}
	text := lib.StripHTML(body)

	if utf8.RuneCountInString(text) >= minFeedEntryRunes || item.Link == "" {
		return &Document{
			URL:   resp.Request.URL.String(),
			Kind:  KindText,
			Text:  text,
			Title: lib.CollapseWhitespace(item.Title),
		}, nil
	}

	f.logger.Debug().
		Str("feed", feed.Title).
		Str("link", item.Link).
		Msg("Feed entry too short, following entry link")

	return f.fetch(ctx, item.Link, false)
}

func isFeedContentType(contentType string) bool {
	for _, t := range []string{"application/rss+xml", "application/atom+xml", "application/xml", "text/xml"} {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}
