package articles

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestFetcher() *Fetcher {
	logger := zerolog.Nop()
	return NewFetcher(&Config{FetchTimeout: 5 * time.Second}, &logger)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https", url: "https://example.com/story", wantErr: false},
		{name: "http", url: "http://example.com", wantErr: false},
		{name: "ftp scheme", url: "ftp://example.com/file", wantErr: true},
		{name: "javascript scheme", url: "javascript:alert(1)", wantErr: true},
		{name: "demo scheme", url: "demo://sample-news-article", wantErr: true},
		{name: "no scheme", url: "example.com/story", wantErr: true},
		{name: "missing host", url: "https://", wantErr: true},
		{name: "empty", url: "", wantErr: true},
		{name: "garbage", url: "not a url at all", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("error %v is not ErrInvalidURL", err)
			}
		})
	}
}

func TestFetchHTMLDocument(t *testing.T) {
	const page = "<html><body><article><p>The actual story text.</p></article></body></html>"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	doc, err := newTestFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if doc.Kind != KindHTML {
		t.Errorf("Kind = %v, want KindHTML", doc.Kind)
	}
	if doc.HTML != page {
		t.Errorf("HTML = %q, want the served page", doc.HTML)
	}
	if doc.URL == "" {
		t.Error("URL is empty")
	}
}

func TestFetchMissingContentTypeAssumesHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No explicit header; disable sniffing-based defaults.
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte("<p>bare response</p>"))
	}))
	defer srv.Close()

	doc, err := newTestFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if doc.Kind != KindHTML {
		t.Errorf("Kind = %v, want KindHTML", doc.Kind)
	}
}

func TestFetchInvalidURLMakesNoRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	badURL := "ftp://" + strings.TrimPrefix(srv.URL, "http://")

	_, err := newTestFetcher().Fetch(context.Background(), badURL)
	if !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("Fetch() error = %v, want ErrInvalidURL", err)
	}
	if requests != 0 {
		t.Errorf("server saw %d requests, want 0", requests)
	}
}

func TestFetchNon2xxStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway} {
		t.Run(fmt.Sprintf("%d", status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer srv.Close()

			_, err := newTestFetcher().Fetch(context.Background(), srv.URL)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), fmt.Sprintf("%d", status)) {
				t.Errorf("error %q does not mention status %d", err, status)
			}
		})
	}
}

func TestFetchUnsupportedContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))
	defer srv.Close()

	_, err := newTestFetcher().Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrUnsupportedContent) {
		t.Fatalf("Fetch() error = %v, want ErrUnsupportedContent", err)
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	logger := zerolog.Nop()
	fetcher := NewFetcher(&Config{FetchTimeout: 20 * time.Millisecond}, &logger)

	_, err := fetcher.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
}

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <link>https://example.com</link>
    <description>Test feed</description>
    <item>
      <title>Entry headline</title>
      <link>%s</link>
      <description><![CDATA[%s]]></description>
    </item>
  </channel>
</rss>`

func TestFetchFeedWithLongEntryUsedInline(t *testing.T) {
	longEntry := "<p>" + strings.Repeat("A dispatch about the northern rail line expansion. ", 8) + "</p>"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, feedTemplate, "https://example.com/entry", longEntry)
	}))
	defer srv.Close()

	doc, err := newTestFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if doc.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", doc.Kind)
	}
	if doc.Title != "Entry headline" {
		t.Errorf("Title = %q, want %q", doc.Title, "Entry headline")
	}
	if !strings.Contains(doc.Text, "northern rail line expansion") {
		t.Errorf("Text missing entry content, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "<p>") {
		t.Errorf("Text still contains markup: %q", doc.Text)
	}
}

func TestFetchFeedFollowsShortEntryLink(t *testing.T) {
	const article = "<html><body><article><p>The full text behind the feed entry.</p></article></body></html>"

	var entryURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, feedTemplate, entryURL, "<p>Teaser only.</p>")
	})
	mux.HandleFunc("/entry", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(article))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	entryURL = srv.URL + "/entry"

	doc, err := newTestFetcher().Fetch(context.Background(), srv.URL+"/feed")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if doc.Kind != KindHTML {
		t.Errorf("Kind = %v, want KindHTML after following the entry link", doc.Kind)
	}
	if doc.HTML != article {
		t.Errorf("HTML = %q, want the linked article", doc.HTML)
	}
}

func TestFetchFeedEntryLinkingToFeedFails(t *testing.T) {
	var secondFeedURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprintf(w, feedTemplate, secondFeedURL, "<p>Teaser only.</p>")
	})
	mux.HandleFunc("/feed2", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprintf(w, feedTemplate, "https://example.com/x", "<p>Another teaser.</p>")
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	secondFeedURL = srv.URL + "/feed2"

	_, err := newTestFetcher().Fetch(context.Background(), srv.URL+"/feed")
	if !errors.Is(err, ErrUnsupportedContent) {
		t.Fatalf("Fetch() error = %v, want ErrUnsupportedContent", err)
	}
}

func TestFetchEmptyFeed(t *testing.T) {
	const emptyFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Hollow</title><link>https://example.com</link><description>d</description></channel></rss>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(emptyFeed))
	}))
	defer srv.Close()

	_, err := newTestFetcher().Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("Fetch() error = %v, want ErrNoContent", err)
	}
}

func TestFetchBrokenPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("not really a pdf"))
	}))
	defer srv.Close()

	_, err := newTestFetcher().Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for invalid pdf, got nil")
	}
}
