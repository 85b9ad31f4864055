package lib

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ledongthuc/pdf"
)

// BrowserUserAgent mirrors a desktop Chrome agent. Several news sites serve
// bot-labeled clients a consent wall instead of the article.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// FetchURL issues a single GET with a browser-like User-Agent. The timeout
// lives on the passed client. The caller owns the response body.
func FetchURL(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", BrowserUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	return resp, nil
}

// ExtractTextFromPDF reads the whole document and returns its plain text.
func ExtractTextFromPDF(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("create pdf reader: %w", err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("get plain text: %w", err)
	}

	textBytes, err := io.ReadAll(plainText)
	if err != nil {
		return "", fmt.Errorf("read plain text: %w", err)
	}

	return string(textBytes), nil
}
