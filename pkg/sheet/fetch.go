package sheet

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher downloads a CSV export.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher builds a resty client bounded by timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1").
		SetHeader("User-Agent", "Insekta-Dashboard/1.0")

	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: upstream status %d", ErrFetch, resp.StatusCode())
	}

	// a private sheet answers 200 with the Google sign-in page
	body := resp.Body()
	if strings.Contains(resp.Header().Get("Content-Type"), "text/html") || looksLikeHTML(body) {
		return nil, fmt.Errorf("%w: received HTML instead of CSV", ErrFetch)
	}

	return body, nil
}

func looksLikeHTML(body []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(body))
	if len(head) > 64 {
		head = head[:64]
	}
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}
