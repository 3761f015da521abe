// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests with a bounded retry budget for transport
// failures and classifies the response: final URL, redirect flag, declared
// content type and charset.
package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/gaurav-prasanna/sitehash/core"
	"github.com/gaurav-prasanna/sitehash/logger"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultRetries    = 3
	defaultRetryDelay = 500 * time.Millisecond
	defaultUserAgent  = "sitehash/1.0 (https://github.com/gaurav-prasanna/sitehash)"

	// fallbackContentType applies when the server sends no Content-Type.
	// https://tools.ietf.org/html/rfc7231#section-3.1.1.5
	fallbackContentType = "application/octet-stream"
)

// movedStatuses are the redirect statuses that mean the resource lives at
// a different URI. 303 switches the request method instead of relocating
// the resource, so it does not count.
var movedStatuses = map[int]bool{
	http.StatusMovedPermanently:  true, // 301
	http.StatusFound:             true, // 302
	http.StatusTemporaryRedirect: true, // 307
	http.StatusPermanentRedirect: true, // 308
}

// HTTPFetcher fetches web resources via HTTP.
// The zero values of the exported fields select sensible defaults.
type HTTPFetcher struct {
	Timeout    time.Duration // per-attempt timeout
	Retries    int           // retry budget after the first attempt
	RetryDelay time.Duration // base delay, doubled per retry
	Transport  http.RoundTripper
}

// New creates an HTTPFetcher with the default timeout and retry budget.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		Timeout:    defaultTimeout,
		Retries:    defaultRetries,
		RetryDelay: defaultRetryDelay,
	}
}

// Fetch retrieves the given URL, retrying transport failures until the
// budget is exhausted. Redirects are followed transparently; HTTP error
// statuses are not errors, since error pages have hashable content too.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*core.FetchOutcome, error) {
	attempts := f.Retries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := f.RetryDelay << (attempt - 2)
			logger.Warn("fetch %s failed (%v), retry %d/%d in %s",
				rawURL, lastErr, attempt-1, attempts-1, delay)
			select {
			case <-ctx.Done():
				return nil, &core.FetchError{URL: rawURL, Attempts: attempt - 1, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}

		outcome, err := f.attempt(ctx, rawURL)
		if err == nil {
			return outcome, nil
		}
		lastErr = err
	}

	return nil, &core.FetchError{URL: rawURL, Attempts: attempts, Err: lastErr}
}

// attempt performs a single GET, recording the status of every redirect
// hop along the way.
func (f *HTTPFetcher) attempt(ctx context.Context, rawURL string) (*core.FetchOutcome, error) {
	var hops []int
	client := &http.Client{
		Transport: f.Transport,
		Timeout:   f.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if req.Response != nil {
				hops = append(hops, req.Response.StatusCode)
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	contentType, charset := splitContentType(resp.Header.Get("Content-Type"))

	return &core.FetchOutcome{
		Status:      resp.StatusCode,
		FinalURL:    resp.Request.URL.String(),
		IsRedirect:  wasMoved(hops),
		ContentType: contentType,
		Encoding:    charset,
		Body:        body,
	}, nil
}

// wasMoved reports whether any hop in the redirect chain carried a
// "resource moved" status.
func wasMoved(hops []int) bool {
	for _, status := range hops {
		if movedStatuses[status] {
			return true
		}
	}
	return false
}

// splitContentType separates a Content-Type header into its lowercase
// media type and declared charset. Parameters other than charset are
// dropped; a missing header falls back to application/octet-stream.
func splitContentType(header string) (contentType, charset string) {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallbackContentType, ""
	}
	mediatype, params, err := mime.ParseMediaType(header)
	if err != nil {
		// Sloppy headers still carry a usable media type before the ";".
		mediatype, _, _ = strings.Cut(header, ";")
		return strings.ToLower(strings.TrimSpace(mediatype)), ""
	}
	return mediatype, strings.ToLower(params["charset"])
}
