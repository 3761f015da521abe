// Package hasher ties the pipeline together: fetch → dispatch to a
// normalizer → digest → assemble the per-URL result.
// A URLHasher is created once per run and reused across URLs so the
// render session only launches one browser.
package hasher

import (
	"context"

	"github.com/gaurav-prasanna/sitehash/core"
	"github.com/gaurav-prasanna/sitehash/core/detect"
	"github.com/gaurav-prasanna/sitehash/core/digest"
	"github.com/gaurav-prasanna/sitehash/core/fetch"
	"github.com/gaurav-prasanna/sitehash/core/normalize"
	"github.com/gaurav-prasanna/sitehash/core/render"
)

// URLHasher hashes the normalized content of URLs.
type URLHasher struct {
	algorithm string
	fetcher   core.Fetcher
	session   core.RenderSession
}

// Option customizes a URLHasher.
type Option func(*URLHasher)

// WithFetcher replaces the default HTTP fetcher.
func WithFetcher(f core.Fetcher) Option {
	return func(h *URLHasher) { h.fetcher = f }
}

// WithRenderSession replaces the default headless-browser session.
func WithRenderSession(s core.RenderSession) Option {
	return func(h *URLHasher) { h.session = s }
}

// New creates a URLHasher for the named digest algorithm. The algorithm
// must be one reported by digest.Available.
func New(algorithm string, opts ...Option) (*URLHasher, error) {
	if !digest.Supported(algorithm) {
		return nil, &core.UnsupportedAlgorithmError{Algorithm: algorithm}
	}
	h := &URLHasher{
		algorithm: algorithm,
		fetcher:   fetch.New(),
		session:   render.NewSession(nil),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Close releases the render session. Safe to call when no HTML was ever
// processed.
func (h *URLHasher) Close() {
	h.session.Shutdown()
}

// HashURL fetches the URL, normalizes the body according to its declared
// content type, and returns the digest paired with the fetch metadata.
func (h *URLHasher) HashURL(ctx context.Context, rawURL string) (*core.URLResult, error) {
	outcome, err := h.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	processed, err := h.process(ctx, outcome)
	if err != nil {
		return nil, err
	}

	return &core.URLResult{
		Status:      outcome.Status,
		VisitedURL:  outcome.FinalURL,
		IsRedirect:  outcome.IsRedirect,
		ContentType: outcome.ContentType,
		Hash:        processed.Hash,
		Contents:    processed.Contents,
	}, nil
}

// process dispatches the body to the normalizer for its content family.
// Every body is handled by exactly one normalizer.
func (h *URLHasher) process(ctx context.Context, outcome *core.FetchOutcome) (*core.NormalizedContent, error) {
	switch normalize.Select(outcome.ContentType, detect.Apparent(outcome.Body)) {
	case normalize.KindJSON:
		return normalize.JSON(h.algorithm, outcome.Body, outcome.Encoding)
	case normalize.KindHTML:
		return normalize.HTML(ctx, h.session, h.algorithm, outcome.Body, outcome.Encoding)
	case normalize.KindPlaintext:
		return normalize.Plaintext(h.algorithm, outcome.Body, outcome.Encoding)
	default:
		return normalize.Raw(h.algorithm, outcome.Body)
	}
}
