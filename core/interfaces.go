// Package core defines the pipeline types and interfaces for sitehash.
// Each stage of the pipeline (fetch, normalize, render, digest) is a
// clean, testable interface.
package core

import "context"

// FetchOutcome holds the response body and metadata from one fetch.
// It is constructed once per fetch and never mutated afterwards.
type FetchOutcome struct {
	Status      int
	FinalURL    string // URL after following the full redirect chain
	IsRedirect  bool   // true iff any hop used a "resource moved" status
	ContentType string // lowercase MIME type, parameters stripped
	Encoding    string // charset declared by the Content-Type header, may be empty
	Body        []byte
}

// NormalizedContent is the output of a content normalizer.
// Hash is always computed from exactly the bytes in Contents, never from
// the raw body the normalizer started with.
type NormalizedContent struct {
	Hash     string // lowercase hex digest
	Contents []byte // normalized bytes the digest was computed over
}

// URLResult is the public outcome of hashing one URL.
type URLResult struct {
	Status      int
	VisitedURL  string
	IsRedirect  bool
	ContentType string
	Hash        string
	Contents    []byte
}

// Fetcher retrieves a URL and classifies the response.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchOutcome, error)
}

// RenderSession is a reusable headless-browser context that loads an HTML
// document, executes its scripts, and returns the post-render DOM
// serialization. Sessions start lazily and must be released with Shutdown.
// A session is not safe for concurrent use.
type RenderSession interface {
	EnsureStarted() error
	RenderHTML(ctx context.Context, html string) (string, error)
	Shutdown()
}
