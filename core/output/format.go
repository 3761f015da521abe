// Package output formats URL results for the terminal, either as
// human-readable text or as a compact JSON array.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gaurav-prasanna/sitehash/core"
)

// JSONResult is the JSON shape for one URL. The normalized contents are
// deliberately excluded: they are raw bytes and not guaranteed to be
// serializable as text.
type JSONResult struct {
	ContentType  string `json:"content_type"`
	ContentsHash string `json:"contents_hash"`
	IsRedirected bool   `json:"is_redirected"`
	RequestedURL string `json:"requested_url"`
	RetrievedURL string `json:"retrieved_url"`
	StatusCode   int    `json:"status_code"`
}

// NewJSONResult pairs a result with the URL the user originally asked for.
func NewJSONResult(requestedURL string, res *core.URLResult) JSONResult {
	return JSONResult{
		ContentType:  res.ContentType,
		ContentsHash: res.Hash,
		IsRedirected: res.IsRedirect,
		RequestedURL: requestedURL,
		RetrievedURL: res.VisitedURL,
		StatusCode:   res.Status,
	}
}

// Options control which optional fields the human format includes.
type Options struct {
	Algorithm    string
	ShowContent  bool
	ShowRedirect bool
}

// WriteHuman writes one result in the human-readable format.
func WriteHuman(w io.Writer, requestedURL string, res *core.URLResult, opts Options) {
	fmt.Fprintf(w, "Results for %s:\n", requestedURL)
	fmt.Fprintf(w, "  Retrieved URL - '%s'\n", res.VisitedURL)
	fmt.Fprintf(w, "  Status code - '%d'\n", res.Status)
	fmt.Fprintf(w, "  Content type - '%s'\n", res.ContentType)
	if opts.ShowRedirect {
		fmt.Fprintf(w, "  Redirect - %t\n", res.IsRedirect)
	}
	fmt.Fprintf(w, "  Hash (%s) of contents - %s\n", opts.Algorithm, res.Hash)
	if opts.ShowContent {
		fmt.Fprintf(w, "\nContents:\n%s\n", res.Contents)
	}
	fmt.Fprintln(w)
}

// WriteJSON writes all results as one compact JSON array.
func WriteJSON(w io.Writer, results []JSONResult) error {
	if results == nil {
		results = []JSONResult{}
	}
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
