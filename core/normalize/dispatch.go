// Package normalize implements the content normalizers.
// Each handler maps (raw bytes, declared encoding) to the canonical byte
// form its digest is computed over, so that semantically equivalent
// responses hash identically.
package normalize

import (
	"github.com/gaurav-prasanna/sitehash/core"
	"github.com/gaurav-prasanna/sitehash/core/digest"
)

// Kind identifies the handler family for a response body.
type Kind int

const (
	KindRaw Kind = iota
	KindPlaintext
	KindJSON
	KindHTML
)

// Select picks the handler family for a declared content type.
// Unrecognized types with an ASCII-looking body fall back to the plaintext
// handler; many textual types have no dedicated handler but are still
// printable. Everything else is digested as raw bytes.
func Select(contentType, apparentEncoding string) Kind {
	switch contentType {
	case "application/json":
		return KindJSON
	case "text/html":
		return KindHTML
	case "text/plain":
		return KindPlaintext
	}
	if apparentEncoding == "ascii" {
		return KindPlaintext
	}
	return KindRaw
}

// digested pairs normalized contents with their digest.
func digested(algorithm string, contents []byte) (*core.NormalizedContent, error) {
	sum, err := digest.Digest(algorithm, contents)
	if err != nil {
		return nil, err
	}
	return &core.NormalizedContent{Hash: sum, Contents: contents}, nil
}
