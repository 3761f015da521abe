// Package textenc converts response bodies between their declared charset
// and the canonical UTF-8 target that all normalized content is encoded in.
package textenc

import (
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/gaurav-prasanna/sitehash/core"
)

// Canonical is the target encoding for all normalized content.
const Canonical = "utf-8"

// Recode decodes contents from the named charset and returns the same text
// encoded as UTF-8. Charset names follow the WHATWG encoding labels
// (utf-8, utf-16le, iso-8859-1, shift_jis, ...). An unknown charset is an
// EncodingError; undecodable byte sequences are substituted with U+FFFD by
// the underlying decoder rather than failing.
func Recode(contents []byte, charset string) ([]byte, error) {
	if charset == Canonical {
		return contents, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, &core.EncodingError{Encoding: charset, Err: err}
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), contents)
	if err != nil {
		return nil, &core.EncodingError{Encoding: charset, Err: err}
	}
	return out, nil
}
