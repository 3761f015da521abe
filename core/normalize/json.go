package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/sitehash/core"
	"github.com/gaurav-prasanna/sitehash/core/textenc"
)

// JSON normalizes JSON content by re-serializing it deterministically:
// object keys sorted at every nesting level, no inserted whitespace,
// UTF-8 output. Two documents that parse to equal values hash identically
// regardless of key order or formatting.
func JSON(algorithm string, contents []byte, charset string) (*core.NormalizedContent, error) {
	if charset != "" {
		recoded, err := textenc.Recode(contents, charset)
		if err != nil {
			return nil, err
		}
		contents = recoded
	}

	canonical, err := canonicalJSON(contents)
	if err != nil {
		return nil, &core.MalformedJSONError{Err: err}
	}
	return digested(algorithm, canonical)
}

// canonicalJSON parses and re-serializes a JSON document in canonical
// form. Numbers are decoded as json.Number so their literals survive the
// round trip byte-for-byte.
func canonicalJSON(contents []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(contents))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	// Encode appends a newline that is not part of the document.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
