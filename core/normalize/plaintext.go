package normalize

import (
	"github.com/gaurav-prasanna/sitehash/core"
	"github.com/gaurav-prasanna/sitehash/core/textenc"
)

// Plaintext normalizes textual content. A declared charset is re-encoded
// to the canonical UTF-8 target; without one the bytes pass through
// unchanged.
func Plaintext(algorithm string, contents []byte, charset string) (*core.NormalizedContent, error) {
	if charset != "" {
		recoded, err := textenc.Recode(contents, charset)
		if err != nil {
			return nil, err
		}
		contents = recoded
	}
	return digested(algorithm, contents)
}
