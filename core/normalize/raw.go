package normalize

import "github.com/gaurav-prasanna/sitehash/core"

// Raw handles bytes in an unrecognized format or encoding: the digest is
// computed over the body exactly as received, with no decoding.
func Raw(algorithm string, contents []byte) (*core.NormalizedContent, error) {
	return digested(algorithm, contents)
}
