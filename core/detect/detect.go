// Package detect infers the apparent encoding of a response body,
// independent of what the transport headers declared. The dispatcher uses
// the ASCII verdict to decide between the plaintext and raw-bytes
// fallbacks for unrecognized content types.
package detect

import (
	"strings"

	"github.com/saintfish/chardet"
)

// IsASCII reports whether contents look like plain ASCII text: non-empty,
// every byte below 0x80, and control bytes limited to common whitespace.
func IsASCII(contents []byte) bool {
	if len(contents) == 0 {
		return false
	}
	for _, b := range contents {
		if b >= 0x80 {
			return false
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != '\f' {
			return false
		}
	}
	return true
}

// Apparent returns the lowercase best-guess charset name for the body:
// "ascii" for plain ASCII, a statistically detected charset otherwise,
// or "" when detection fails (typical for binary payloads).
func Apparent(contents []byte) string {
	if IsASCII(contents) {
		return "ascii"
	}
	best, err := chardet.NewTextDetector().DetectBest(contents)
	if err != nil {
		return ""
	}
	return strings.ToLower(best.Charset)
}
