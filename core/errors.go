package core

import "fmt"

// UnsupportedAlgorithmError indicates the requested hash algorithm is not
// available on this platform.
type UnsupportedAlgorithmError struct {
	Algorithm string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported hash algorithm %q", e.Algorithm)
}

// FetchError indicates a transport failure that survived the retry budget.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// EncodingError indicates a body could not be decoded with its declared
// or assumed encoding. Retrying cannot fix a content problem, so this is
// never retried.
type EncodingError struct {
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decoding body as %q: %v", e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// MalformedJSONError indicates content declared as JSON failed to parse.
type MalformedJSONError struct {
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("parsing JSON body: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }
