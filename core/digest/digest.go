// Package digest implements the digest engine.
// It wraps a named hash algorithm into a stateless bytes → hex digest
// function, backed by a registry of every algorithm this build supports.
// Digests here detect content changes; they are not integrity protection,
// which is why weak algorithms like md5 and sha1 stay available.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"github.com/gaurav-prasanna/sitehash/core"
)

// registry maps lowercase algorithm names to hash constructors.
// SHAKE algorithms have variable output; the registered constructors pin
// them to 32 and 64 bytes respectively.
var registry = map[string]func() hash.Hash{
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     sha256.New224,
	"sha256":     sha256.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512_224": sha512.New512_224,
	"sha512_256": sha512.New512_256,
	"sha3_224":   sha3.New224,
	"sha3_256":   sha3.New256,
	"sha3_384":   sha3.New384,
	"sha3_512":   sha3.New512,
	"shake_128":  func() hash.Hash { return sha3.NewShake128() },
	"shake_256":  func() hash.Hash { return sha3.NewShake256() },
	"blake2b":    mustKeyless(blake2b.New512),
	"blake2s":    mustKeyless(blake2s.New256),
	"blake3":     func() hash.Hash { return blake3.New(32, nil) },
}

// mustKeyless adapts a keyed-hash constructor to the registry signature.
// The keyless form cannot fail.
func mustKeyless(newHash func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newHash(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

// Available returns the sorted names of all supported algorithms.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether the named algorithm is available.
func Supported(algorithm string) bool {
	_, ok := registry[algorithm]
	return ok
}

// Digest returns the lowercase hex digest of contents under the named
// algorithm. Deterministic: the same input always produces the same output.
func Digest(algorithm string, contents []byte) (string, error) {
	newHash, ok := registry[algorithm]
	if !ok {
		return "", &core.UnsupportedAlgorithmError{Algorithm: algorithm}
	}
	h := newHash()
	h.Write(contents)
	return hex.EncodeToString(h.Sum(nil)), nil
}
