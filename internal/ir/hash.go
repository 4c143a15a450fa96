package ir

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"
)

// DomainSourceHash separates content hashes of fault-tree source text
// from any other hash domain this module might grow later. The null
// byte prevents domain/data boundary ambiguity.
const DomainSourceHash = "sfta/source/v1"

// SourceHash computes a stable content hash of fault-tree source text,
// used as the cache key for internal/store. Source is NFC-normalised
// first so two byte-for-byte-different encodings of the same text hash
// identically.
func SourceHash(source string) string {
	normalised := norm.NFC.String(source)
	h := sha256.New()
	h.Write([]byte(DomainSourceHash))
	h.Write([]byte{0x00})
	h.Write([]byte(normalised))
	return hex.EncodeToString(h.Sum(nil))
}
