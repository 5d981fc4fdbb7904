package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of the given byte buffer.
// Used to derive the identity fingerprint of an immutable column.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest is a streaming xxHash64 state for fingerprinting composite
// structures, such as a dictionary plus its index array.
type Digest = xxhash.Digest

// NewDigest creates a new streaming fingerprint digest.
func NewDigest() *Digest {
	return xxhash.New()
}
