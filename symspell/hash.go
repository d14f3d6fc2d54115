package symspell

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a string to a 64-bit-space-but-32-bit-returned hash used as a
// DeleteIndex bucket key. Implementations need only be deterministic and
// collision-resistant enough that distinct delete variants rarely share a
// bucket; the engine never assumes a specific hash family.
type Hasher interface {
	Hash(s string) uint32
}

// FNVHasher is the classic delete-index hash: an FNV-1a hash with the low
// bits overwritten by a clamped rune-length mask, folded down into a table
// no larger than compactMask allows. It is kept as a zero-dependency option
// and for byte-for-byte bucket compatibility with indexes built against the
// original reference hash.
type FNVHasher struct {
	compactMask uint32
}

// NewFNVHasher builds an FNVHasher for the given compactLevel (0-16, smaller
// values produce a larger, less-compacted table).
func NewFNVHasher(compactLevel uint8) *FNVHasher {
	if compactLevel > 16 {
		compactLevel = 16
	}
	mask := uint32(math.MaxUint32>>(3+compactLevel)) << 2
	return &FNVHasher{compactMask: mask}
}

// Hash implements Hasher.
func (h *FNVHasher) Hash(s string) uint32 {
	lenRunes := 0
	for range s {
		lenRunes++
	}
	lenMask := lenRunes
	if lenMask > 3 {
		lenMask = 3
	}

	var hash uint32 = 2166136261
	for _, r := range s {
		hash ^= uint32(r)
		hash *= 16777619
	}

	hash &= h.compactMask
	hash |= uint32(lenMask)
	return hash
}

// XXHasher is the default Hasher, backed by github.com/cespare/xxhash/v2.
// It distributes delete variants across buckets better than the hand-rolled
// FNV-1a scheme above and is a common choice for string-keyed indexes
// across the wider Go ecosystem.
type XXHasher struct{}

// Hash implements Hasher.
func (XXHasher) Hash(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}
