// Package dedup tracks sequence fingerprints to drop duplicate read pairs.
package dedup

import "github.com/cespare/xxhash/v2"

// Fingerprint maps a sequence to a 64-bit value. It must be deterministic.
// Distinct sequences that collide are treated as duplicates.
type Fingerprint func(seq string) uint64

// XXHash is the default Fingerprint.
func XXHash(seq string) uint64 {
	return xxhash.Sum64String(seq)
}

// Set holds fingerprints of sequences seen during a single run.
// It is not safe for concurrent use.
type Set struct {
	hash Fingerprint
	seen map[uint64]struct{}
}

// NewSet returns an empty Set. A nil hash selects XXHash.
func NewSet(hash Fingerprint) *Set {
	if hash == nil {
		hash = XXHash
	}
	return &Set{hash: hash, seen: make(map[uint64]struct{})}
}

// Seen reports whether seq was already recorded. Unseen sequences are
// recorded before returning false.
func (s *Set) Seen(seq string) bool {
	h := s.hash(seq)
	if _, found := s.seen[h]; found {
		return true
	}
	s.seen[h] = struct{}{}
	return false
}

// Len returns the number of distinct fingerprints recorded.
func (s *Set) Len() int {
	return len(s.seen)
}
