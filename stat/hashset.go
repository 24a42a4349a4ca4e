package stat

import "github.com/cespare/xxhash/v2"

// hashSet is a hash-bucketed exact-match set, grounded on
// internal/collision/tracker.go's hash -> exact-match pattern: a 64-bit
// xxhash of the value's byte representation buckets candidates, and an
// explicit per-bucket scan resolves collisions exactly. This keeps the
// distinct-value counter O(1) amortized per value even for wide types
// (i128, i256) where a full key comparison is costlier than a hash compare.
type hashSet[T comparable] struct {
	buckets map[uint64][]T
	count   int
}

func newHashSet[T comparable]() *hashSet[T] {
	return &hashSet[T]{buckets: make(map[uint64][]T)}
}

// add records v (hashed via its byte form in h) if not already present.
func (s *hashSet[T]) add(h uint64, v T) {
	bucket := s.buckets[h]
	for _, existing := range bucket {
		if existing == v {
			return
		}
	}
	s.buckets[h] = append(bucket, v)
	s.count++
}

func (s *hashSet[T]) Count() int { return s.count }

// hashBytes hashes a byte representation of a value with xxhash, the same
// hash the teacher's collision tracker uses for O(1) lookups.
func hashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
