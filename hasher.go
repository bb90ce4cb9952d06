package interngo

import "hash/maphash"

// Hasher computes 64-bit content hashes for the deduplication index.
//
// The hash strategy is a deliberate, swappable policy: the default trades
// attack resistance for speed, which fits interners trusting their own input
// (compilers, parsers). A Hasher must be deterministic for the lifetime of
// the Interner using it.
type Hasher interface {
	Sum64(b []byte) uint64
}

type maphashHasher struct {
	seed maphash.Seed
}

// NewMaphashHasher returns the default hash strategy, backed by hash/maphash
// with a per-instance random seed. Fast and well distributed, but hash values
// differ between instances and process runs.
func NewMaphashHasher() Hasher {
	return &maphashHasher{seed: maphash.MakeSeed()}
}

func (h *maphashHasher) Sum64(b []byte) uint64 {
	return maphash.Bytes(h.seed, b)
}

// FNV-1a 64-bit parameters, per hash/fnv.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

type fnvHasher struct{}

// NewFNVHasher returns an allocation-free FNV-1a strategy. Unlike the maphash
// default its values are stable across interner instances and process runs.
func NewFNVHasher() Hasher { return fnvHasher{} }

func (fnvHasher) Sum64(b []byte) uint64 {
	h := fnvOffset64
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}

	return h
}
