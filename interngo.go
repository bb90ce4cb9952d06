package interngo

import "unsafe"

// ID is a dense identifier for an interned string.
//
// A given Interner issues ids in strict first-occurrence order, never reuses
// or revokes them, and the ids issued so far always form the contiguous range
// [0, n) for n distinct strings seen.
type ID uint32

// Interner canonicalizes strings to dense IDs.
//
// All mutation is single-threaded: no Intern call may run concurrently with
// any other call. Lookup of already-issued ids is safe to run concurrently
// with other Lookups as long as no Intern runs at the same time.
type Interner struct {
	backend backend
}

// backend is the contract shared by the hashmap and trie deduplication
// structures.
type backend interface {
	intern(b []byte) uint32
	get(b []byte) (uint32, bool)
	lookup(id uint32) (string, bool)
	size() int
	stats() Stats
}

// New creates an Interner.
func New(opts ...Option) *Interner {
	cfg := config{logger: NoopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.hasher == nil {
		cfg.hasher = NewMaphashHasher()
	}

	var b backend
	switch cfg.backend {
	case BackendTrie:
		b = newTrieBackend(cfg)
	default:
		b = newHashmapBackend(cfg)
	}

	return &Interner{backend: b}
}

// Intern returns the identifier for s, assigning the next free one on first
// occurrence. Interning content already seen mutates and allocates nothing.
func (in *Interner) Intern(s string) ID {
	return ID(in.backend.intern(stringBytes(s)))
}

// InternBytes is Intern for a byte slice. The bytes are copied on first
// occurrence; the slice is never retained.
func (in *Interner) InternBytes(b []byte) ID {
	return ID(in.backend.intern(b))
}

// Contains reports the identifier assigned to s, if any. It never mutates
// the interner.
func (in *Interner) Contains(s string) (ID, bool) {
	id, ok := in.backend.get(stringBytes(s))

	return ID(id), ok
}

// Lookup resolves id back to its interned text. An id that was not issued by
// this instance yields a *ErrInvalidID; ids from this instance never fail.
func (in *Interner) Lookup(id ID) (string, error) {
	s, ok := in.backend.lookup(uint32(id))
	if !ok {
		return "", &ErrInvalidID{ID: id, Issued: in.Len()}
	}

	return s, nil
}

// MustLookup is Lookup for callers that trust their own ids. It panics on an
// invalid id.
func (in *Interner) MustLookup(id ID) string {
	s, err := in.Lookup(id)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of distinct strings interned so far.
func (in *Interner) Len() int { return in.backend.size() }

// Stats returns storage statistics.
func (in *Interner) Stats() Stats { return in.backend.stats() }

func (in *Interner) String() string { return in.Stats().String() }

// stringBytes reinterprets s as a byte slice without copying. The result is
// read-only and never retained past the call it is passed to.
func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s)) //nolint:gosec // read-only view, not retained
}
