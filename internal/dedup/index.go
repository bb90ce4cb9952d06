// Package dedup implements the deduplication side of the interner: a hash
// index mapping arena-resident content to its identifier, and the dense
// identifier table mapping back.
package dedup

import (
	"bytes"

	"github.com/hupe1980/interngo/internal/arena"
)

// Hasher computes 64-bit content hashes. An implementation must be
// deterministic for the lifetime of the index using it.
type Hasher interface {
	Sum64(b []byte) uint64
}

// minSlots is the initial slot count; always a power of two.
const minSlots = 16

type slot struct {
	hash uint64
	ref  arena.Ref
	id   uint32
	used bool
}

// Index maps content to identifier without owning a second copy of the
// content: each slot stores only the 64-bit hash and an arena Ref, and key
// equality resolves the Ref back through the arena on demand.
//
// Open addressing with linear probing; slots double when the load factor
// reaches 3/4. Entries are never deleted.
type Index struct {
	arena  *arena.Arena
	hasher Hasher
	slots  []slot
	count  int

	// OnRehash, if set, is called after each table growth with the old and
	// new slot counts. Intended for debug logging.
	OnRehash func(oldSlots, newSlots int)
}

// NewIndex creates an index that resolves refs through a.
func NewIndex(a *arena.Arena, h Hasher) *Index {
	return &Index{
		arena:  a,
		hasher: h,
		slots:  make([]slot, minSlots),
	}
}

// Get returns the identifier previously inserted for content equal to b.
// It never mutates the index.
func (x *Index) Get(b []byte) (uint32, bool) {
	hash := x.hasher.Sum64(b)
	mask := uint64(len(x.slots) - 1) //nolint:gosec // slot count is a positive power of two

	for i := hash & mask; ; i = (i + 1) & mask {
		s := &x.slots[i]
		if !s.used {
			return 0, false
		}
		if s.hash == hash && bytes.Equal(x.arena.Bytes(s.ref), b) {
			return s.id, true
		}
	}
}

// Insert records ref as the canonical content for id. The ref must already
// resolve to bytes durably stored in the arena, so the index never holds a
// dangling reference. Content already present must not be inserted again;
// callers Get first.
func (x *Index) Insert(ref arena.Ref, id uint32) {
	if (x.count+1)*4 >= len(x.slots)*3 {
		x.rehash(len(x.slots) * 2)
	}

	x.place(slot{
		hash: x.hasher.Sum64(x.arena.Bytes(ref)),
		ref:  ref,
		id:   id,
		used: true,
	})
	x.count++
}

// Len returns the number of distinct contents indexed.
func (x *Index) Len() int { return x.count }

func (x *Index) place(s slot) {
	mask := uint64(len(x.slots) - 1) //nolint:gosec // slot count is a positive power of two

	for i := s.hash & mask; ; i = (i + 1) & mask {
		if !x.slots[i].used {
			x.slots[i] = s
			return
		}
	}
}

func (x *Index) rehash(size int) {
	old := x.slots
	x.slots = make([]slot, size)

	// Stored hashes make the reinsert cheap; no content is re-read.
	for i := range old {
		if old[i].used {
			x.place(old[i])
		}
	}

	if x.OnRehash != nil {
		x.OnRehash(len(old), size)
	}
}
