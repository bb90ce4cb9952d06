package dedup

import "github.com/hupe1980/interngo/internal/arena"

// Table is the dense identifier table: position i holds the content ref for
// identifier i, in strict first-occurrence order.
type Table struct {
	refs []arena.Ref
}

// Push appends ref and returns its identifier, which always equals the table
// length before the push.
func (t *Table) Push(ref arena.Ref) uint32 {
	id := uint32(len(t.refs)) //nolint:gosec // identifier space is bounded by uint32
	t.refs = append(t.refs, ref)

	return id
}

// Get returns the ref for id. Passing an id that was never issued is a
// contract violation and panics; untrusted input goes through Ref instead.
func (t *Table) Get(id uint32) arena.Ref {
	return t.refs[id]
}

// Ref is the non-panicking form of Get.
func (t *Table) Ref(id uint32) (arena.Ref, bool) {
	if int(id) >= len(t.refs) {
		return arena.Ref{}, false
	}

	return t.refs[id], true
}

// Len returns the number of identifiers issued so far.
func (t *Table) Len() int { return len(t.refs) }
