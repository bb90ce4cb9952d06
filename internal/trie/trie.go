// Package trie implements a byte-wise trie interner.
//
// The trie subsumes both the deduplication index and the identifier table:
// interning walks the trie one byte at a time, terminal nodes carry the
// assigned identifier, and the interned text itself lives in an append-only
// arena shared by all entries. Child links are stored in power-of-two-sized
// chunks managed by a segregated free list (see chunks.go), so the number of
// allocation events per node grows logarithmically with its fan-out instead
// of linearly with inserts. The tradeoff against the hash index is higher
// constant cost per byte walked.
//
// Like the arena, the trie is strictly single-threaded.
package trie

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/interngo/internal/arena"
)

// node is a trie node. Nodes live in Trie.nodes and are addressed by integer
// index; index 0 is reserved as the nil sentinel so a zero link means "no
// child".
type node struct {
	id    int32  // identifier terminating at this node, -1 if none
	count uint16 // number of children
	class uint8  // size class of the link chunk (capacity 1 << class)
	chunk uint32 // chunk handle within its size-class layer
}

// Trie is a byte-wise trie interner.
type Trie struct {
	// root is a preallocated 256-way fan-out for the first byte, avoiding a
	// chunk lookup at the top level. rootID terminates the empty string.
	root   [256]uint32
	rootID int32

	nodes []node
	links chunkAllocator
	text  *arena.Arena
	ids   []arena.Ref
}

// New creates a trie whose text buffer holds at least capacityHint bytes.
// Arena options apply to the shared text buffer.
func New(capacityHint int, opts ...arena.Option) *Trie {
	return &Trie{
		rootID: -1,
		nodes:  make([]node, 1), // index 0 is the nil sentinel
		text:   arena.New(capacityHint, opts...),
	}
}

// Intern returns the identifier for b, assigning the next free one on first
// occurrence. Interning content already present mutates nothing.
func (t *Trie) Intern(b []byte) uint32 {
	if len(b) == 0 {
		if t.rootID < 0 {
			t.rootID = int32(t.push(b)) //nolint:gosec // identifier space is bounded by int32 here
		}

		return uint32(t.rootID)
	}

	ni := t.root[b[0]]
	if ni == 0 {
		ni = t.newNode()
		t.root[b[0]] = ni
	}

	for _, label := range b[1:] {
		child := t.findChild(ni, label)
		if child == 0 {
			child = t.newNode()
			t.addChild(ni, label, child)
		}
		ni = child
	}

	if id := t.nodes[ni].id; id >= 0 {
		return uint32(id)
	}

	id := t.push(b)
	t.nodes[ni].id = int32(id) //nolint:gosec // identifier space is bounded by int32 here

	return id
}

// Get returns the identifier for b without mutating the trie.
func (t *Trie) Get(b []byte) (uint32, bool) {
	if len(b) == 0 {
		if t.rootID < 0 {
			return 0, false
		}

		return uint32(t.rootID), true
	}

	ni := t.root[b[0]]
	for _, label := range b[1:] {
		if ni == 0 {
			return 0, false
		}
		ni = t.findChild(ni, label)
	}

	if ni == 0 || t.nodes[ni].id < 0 {
		return 0, false
	}

	return uint32(t.nodes[ni].id), true
}

// Lookup resolves id back to its interned text.
func (t *Trie) Lookup(id uint32) (string, bool) {
	if int(id) >= len(t.ids) {
		return "", false
	}

	return t.text.View(t.ids[id]), true
}

// Len returns the number of identifiers issued so far.
func (t *Trie) Len() int { return len(t.ids) }

// push stores b in the text arena and registers the next identifier for it.
func (t *Trie) push(b []byte) uint32 {
	ref := t.text.Alloc(b)
	t.ids = append(t.ids, ref)

	return uint32(len(t.ids) - 1) //nolint:gosec // identifier space is bounded by uint32
}

func (t *Trie) newNode() uint32 {
	t.nodes = append(t.nodes, node{id: -1})

	return uint32(len(t.nodes) - 1) //nolint:gosec // node count stays far below 2^32
}

// findChild returns the node reached from ni over label, or 0. Children are
// sorted by label, so this is a binary search over at most 256 links.
func (t *Trie) findChild(ni uint32, label byte) uint32 {
	n := t.nodes[ni]
	if n.count == 0 {
		return 0
	}

	ls := t.links.chunk(n.class, n.chunk)[:n.count]
	i := sort.Search(len(ls), func(i int) bool { return ls[i].label >= label })
	if i < len(ls) && ls[i].label == label {
		return ls[i].child
	}

	return 0
}

// addChild inserts a link from ni to child over label, keeping the node's
// links sorted. A full chunk is replaced by one of the next size class and
// recycled through the free list.
func (t *Trie) addChild(ni uint32, label byte, child uint32) {
	n := t.nodes[ni]

	switch {
	case n.count == 0:
		n.class = 0
		n.chunk = t.links.alloc(0)
	case int(n.count) == 1<<n.class:
		grown := t.links.alloc(n.class + 1)
		copy(t.links.chunk(n.class+1, grown), t.links.chunk(n.class, n.chunk)[:n.count])
		t.links.free(n.class, n.chunk)
		n.class++
		n.chunk = grown
	}

	ls := t.links.chunk(n.class, n.chunk)[:int(n.count)+1]
	i := sort.Search(int(n.count), func(i int) bool { return ls[i].label >= label })
	copy(ls[i+1:], ls[i:n.count])
	ls[i] = link{label: label, child: child}

	n.count++
	t.nodes[ni] = n
}

// Stats tracks trie storage usage.
type Stats struct {
	Nodes      int // nodes excluding the nil sentinel
	Links      int // live links across all nodes
	FreeChunks int // recycled chunks awaiting reuse
	Text       arena.Stats
}

// Stats returns the current trie statistics.
func (t *Trie) Stats() Stats {
	live := 0
	for i := 1; i < len(t.nodes); i++ {
		live += int(t.nodes[i].count)
	}

	return Stats{
		Nodes:      len(t.nodes) - 1,
		Links:      live,
		FreeChunks: t.links.freeCount(),
		Text:       t.text.Stats(),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("Trie{nodes: %s, links: %s, free chunks: %d, text: %s}",
		humanize.Comma(int64(s.Nodes)), humanize.Comma(int64(s.Links)), s.FreeChunks, s.Text)
}
