package interngo

import (
	"github.com/hupe1980/interngo/internal/arena"
	"github.com/hupe1980/interngo/internal/trie"
)

// trieBackend adapts the byte-wise trie, which subsumes index and id table
// in one structure, to the backend contract.
type trieBackend struct {
	trie *trie.Trie
}

func newTrieBackend(cfg config) *trieBackend {
	log := cfg.logger

	t := trie.New(cfg.capacity, arena.WithGrowHook(func(retiredCap, newCap int) {
		log.Debug("text buffer growth", "retired_cap", retiredCap, "new_cap", newCap)
	}))

	return &trieBackend{trie: t}
}

func (t *trieBackend) intern(b []byte) uint32 {
	return t.trie.Intern(b)
}

func (t *trieBackend) get(b []byte) (uint32, bool) {
	return t.trie.Get(b)
}

func (t *trieBackend) lookup(id uint32) (string, bool) {
	return t.trie.Lookup(id)
}

func (t *trieBackend) size() int { return t.trie.Len() }

func (t *trieBackend) stats() Stats {
	ts := t.trie.Stats()

	return Stats{
		Backend:       BackendTrie,
		Count:         t.trie.Len(),
		Buffers:       ts.Text.Buffers,
		BytesReserved: ts.Text.BytesReserved,
		BytesUsed:     ts.Text.BytesUsed,
		Growths:       ts.Text.Growths,
		Nodes:         ts.Nodes,
		Links:         ts.Links,
		FreeChunks:    ts.FreeChunks,
	}
}
