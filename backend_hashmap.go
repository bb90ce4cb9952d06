package interngo

import (
	"github.com/hupe1980/interngo/internal/arena"
	"github.com/hupe1980/interngo/internal/dedup"
)

// hashmapBackend composes the arena, the dedup index and the id table into
// the intern/lookup contract.
type hashmapBackend struct {
	arena *arena.Arena
	index *dedup.Index
	table *dedup.Table
}

func newHashmapBackend(cfg config) *hashmapBackend {
	log := cfg.logger

	a := arena.New(cfg.capacity, arena.WithGrowHook(func(retiredCap, newCap int) {
		log.Debug("arena buffer growth", "retired_cap", retiredCap, "new_cap", newCap)
	}))

	idx := dedup.NewIndex(a, cfg.hasher)
	idx.OnRehash = func(oldSlots, newSlots int) {
		log.Debug("index rehash", "old_slots", oldSlots, "new_slots", newSlots)
	}

	return &hashmapBackend{arena: a, index: idx, table: &dedup.Table{}}
}

func (h *hashmapBackend) intern(b []byte) uint32 {
	if id, ok := h.index.Get(b); ok {
		return id
	}

	// The arena write happens first, so the index never holds a ref to bytes
	// that are not durably stored.
	ref := h.arena.Alloc(b)
	id := uint32(h.table.Len()) //nolint:gosec // identifier space is bounded by uint32
	h.index.Insert(ref, id)
	h.table.Push(ref)

	return id
}

func (h *hashmapBackend) get(b []byte) (uint32, bool) {
	return h.index.Get(b)
}

func (h *hashmapBackend) lookup(id uint32) (string, bool) {
	ref, ok := h.table.Ref(id)
	if !ok {
		return "", false
	}

	return h.arena.View(ref), true
}

func (h *hashmapBackend) size() int { return h.table.Len() }

func (h *hashmapBackend) stats() Stats {
	as := h.arena.Stats()

	return Stats{
		Backend:       BackendHashmap,
		Count:         h.table.Len(),
		Buffers:       as.Buffers,
		BytesReserved: as.BytesReserved,
		BytesUsed:     as.BytesUsed,
		Growths:       as.Growths,
	}
}
