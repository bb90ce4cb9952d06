package interngo

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats describes an Interner's storage usage.
//
// Nodes, Links and FreeChunks are populated by BackendTrie only.
type Stats struct {
	Backend       Backend
	Count         int    // distinct strings interned
	Buffers       int    // text buffers (retired + active)
	BytesReserved uint64 // total text buffer capacity
	BytesUsed     uint64 // interned bytes stored
	Growths       uint64 // text buffer growth events

	Nodes      int // trie nodes
	Links      int // live trie links
	FreeChunks int // recycled link chunks awaiting reuse
}

func (s Stats) String() string {
	base := fmt.Sprintf("Interner{count: %s, buffers: %d, reserved: %s, used: %s",
		humanize.Comma(int64(s.Count)), s.Buffers,
		humanize.IBytes(s.BytesReserved), humanize.IBytes(s.BytesUsed))

	if s.Backend == BackendTrie {
		return fmt.Sprintf("%s, nodes: %s, links: %s, free chunks: %d}",
			base, humanize.Comma(int64(s.Nodes)), humanize.Comma(int64(s.Links)), s.FreeChunks)
	}

	return base + "}"
}
