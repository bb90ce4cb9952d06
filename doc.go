// Package interngo provides a fast string interner for Go.
//
// Interning canonicalizes repeated text values into a dense set of unique
// entries, each addressable by a compact opaque identifier, so equality
// testing and storage become O(1) and allocation-cheap. Typical consumers are
// compilers, parsers, and symbol tables that see the same identifiers
// thousands of times.
//
// # Quick Start
//
//	in := interngo.New()
//
//	foo := in.Intern("foo") // 0
//	bar := in.Intern("bar") // 1
//	in.Intern("foo")        // 0 again, no allocation
//
//	s, _ := in.Lookup(foo) // "foo"
//	_ = s
//
// Identifiers are issued in strict first-occurrence order and always form the
// contiguous range [0, n) for n distinct strings, so they double as dense
// slice indexes in caller-side tables.
//
// # Backends
//
// Two deduplication backends implement identical external behavior:
//
//   - BackendHashmap (default): an open-addressing hash index over an
//     append-only arena. The index stores only (hash, content reference)
//     pairs and resolves content through the arena on compare, so interned
//     text is owned exactly once.
//   - BackendTrie: a byte-wise trie with a size-classed link allocator.
//     It performs asymptotically fewer allocation events per node at a higher
//     constant cost per byte walked.
//
//	in := interngo.New(
//	    interngo.WithBackend(interngo.BackendTrie),
//	    interngo.WithCapacity(1 << 20),
//	)
//
// # Hash Strategy
//
// The hash used by BackendHashmap is a pluggable policy. The default is
// backed by hash/maphash with a per-interner random seed: fast, but not
// attack resistant. Use WithHasher to swap it.
//
// # Concurrency
//
// An Interner is strictly single-threaded for mutation. Concurrent Lookup
// calls are safe only while no Intern call is running; callers needing
// concurrent writes must serialize externally.
package interngo
