// Package arena provides an append-only byte arena with stable content
// references.
//
// The arena owns an ordered list of buffers. Exactly one buffer is active and
// receives new writes; a full buffer is retired as-is (never copied, never
// shrunk) and retained for the arena's lifetime, so a Ref handed out for a
// written range resolves to the original bytes forever. Written ranges are
// never moved or overwritten.
//
// The arena is strictly single-threaded. Callers needing concurrent access
// must serialize externally.
package arena

import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// DefaultCapacity is the capacity of the first buffer when no hint is given.
const DefaultCapacity = 4096

// Ref is a logical reference to a byte range inside one arena buffer.
//
// It is a (buffer-id, start-offset, length) triple rather than a raw pointer,
// so it carries no ownership and stays valid across buffer growth.
type Ref struct {
	Buffer uint32
	Offset uint32
	Length uint32
}

// Arena is an append-only byte allocator.
type Arena struct {
	retired [][]byte // full buffers, immutable from here on
	active  []byte   // len = bytes written, cap = capacity
	used    uint64   // total bytes written
	grows   uint64   // buffer growth events
	onGrow  func(retiredCap, newCap int)
}

// Option is a configuration option for Arena.
type Option func(*Arena)

// WithGrowHook installs a callback invoked after each buffer growth with the
// retired and new buffer capacities. Intended for debug logging.
func WithGrowHook(fn func(retiredCap, newCap int)) Option {
	return func(a *Arena) {
		a.onGrow = fn
	}
}

// New creates an arena whose first buffer holds at least capacityHint bytes,
// rounded up to the next power of two.
func New(capacityHint int, opts ...Option) *Arena {
	if capacityHint <= 0 {
		capacityHint = DefaultCapacity
	}

	a := &Arena{active: make([]byte, 0, nextPow2(capacityHint))}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Alloc copies b into the arena and returns a stable Ref for it.
//
// When the active buffer cannot hold b it is retired and a new buffer of
// nextPow2(max(cap, len(b))+1) bytes becomes active. The max against the
// incoming length plus the +1 guarantee the new buffer holds b even when b
// exceeds the doubled capacity. Amortized cost is O(1) per byte written.
func (a *Arena) Alloc(b []byte) Ref {
	if cap(a.active)-len(a.active) < len(b) {
		a.grow(len(b))
	}

	off := len(a.active)
	a.active = append(a.active, b...)
	a.used += uint64(len(b))

	return Ref{
		Buffer: uint32(len(a.retired)), //nolint:gosec // buffer count stays far below 2^32
		Offset: uint32(off),            //nolint:gosec // offset bounded by buffer capacity
		Length: uint32(len(b)),         //nolint:gosec // write length bounded by buffer capacity
	}
}

// Reserve ensures the active buffer has room for n more bytes, growing once
// upfront instead of mid-write. Outstanding Refs are unaffected.
func (a *Arena) Reserve(n int) {
	if cap(a.active)-len(a.active) < n {
		a.grow(n)
	}
}

func (a *Arena) grow(need int) {
	old := cap(a.active)
	size := nextPow2(max(old, need) + 1)

	a.retired = append(a.retired, a.active)
	a.active = make([]byte, 0, size)
	a.grows++

	if a.onGrow != nil {
		a.onGrow(old, size)
	}
}

// Bytes resolves ref to the byte range it was issued for. The returned slice
// must be treated as read-only.
//
// Refs are a trusted-caller contract: Bytes panics on a ref that was not
// issued by this arena.
func (a *Arena) Bytes(ref Ref) []byte {
	buf := a.buffer(ref.Buffer)

	start, end := int(ref.Offset), int(ref.Offset)+int(ref.Length)
	if end > len(buf) {
		panic("arena: ref out of range")
	}

	return buf[start:end:end]
}

// View returns the referenced bytes as a string without copying. This is
// sound because written ranges are immutable for the arena's lifetime.
func (a *Arena) View(ref Ref) string {
	b := a.Bytes(ref)
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(&b[0], len(b)) //nolint:gosec // arena bytes are immutable
}

func (a *Arena) buffer(id uint32) []byte {
	switch {
	case int(id) == len(a.retired):
		return a.active
	case int(id) < len(a.retired):
		return a.retired[id]
	default:
		panic("arena: unknown buffer")
	}
}

// Stats tracks arena memory usage.
type Stats struct {
	Buffers       int    // retired buffers plus the active one
	BytesReserved uint64 // total capacity across all buffers
	BytesUsed     uint64 // bytes actually written
	Growths       uint64 // buffer growth events
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() Stats {
	reserved := uint64(cap(a.active))
	for _, b := range a.retired {
		reserved += uint64(cap(b))
	}

	return Stats{
		Buffers:       len(a.retired) + 1,
		BytesReserved: reserved,
		BytesUsed:     a.used,
		Growths:       a.grows,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("Arena{buffers: %d, reserved: %s, used: %s, growths: %d}",
		s.Buffers, humanize.IBytes(s.BytesReserved), humanize.IBytes(s.BytesUsed), s.Growths)
}

// nextPow2 returns the smallest power of two >= n. n must be positive.
func nextPow2(n int) int {
	return 1 << bits.Len(uint(n-1)) //nolint:gosec // n > 0 by contract
}
