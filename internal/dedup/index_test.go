package dedup

import (
	"fmt"
	"hash/maphash"
	"testing"

	"github.com/hupe1980/interngo/internal/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHasher struct {
	seed maphash.Seed
}

func (h *testHasher) Sum64(b []byte) uint64 {
	return maphash.Bytes(h.seed, b)
}

func newTestIndex() (*Index, *arena.Arena) {
	a := arena.New(64)
	return NewIndex(a, &testHasher{seed: maphash.MakeSeed()}), a
}

func TestIndex_GetMiss(t *testing.T) {
	x, _ := newTestIndex()

	_, ok := x.Get([]byte("missing"))
	require.False(t, ok)
	require.Equal(t, 0, x.Len())
}

func TestIndex_InsertGet(t *testing.T) {
	x, a := newTestIndex()

	ref := a.Alloc([]byte("foo"))
	x.Insert(ref, 0)

	id, ok := x.Get([]byte("foo"))
	require.True(t, ok)
	require.Equal(t, uint32(0), id)

	// Equality is by content, not by slice identity.
	id, ok = x.Get([]byte{'f', 'o', 'o'})
	require.True(t, ok)
	require.Equal(t, uint32(0), id)

	_, ok = x.Get([]byte("fo"))
	require.False(t, ok)
}

func TestIndex_EmptyContent(t *testing.T) {
	x, a := newTestIndex()

	ref := a.Alloc(nil)
	x.Insert(ref, 0)

	id, ok := x.Get(nil)
	require.True(t, ok)
	require.Equal(t, uint32(0), id)

	id, ok = x.Get([]byte{})
	require.True(t, ok)
	require.Equal(t, uint32(0), id)
}

func TestIndex_RehashKeepsEntries(t *testing.T) {
	x, a := newTestIndex()

	var rehashes int
	x.OnRehash = func(oldSlots, newSlots int) {
		assert.Equal(t, oldSlots*2, newSlots)
		rehashes++
	}

	const n = 500
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("key-%04d", i)
		ref := a.Alloc([]byte(key))
		x.Insert(ref, uint32(i))
	}

	require.Equal(t, n, x.Len())
	require.Greater(t, rehashes, 0, "500 inserts must outgrow the initial table")

	for i := 0; i < n; i++ {
		id, ok := x.Get([]byte(fmt.Sprintf("key-%04d", i)))
		require.True(t, ok, "key %d lost in rehash", i)
		require.Equal(t, uint32(i), id)
	}
}

func TestTable_PushGet(t *testing.T) {
	a := arena.New(64)
	tbl := &Table{}

	r0 := a.Alloc([]byte("zero"))
	r1 := a.Alloc([]byte("one"))

	require.Equal(t, uint32(0), tbl.Push(r0))
	require.Equal(t, uint32(1), tbl.Push(r1))
	require.Equal(t, 2, tbl.Len())

	require.Equal(t, r0, tbl.Get(0))
	require.Equal(t, r1, tbl.Get(1))

	ref, ok := tbl.Ref(1)
	require.True(t, ok)
	require.Equal(t, r1, ref)

	_, ok = tbl.Ref(2)
	require.False(t, ok)

	require.Panics(t, func() { tbl.Get(2) })
}
