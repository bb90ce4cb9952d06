package trie

// link is one child edge: the byte consumed and the node it leads to. Links
// within a node's chunk are kept sorted by label.
type link struct {
	label byte
	child uint32
}

// maxClass is the largest chunk size class. A chunk of class c holds 1<<c
// links; a byte-wise node never has more than 256 children, so class 8 is the
// ceiling.
const maxClass = 8

// chunkAllocator hands out power-of-two-sized link chunks from per-class
// layers and recycles outgrown chunks through a segregated free list.
//
// A chunk handle is its index within its layer in units of the chunk
// capacity, so everything is plain integer indexing with no pointer
// arithmetic. Chunks are never zeroed on reuse; readers only look at the
// first count links of a chunk.
type chunkAllocator struct {
	layers [maxClass + 1][]link
	frees  [maxClass + 1][]uint32
}

// alloc returns a chunk handle of the given class, reusing a recycled chunk
// of that exact size when one is available.
func (c *chunkAllocator) alloc(class uint8) uint32 {
	if n := len(c.frees[class]); n > 0 {
		h := c.frees[class][n-1]
		c.frees[class] = c.frees[class][:n-1]

		return h
	}

	h := uint32(len(c.layers[class]) >> class) //nolint:gosec // layer length is a multiple of the chunk capacity
	c.layers[class] = append(c.layers[class], make([]link, 1<<class)...)

	return h
}

// free returns a chunk to its size class for reuse.
func (c *chunkAllocator) free(class uint8, h uint32) {
	c.frees[class] = append(c.frees[class], h)
}

// chunk returns the full-capacity slice backing the chunk.
func (c *chunkAllocator) chunk(class uint8, h uint32) []link {
	base := int(h) << class

	return c.layers[class][base : base+(1<<class)]
}

// freeCount returns the number of recycled chunks awaiting reuse.
func (c *chunkAllocator) freeCount() int {
	n := 0
	for _, f := range c.frees {
		n += len(f)
	}

	return n
}
