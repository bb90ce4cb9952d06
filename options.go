package interngo

// Backend selects the deduplication structure behind an Interner. Both
// backends implement identical external behavior.
type Backend uint8

const (
	// BackendHashmap deduplicates through an open-addressing hash index over
	// an append-only arena. Default.
	BackendHashmap Backend = iota
	// BackendTrie deduplicates through a byte-wise trie with a size-classed
	// link allocator: asymptotically fewer allocation events than the hash
	// index, at a higher constant cost per byte.
	BackendTrie
)

type config struct {
	capacity int
	backend  Backend
	hasher   Hasher
	logger   *Logger
}

// Option is a configuration option for New.
type Option func(*config)

// WithCapacity sizes the first text buffer to hold at least n bytes, rounded
// up to the next power of two. Use it when the total interned volume is
// roughly known upfront to avoid early buffer growth.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithBackend selects the deduplication backend.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithHasher sets the hash strategy for BackendHashmap. The default is
// NewMaphashHasher. BackendTrie does not hash and ignores this option.
func WithHasher(h Hasher) Option {
	return func(c *config) {
		c.hasher = h
	}
}

// WithLogger sets the logger. Buffer growth and index rehash events are
// logged at debug level. The default discards all output.
func WithLogger(l *Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
