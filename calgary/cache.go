package calgary

import (
	"fmt"
	"sync"

	"github.com/arloliu/yxdb/internal/compress"
)

// Cache is a process-local, LZ4-backed decode cache keyed by block byte
// range. Calgary's random-access model means the same vector range can be
// read repeatedly within one run (e.g. a caller re-scanning overlapping
// windows); caching the decoded vector bytes in LZ4-compressed form trades a
// little CPU for avoiding a second disk read plus re-validation, while
// keeping the cache's own memory footprint small. This is purely a runtime
// optimization — it has no effect on the on-disk format.
type Cache struct {
	mu    sync.Mutex
	codec compress.Codec
	data  map[[2]uint32][]byte
}

// NewCache creates an empty decode cache.
func NewCache() *Cache {
	return &Cache{codec: compress.NewLZ4Codec(), data: make(map[[2]uint32][]byte)}
}

// Get returns the cached, decompressed bytes for range [from, to), if
// present.
func (c *Cache) Get(from, to uint32) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	compressed, ok := c.data[[2]uint32{from, to}]
	if !ok {
		return nil, false
	}

	raw, err := c.codec.Decompress(compressed, int(to-from))
	if err != nil {
		return nil, false
	}

	return raw, true
}

// Put stores payload (the decoded bytes for range [from, to)) in the cache,
// compressed with LZ4.
func (c *Cache) Put(from, to uint32, payload []byte) error {
	compressed, err := c.codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("caching calgary vector: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[[2]uint32{from, to}] = compressed

	return nil
}
