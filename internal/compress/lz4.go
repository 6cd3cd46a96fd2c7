// Package compress provides a small Codec abstraction used by domain
// components that want general-purpose compression layered on top of the
// YXDB/Calgary wire formats themselves (which use LZF, see internal/lzf).
// Grounded on the teacher's compress package shape (Compressor/Decompressor/
// Codec interfaces, a pooled lz4.Compressor).
package compress

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

// Codec compresses and decompresses opaque byte payloads. Decompress takes
// the exact decompressed size up front — callers that don't know it ahead
// of time aren't a use case this package needs to serve.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte, size int) ([]byte, error)
}

var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// LZ4Codec is a Codec backed by pierrec/lz4/v4's raw block API.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates a new LZ4-backed codec.
func NewLZ4Codec() LZ4Codec { return LZ4Codec{} }

// Compress compresses data using LZ4.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses data using LZ4 into a buffer of exactly size
// bytes — the caller already knows the decompressed length (e.g. from a
// byte range it recorded at compress time), so there's no need to guess
// and grow.
func (c LZ4Codec) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
