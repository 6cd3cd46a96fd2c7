package header

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/yxdb/errs"
)

// CalgaryHeaderSize is the fixed size of the Calgary container's prelude.
// Per open question O3, only IndexPosition's offset is known from the
// source; the rest is treated as an opaque, round-tripped byte region.
const CalgaryHeaderSize = 64

// CalgaryHeader is the Calgary container's fixed-width prelude: an opaque
// block with IndexPosition (the absolute byte offset of the trailing block
// index) at a known offset.
type CalgaryHeader struct {
	IndexPosition uint32
	Opaque        [CalgaryHeaderSize - 4]byte
}

// Bytes serializes h into exactly CalgaryHeaderSize bytes, little-endian.
func (h CalgaryHeader) Bytes() []byte {
	b := make([]byte, CalgaryHeaderSize)
	binary.LittleEndian.PutUint32(b[0:4], h.IndexPosition)
	copy(b[4:], h.Opaque[:])

	return b
}

// ParseCalgaryHeader decodes a CalgaryHeader from exactly CalgaryHeaderSize
// bytes.
func ParseCalgaryHeader(data []byte) (CalgaryHeader, error) {
	if len(data) != CalgaryHeaderSize {
		return CalgaryHeader{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderLen, len(data), CalgaryHeaderSize)
	}

	var h CalgaryHeader
	h.IndexPosition = binary.LittleEndian.Uint32(data[0:4])
	copy(h.Opaque[:], data[4:])

	return h, nil
}
