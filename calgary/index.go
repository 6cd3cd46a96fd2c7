// Package calgary implements the Calgary container (component H): an
// alternative outer layout sharing the field/record/schema codecs with
// YXDB, but with explicit random-accessible blocks (one u32 offset table
// entry per block) instead of a compressed block stream, and records
// grouped into vectors rather than a concatenated stream.
package calgary

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/yxdb/errs"
)

// Index is the Calgary trailing block index: one u32 LE absolute byte
// offset per block.
type Index []uint32

// Encode renders idx as a sequence of u32 LE offsets (no leading count —
// the count is implicit in the trailer's length, recovered at
// IndexPosition).
func (idx Index) Encode() []byte {
	out := make([]byte, 4*len(idx))
	for i, off := range idx {
		binary.LittleEndian.PutUint32(out[4*i:4*i+4], off)
	}

	return out
}

// DecodeIndex parses a Calgary block index from the trailer bytes starting
// at the header's IndexPosition through EOF.
func DecodeIndex(raw []byte) (Index, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: trailer length %d is not a multiple of 4", errs.ErrIndexCountMismatch, len(raw))
	}

	count := len(raw) / 4
	idx := make(Index, count)
	for i := range idx {
		idx[i] = binary.LittleEndian.Uint32(raw[4*i : 4*i+4])
	}

	for i := 1; i < len(idx); i++ {
		if idx[i] <= idx[i-1] {
			return nil, fmt.Errorf("%w: offset[%d]=%d <= offset[%d]=%d", errs.ErrNonMonotoneIndex, i, idx[i], i-1, idx[i-1])
		}
	}

	return idx, nil
}

// Ranges pairs consecutive offsets into half-open [from, to) byte ranges,
// one per block; the final block's range ends at indexPosition.
func (idx Index) Ranges(indexPosition uint32) [][2]uint32 {
	ranges := make([][2]uint32, len(idx))
	for i, off := range idx {
		end := indexPosition
		if i+1 < len(idx) {
			end = idx[i+1]
		}
		ranges[i] = [2]uint32{off, end}
	}

	return ranges
}
