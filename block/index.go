package block

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/yxdb/errs"
)

// Index is the trailing block index: one absolute byte offset per block,
// identifying each block's first byte (its length prefix). Offsets are
// strictly increasing.
type Index []uint64

// Encode renders idx as: a u32 LE count followed by count u64 LE offsets.
func (idx Index) Encode() []byte {
	out := make([]byte, 4+8*len(idx))
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(idx))) //nolint:gosec
	for i, off := range idx {
		binary.LittleEndian.PutUint64(out[4+8*i:4+8*i+8], off)
	}

	return out
}

// DecodeIndex parses a block index from the trailer bytes starting at the
// header's recordBlockIndexPos through EOF.
func DecodeIndex(raw []byte) (Index, error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("%w: need 4-byte count, have %d bytes", errs.ErrIndexTruncated, len(raw))
	}
	count := int(binary.LittleEndian.Uint32(raw[0:4]))

	want := 4 + 8*count
	if len(raw) != want {
		return nil, fmt.Errorf("%w: count %d implies %d bytes, trailer has %d", errs.ErrIndexCountMismatch, count, want, len(raw))
	}

	idx := make(Index, count)
	for i := range idx {
		idx[i] = binary.LittleEndian.Uint64(raw[4+8*i : 4+8*i+8])
	}

	for i := 1; i < len(idx); i++ {
		if idx[i] <= idx[i-1] {
			return nil, fmt.Errorf("%w: offset[%d]=%d <= offset[%d]=%d", errs.ErrNonMonotoneIndex, i, idx[i], i-1, idx[i-1])
		}
	}

	return idx, nil
}

// Ranges pairs consecutive offsets into half-open [from, to) byte ranges,
// one per block; the final block's range ends at trailerStart (the
// recordBlockIndexPos).
func (idx Index) Ranges(trailerStart uint64) [][2]uint64 {
	ranges := make([][2]uint64, len(idx))
	for i, off := range idx {
		end := trailerStart
		if i+1 < len(idx) {
			end = idx[i+1]
		}
		ranges[i] = [2]uint64{off, end}
	}

	return ranges
}
