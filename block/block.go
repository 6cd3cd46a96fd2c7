// Package block implements the block codec (component D): length-prefixing
// and optional LZF compression of an opaque block payload, plus the
// trailing block index codec (component E).
package block

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/internal/lzf"
)

// MaxDecompressedSize is the fixed output buffer the decompressor is
// bounded by; any block whose payload decompresses larger than this is a
// BlockError (spec §4.3).
const MaxDecompressedSize = 0x40000

// literalBit marks bit 31 of the on-disk length prefix: when set, the
// payload is stored literally; when clear, it is LZF-compressed.
const literalBit = 0x80000000
const lengthMask = 0x7FFFFFFF

// Encode compresses payload per the block codec's contract: attempt LZF
// compression into a budget of len(payload)-1 bytes; on success, store the
// compressed bytes with the literal bit clear, otherwise store payload
// as-is with the literal bit set. The return value is the complete on-disk
// block: the 4-byte length prefix followed by the stored bytes.
func Encode(payload []byte) []byte {
	budget := len(payload) - 1
	if compressed, ok := lzf.Compress(payload, budget); ok {
		return frame(compressed, false)
	}

	return frame(payload, true)
}

func frame(stored []byte, literal bool) []byte {
	out := make([]byte, 4+len(stored))
	writtenSize := uint32(len(stored)) //nolint:gosec
	if literal {
		writtenSize |= literalBit
	}
	binary.LittleEndian.PutUint32(out[0:4], writtenSize)
	copy(out[4:], stored)

	return out
}

// Decode parses one on-disk block from raw (exactly the bytes of a single
// block range, length prefix included) and returns its decompressed
// payload.
func Decode(raw []byte) ([]byte, error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("%w: need 4-byte length prefix, have %d bytes", errs.ErrTruncatedBlock, len(raw))
	}

	writtenSize := binary.LittleEndian.Uint32(raw[0:4])
	literal := writtenSize&literalBit != 0
	size := int(writtenSize & lengthMask)

	if 4+size > len(raw) {
		return nil, fmt.Errorf("%w: prefix declares %d bytes, only %d remain", errs.ErrBlockLengthOverflow, size, len(raw)-4)
	}
	stored := raw[4 : 4+size]

	if literal {
		out := make([]byte, len(stored))
		copy(out, stored)

		return out, nil
	}

	payload, ok := lzf.Decompress(stored, MaxDecompressedSize)
	if !ok {
		return nil, fmt.Errorf("%w", errs.ErrDecompressFailed)
	}

	return payload, nil
}

// StoredLen returns the total on-disk length (length prefix plus stored
// bytes) of a block produced by Encode(payload).
func StoredLen(encoded []byte) int { return len(encoded) }
