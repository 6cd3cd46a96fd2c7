// Package header implements the fixed-size file preludes (component F):
// the 512-byte YXDB header and the Calgary container's header.
package header

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/yxdb/errs"
)

// Size is the fixed byte length of a YXDB header.
const Size = 512

const (
	descriptionLen = 64
	reservedLen    = Size - (descriptionLen + 4*6 + 4 + 8*3)
)

// Magic numbers for the fileId field.
const (
	MagicWithSpatialIndex    uint32 = 0x00440205
	MagicWithoutSpatialIndex uint32 = 0x00440204
)

// Header is the 512-byte YXDB file prelude, laid out exactly as spec §3
// describes. Reserved is the opaque remainder after compressionVersion,
// preserved verbatim on round-trip (open question O4 notes the same for
// Description).
type Header struct {
	Description         [descriptionLen]byte
	FileID               uint32
	CreationDate         uint32
	Flags1               uint32
	Flags2               uint32
	MetaInfoLength       uint32
	Mystery              uint32
	SpatialIndexPos      uint64
	RecordBlockIndexPos  uint64
	NumRecords           uint64
	CompressionVersion   uint32
	Reserved             [reservedLen]byte
}

// HasSpatialIndex reports whether FileID indicates a spatial index is
// present.
func (h Header) HasSpatialIndex() bool {
	return h.FileID == MagicWithSpatialIndex
}

// Bytes serializes h into exactly Size bytes, little-endian.
func (h Header) Bytes() []byte {
	b := make([]byte, Size)
	off := 0
	off += copy(b[off:], h.Description[:])
	binary.LittleEndian.PutUint32(b[off:], h.FileID)
	off += 4
	binary.LittleEndian.PutUint32(b[off:], h.CreationDate)
	off += 4
	binary.LittleEndian.PutUint32(b[off:], h.Flags1)
	off += 4
	binary.LittleEndian.PutUint32(b[off:], h.Flags2)
	off += 4
	binary.LittleEndian.PutUint32(b[off:], h.MetaInfoLength)
	off += 4
	binary.LittleEndian.PutUint32(b[off:], h.Mystery)
	off += 4
	binary.LittleEndian.PutUint64(b[off:], h.SpatialIndexPos)
	off += 8
	binary.LittleEndian.PutUint64(b[off:], h.RecordBlockIndexPos)
	off += 8
	binary.LittleEndian.PutUint64(b[off:], h.NumRecords)
	off += 8
	binary.LittleEndian.PutUint32(b[off:], h.CompressionVersion)
	off += 4
	copy(b[off:], h.Reserved[:])

	return b
}

// Parse decodes a Header from exactly Size bytes.
func Parse(data []byte) (Header, error) {
	if len(data) != Size {
		return Header{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderLen, len(data), Size)
	}

	var h Header
	off := 0
	off += copy(h.Description[:], data[off:off+descriptionLen])
	h.FileID = binary.LittleEndian.Uint32(data[off:])
	off += 4
	h.CreationDate = binary.LittleEndian.Uint32(data[off:])
	off += 4
	h.Flags1 = binary.LittleEndian.Uint32(data[off:])
	off += 4
	h.Flags2 = binary.LittleEndian.Uint32(data[off:])
	off += 4
	h.MetaInfoLength = binary.LittleEndian.Uint32(data[off:])
	off += 4
	h.Mystery = binary.LittleEndian.Uint32(data[off:])
	off += 4
	h.SpatialIndexPos = binary.LittleEndian.Uint64(data[off:])
	off += 8
	h.RecordBlockIndexPos = binary.LittleEndian.Uint64(data[off:])
	off += 8
	h.NumRecords = binary.LittleEndian.Uint64(data[off:])
	off += 8
	h.CompressionVersion = binary.LittleEndian.Uint32(data[off:])
	off += 4
	copy(h.Reserved[:], data[off:])

	if h.FileID != MagicWithSpatialIndex && h.FileID != MagicWithoutSpatialIndex {
		return Header{}, fmt.Errorf("%w: 0x%08x", errs.ErrInvalidMagic, h.FileID)
	}

	return h, nil
}

// SetDescription copies s into the Description field, truncating or
// zero-padding to descriptionLen bytes.
func (h *Header) SetDescription(s string) {
	var d [descriptionLen]byte
	n := copy(d[:], s)
	_ = n
	h.Description = d
}
