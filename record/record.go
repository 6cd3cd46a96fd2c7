// Package record implements the record codec (component B): encoding and
// decoding a Record — an ordered sequence of optional field values — driven
// by a field.RecordInfo schema.
package record

import (
	"fmt"

	"github.com/arloliu/yxdb/endian"
	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/internal/pool"
)

// Record is one row: one OptionalValue per schema field, in schema order.
type Record []field.OptionalValue

// Encode appends rec's on-disk bytes to buf, driven by schema.
//
// Layout: a leading null bitmap (one bit per field, schema.BitmapSize()
// bytes, bit i set means field i is null) followed by each field's encoded
// value in schema order. This is the reference null-encoding layout pinned
// for open question O1: an out-of-band, per-record bitmap rather than an
// in-band sentinel.
func Encode(buf *pool.ByteBuffer, rec Record, schema field.RecordInfo, engine endian.EndianEngine) error {
	if len(rec) != schema.Len() {
		return fmt.Errorf("%w: record has %d fields, schema has %d", errs.ErrFieldCountMismatch, len(rec), schema.Len())
	}

	bitmap := make([]byte, schema.BitmapSize())
	for i, ov := range rec {
		if !ov.Valid {
			bitmap[i/8] |= 1 << uint(i%8) //nolint:gosec
		}
	}
	buf.MustWrite(bitmap)

	for i, f := range schema.Fields {
		if err := field.Encode(buf, rec[i], f, engine); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	return nil
}

// Decode reads one Record from c, driven by schema.
func Decode(c *field.Cursor, schema field.RecordInfo, engine endian.EndianEngine) (Record, error) {
	bitmapSize := schema.BitmapSize()
	bitmap, err := c.Take(bitmapSize)
	if err != nil {
		return nil, fmt.Errorf("null bitmap: %w", err)
	}

	rec := make(Record, schema.Len())
	for i, f := range schema.Fields {
		ov, err := field.Decode(c, f, engine)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		isNull := bitmap[i/8]&(1<<uint(i%8)) != 0 //nolint:gosec
		if isNull {
			ov = field.Null()
		}
		rec[i] = ov
	}

	return rec, nil
}
