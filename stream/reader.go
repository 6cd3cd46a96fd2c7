package stream

import (
	"fmt"
	"iter"
	"os"

	"github.com/arloliu/yxdb/block"
	"github.com/arloliu/yxdb/endian"
	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/record"
)

// SourceFileBlocks returns a pull-based stream of decoded block payloads for
// path, using meta's block index to compute byte ranges. Ranges may be
// consumed independently and in any order by the caller of the returned
// sequence, but the sequence itself yields them in file order.
func SourceFileBlocks(path string, meta Metadata) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(nil, fmt.Errorf("%w: %w", errs.ErrIO, err))

			return
		}
		defer f.Close()

		ranges := meta.Index.Ranges(meta.Header.RecordBlockIndexPos)
		for _, r := range ranges {
			from, to := r[0], r[1]
			if to < from {
				if !yield(nil, fmt.Errorf("%w: range [%d,%d)", errs.ErrBlockLengthOverflow, from, to)) {
					return
				}

				continue
			}

			raw := make([]byte, to-from)
			if _, err := f.ReadAt(raw, int64(from)); err != nil {
				if !yield(nil, fmt.Errorf("reading block at offset %d: %w", from, err)) {
					return
				}

				continue
			}

			payload, err := block.Decode(raw)
			if !yield(payload, err) {
				return
			}
		}
	}
}

// BlocksToRecords adapts a stream of decoded block payloads into a stream
// of records, decoding each block's concatenated record bytes in order
// against schema.
func BlocksToRecords(schema field.RecordInfo, engine endian.EndianEngine) func(iter.Seq2[[]byte, error]) iter.Seq2[record.Record, error] {
	return func(blocks iter.Seq2[[]byte, error]) iter.Seq2[record.Record, error] {
		return func(yield func(record.Record, error) bool) {
			for payload, err := range blocks {
				if err != nil {
					if !yield(nil, err) {
						return
					}

					continue
				}

				c := field.NewCursor(payload)
				for c.Remaining() > 0 {
					rec, err := record.Decode(c, schema, engine)
					if !yield(rec, err) {
						return
					}
					if err != nil {
						break
					}
				}
			}
		}
	}
}

// SourceFileRecords opens path and streams its records in file order,
// reconstructing metadata first.
func SourceFileRecords(path string) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		meta, err := GetMetadata(path)
		if err != nil {
			yield(nil, err)

			return
		}

		engine := endian.GetLittleEndianEngine()
		for rec, err := range BlocksToRecords(meta.Schema, engine)(SourceFileBlocks(path, meta)) {
			if !yield(rec, err) {
				return
			}
		}
	}
}
