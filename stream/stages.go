package stream

import (
	"iter"

	"github.com/arloliu/yxdb/block"
	"github.com/arloliu/yxdb/endian"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/internal/pool"
	"github.com/arloliu/yxdb/record"
)

// RecordsToBlocks adapts a stream of records into a stream of encoded
// on-disk blocks, buffering up to RecordsPerBlock records per block exactly
// as Writer does internally. It exists as a standalone stage constructor so
// callers can compose it outside a Writer (e.g. to inspect block sizes
// before writing).
func RecordsToBlocks(schema field.RecordInfo, engine endian.EndianEngine) func(iter.Seq2[record.Record, error]) iter.Seq2[[]byte, error] {
	return func(records iter.Seq2[record.Record, error]) iter.Seq2[[]byte, error] {
		return func(yield func([]byte, error) bool) {
			buf := pool.GetBlobBuffer()
			defer pool.PutBlobBuffer(buf)
			buf.Reset()

			count := 0
			emit := func() bool {
				if count == 0 {
					return true
				}
				encoded := block.Encode(buf.Bytes())
				buf.Reset()
				count = 0

				return yield(encoded, nil)
			}

			for rec, err := range records {
				if err != nil {
					if !yield(nil, err) {
						return
					}

					continue
				}

				if err := record.Encode(buf, rec, schema, engine); err != nil {
					if !yield(nil, err) {
						return
					}

					continue
				}
				count++

				if count >= RecordsPerBlock {
					if !emit() {
						return
					}
				}
			}

			emit()
		}
	}
}
