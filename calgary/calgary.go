package calgary

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/arloliu/yxdb/endian"
	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/header"
	"github.com/arloliu/yxdb/internal/pool"
	"github.com/arloliu/yxdb/record"
	"github.com/arloliu/yxdb/schema"
)

// File is the lazily-readable handle for a Calgary container: its header,
// schema and block index, without its record vectors.
type File struct {
	Header header.CalgaryHeader
	Schema field.RecordInfo
	Index  Index
}

// GetMetadata reads path's Calgary header, schema and block index.
func GetMetadata(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	defer f.Close()

	headerBytes := make([]byte, header.CalgaryHeaderSize)
	if _, err := f.ReadAt(headerBytes, 0); err != nil {
		return File{}, fmt.Errorf("reading calgary header: %w", err)
	}
	h, err := header.ParseCalgaryHeader(headerBytes)
	if err != nil {
		return File{}, err
	}

	numCharsBytes := make([]byte, 4)
	if _, err := f.ReadAt(numCharsBytes, header.CalgaryHeaderSize); err != nil {
		return File{}, fmt.Errorf("reading schema length: %w", err)
	}
	numChars := endian.GetLittleEndianEngine().Uint32(numCharsBytes)

	schemaOff := int64(header.CalgaryHeaderSize) + 4
	schemaBytes := make([]byte, int(numChars)*2)
	if _, err := f.ReadAt(schemaBytes, schemaOff); err != nil {
		return File{}, fmt.Errorf("reading schema: %w", err)
	}
	info, err := schema.Decode(schemaBytes)
	if err != nil {
		return File{}, err
	}

	fi, err := f.Stat()
	if err != nil {
		return File{}, fmt.Errorf("stat: %w", err)
	}
	trailerLen := fi.Size() - int64(h.IndexPosition)
	if trailerLen < 0 {
		return File{}, fmt.Errorf("%w: indexPosition %d past EOF %d", errs.ErrIndexTruncated, h.IndexPosition, fi.Size())
	}
	trailer := make([]byte, trailerLen)
	if _, err := f.ReadAt(trailer, int64(h.IndexPosition)); err != nil {
		return File{}, fmt.Errorf("reading block index: %w", err)
	}
	idx, err := DecodeIndex(trailer)
	if err != nil {
		return File{}, err
	}

	return File{Header: h, Schema: info, Index: idx}, nil
}

// SourceBlocks streams each block's raw record-vector bytes in file order.
// Unlike YXDB blocks, Calgary blocks have no length prefix or compression
// bit — the byte range from the index delimits them exactly.
func SourceBlocks(path string, meta File) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(nil, fmt.Errorf("%w: %w", errs.ErrIO, err))

			return
		}
		defer f.Close()

		for _, r := range meta.Index.Ranges(meta.Header.IndexPosition) {
			from, to := r[0], r[1]
			if to < from {
				if !yield(nil, fmt.Errorf("%w: range [%d,%d)", errs.ErrBlockLengthOverflow, from, to)) {
					return
				}

				continue
			}

			raw := make([]byte, to-from)
			if _, err := f.ReadAt(raw, int64(from)); err != nil {
				if !yield(nil, fmt.Errorf("reading calgary block at offset %d: %w", from, err)) {
					return
				}

				continue
			}
			if !yield(raw, nil) {
				return
			}
		}
	}
}

// SourceBlocksCached behaves like SourceBlocks, but consults cache before
// each disk read and populates it afterward, so repeated reads of the same
// range within one run skip the ReadAt entirely.
func SourceBlocksCached(path string, meta File, cache *Cache) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(nil, fmt.Errorf("%w: %w", errs.ErrIO, err))

			return
		}
		defer f.Close()

		for _, r := range meta.Index.Ranges(meta.Header.IndexPosition) {
			from, to := r[0], r[1]
			if to < from {
				if !yield(nil, fmt.Errorf("%w: range [%d,%d)", errs.ErrBlockLengthOverflow, from, to)) {
					return
				}

				continue
			}

			if cached, ok := cache.Get(from, to); ok {
				if !yield(cached, nil) {
					return
				}

				continue
			}

			raw := make([]byte, to-from)
			if _, err := f.ReadAt(raw, int64(from)); err != nil {
				if !yield(nil, fmt.Errorf("reading calgary block at offset %d: %w", from, err)) {
					return
				}

				continue
			}
			if err := cache.Put(from, to, raw); err != nil {
				if !yield(nil, err) {
					return
				}

				continue
			}
			if !yield(raw, nil) {
				return
			}
		}
	}
}

// VectorToRecords decodes one block's bytes into its record vector.
func VectorToRecords(payload []byte, schema field.RecordInfo, engine endian.EndianEngine) ([]record.Record, error) {
	c := field.NewCursor(payload)
	var recs []record.Record
	for c.Remaining() > 0 {
		rec, err := record.Decode(c, schema, engine)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// SourceFileRecords streams every record across every vector, in file
// order — concatenating each block's record vector yields the full record
// stream (spec §4.8, property 5 of spec §8).
func SourceFileRecords(path string) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		meta, err := GetMetadata(path)
		if err != nil {
			yield(nil, err)

			return
		}

		engine := endian.GetLittleEndianEngine()
		for payload, err := range SourceBlocks(path, meta) {
			if err != nil {
				if !yield(nil, err) {
					return
				}

				continue
			}

			recs, err := VectorToRecords(payload, meta.Schema, engine)
			if err != nil {
				if !yield(nil, err) {
					return
				}

				continue
			}
			for _, rec := range recs {
				if !yield(rec, nil) {
					return
				}
			}
		}
	}
}

// Writer writes a Calgary container: a header placeholder, the schema, then
// a caller-driven sequence of record vectors (WriteVector), finalized by
// Close into the header patch and trailing offset table.
type Writer struct {
	w             io.WriteSeeker
	schema        field.RecordInfo
	engine        endian.EndianEngine
	blockOffsets  []uint32
	cur           uint32
	metadataChars uint32
	closed        bool
}

// NewWriter writes the Calgary header placeholder and schema to w.
func NewWriter(w io.WriteSeeker, info field.RecordInfo) (*Writer, error) {
	if _, err := w.Write(make([]byte, header.CalgaryHeaderSize)); err != nil {
		return nil, fmt.Errorf("writing calgary header placeholder: %w", err)
	}

	schemaBytes, err := schema.Encode(info)
	if err != nil {
		return nil, err
	}
	numChars := uint32(len(schemaBytes) / 2) //nolint:gosec

	var numCharsBuf [4]byte
	endian.GetLittleEndianEngine().PutUint32(numCharsBuf[:], numChars)
	if _, err := w.Write(numCharsBuf[:]); err != nil {
		return nil, fmt.Errorf("writing schema length: %w", err)
	}
	if _, err := w.Write(schemaBytes); err != nil {
		return nil, fmt.Errorf("writing schema: %w", err)
	}

	cur := uint32(header.CalgaryHeaderSize) + 4 + uint32(len(schemaBytes)) //nolint:gosec

	return &Writer{
		w:             w,
		schema:        info,
		engine:        endian.GetLittleEndianEngine(),
		cur:           cur,
		metadataChars: numChars,
	}, nil
}

// WriteVector writes one block: the concatenation of recs, with no length
// prefix and no compression. Its byte range is recorded verbatim in the
// trailing index.
func (wr *Writer) WriteVector(recs []record.Record) error {
	if wr.closed {
		return errs.ErrWriterClosed
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)
	buf.Reset()

	for _, rec := range recs {
		if err := record.Encode(buf, rec, wr.schema, wr.engine); err != nil {
			return err
		}
	}

	wr.blockOffsets = append(wr.blockOffsets, wr.cur)
	n, err := wr.w.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("writing calgary vector: %w", err)
	}
	wr.cur += uint32(n) //nolint:gosec

	return nil
}

// Close seeks back to patch the header's IndexPosition and appends the
// trailing offset table.
func (wr *Writer) Close() error {
	if wr.closed {
		return errs.ErrWriterClosed
	}
	wr.closed = true

	indexPosition := wr.cur
	idx := Index(wr.blockOffsets)

	if _, err := wr.w.Write(idx.Encode()); err != nil {
		return fmt.Errorf("writing calgary block index: %w", err)
	}

	h := header.CalgaryHeader{IndexPosition: indexPosition}
	if _, err := wr.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrNotSeekable, err)
	}
	if _, err := wr.w.Write(h.Bytes()); err != nil {
		return fmt.Errorf("patching calgary header: %w", err)
	}

	return nil
}
