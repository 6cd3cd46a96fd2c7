package stream

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/arloliu/yxdb/block"
	"github.com/arloliu/yxdb/endian"
	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/header"
	"github.com/arloliu/yxdb/internal/clock"
	"github.com/arloliu/yxdb/internal/pool"
	"github.com/arloliu/yxdb/record"
	"github.com/arloliu/yxdb/schema"
)

// writerStats is the private statistics accumulator threaded through a
// single Writer: the teacher's NumericEncoder mutates its own header/index
// fields across StartMetricID/AddDataPoint/EndMetric/Finish calls in just
// this single-owner way.
type writerStats struct {
	metadataLength int
	// blockLengths holds each emitted block's on-disk length in emission
	// order; recording a new one is an O(1) amortized append.
	blockLengths []int
	numRecords   uint64
}

func (s *writerStats) recordBlock(n int) {
	s.blockLengths = append(s.blockLengths, n)
}

func (s *writerStats) blockLengthsForward() []int {
	fwd := make([]int, len(s.blockLengths))
	copy(fwd, s.blockLengths)

	return fwd
}

// Writer implements the write path of the streaming pipeline: a single pass
// over the record stream, with a seek-and-overwrite at the very end to
// patch in the header and append the block index. It cannot be reused after
// Close.
//
// State machine: Init (NewWriter) -> SchemaWritten -> BlocksBuffering
// (WriteRecord, possibly emitting) -> Finalizing -> Done (Close). A failure
// in any state aborts; the partially written file is left on disk.
type Writer struct {
	w        io.WriteSeeker
	schema   field.RecordInfo
	engine   endian.EndianEngine
	buffered []record.Record
	stats    writerStats
	closed   bool
}

// NewWriter writes the 512-byte header placeholder and the serialized
// schema to w, and returns a Writer ready to accept records. w must support
// Seek — the core contract is a single pass with a seek-and-patch at the
// end; callers that cannot seek (e.g. pipes) must buffer the whole file
// themselves or reject the request.
func NewWriter(w io.WriteSeeker, info field.RecordInfo) (*Writer, error) {
	if _, err := w.Write(make([]byte, header.Size)); err != nil {
		return nil, fmt.Errorf("writing header placeholder: %w", err)
	}

	schemaBytes, err := schema.Encode(info)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(schemaBytes); err != nil {
		return nil, fmt.Errorf("writing schema: %w", err)
	}

	return &Writer{
		w:      w,
		schema: info,
		engine: endian.GetLittleEndianEngine(),
		stats:  writerStats{metadataLength: len(schemaBytes)},
	}, nil
}

// WriteRecord buffers rec, emitting a block once RecordsPerBlock records
// have accumulated.
func (wr *Writer) WriteRecord(rec record.Record) error {
	if wr.closed {
		return errs.ErrWriterClosed
	}

	wr.buffered = append(wr.buffered, rec)
	if len(wr.buffered) >= RecordsPerBlock {
		return wr.flush()
	}

	return nil
}

// WriteAll drains records into the writer, stopping at the first error.
func (wr *Writer) WriteAll(records iter.Seq2[record.Record, error]) error {
	for rec, err := range records {
		if err != nil {
			return err
		}
		if err := wr.WriteRecord(rec); err != nil {
			return err
		}
	}

	return nil
}

func (wr *Writer) flush() error {
	if len(wr.buffered) == 0 {
		return nil
	}

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)
	buf.Reset()

	for _, rec := range wr.buffered {
		if err := record.Encode(buf, rec, wr.schema, wr.engine); err != nil {
			return err
		}
	}

	encoded := block.Encode(buf.Bytes())
	if _, err := wr.w.Write(encoded); err != nil {
		return fmt.Errorf("writing block: %w", err)
	}

	wr.stats.recordBlock(block.StoredLen(encoded))
	wr.stats.numRecords += uint64(len(wr.buffered))
	wr.buffered = wr.buffered[:0]

	return nil
}

// Close flushes any buffered records, computes the final block index,
// seeks back to patch the header, and appends the block index — the
// Finalizing -> Done transition. It must be called exactly once.
func (wr *Writer) Close() error {
	if wr.closed {
		return errs.ErrWriterClosed
	}
	wr.closed = true

	if err := wr.flush(); err != nil {
		return err
	}

	startOfBlocks := uint64(header.Size + wr.stats.metadataLength)
	blockLengths := wr.stats.blockLengthsForward()

	idx := make(block.Index, len(blockLengths))
	offset := startOfBlocks
	for i, n := range blockLengths {
		idx[i] = offset
		offset += uint64(n)
	}
	recordBlockIndexPos := offset

	var h header.Header
	h.SetDescription("Generated by yxdb")
	// Absence of a spatial index is signaled by SpatialIndexPos == 0, left
	// unset here, not by fileId.
	h.FileID = header.MagicWithSpatialIndex
	h.CreationDate = clock.Now()
	h.MetaInfoLength = uint32(wr.stats.metadataLength / 2) //nolint:gosec
	h.CompressionVersion = 1
	h.RecordBlockIndexPos = recordBlockIndexPos
	h.NumRecords = wr.stats.numRecords

	if _, err := wr.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrNotSeekable, err)
	}
	if _, err := wr.w.Write(h.Bytes()); err != nil {
		return fmt.Errorf("patching header: %w", err)
	}
	if _, err := wr.w.Seek(int64(recordBlockIndexPos), io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrNotSeekable, err)
	}
	if _, err := wr.w.Write(idx.Encode()); err != nil {
		return fmt.Errorf("writing block index: %w", err)
	}

	return nil
}

// SinkRecords writes records as a complete YXDB file to w, described by
// schema. It is the produced-interface convenience wrapper around
// NewWriter/WriteAll/Close.
func SinkRecords(w io.WriteSeeker, schema field.RecordInfo, records iter.Seq2[record.Record, error]) error {
	wr, err := NewWriter(w, schema)
	if err != nil {
		return err
	}
	if err := wr.WriteAll(records); err != nil {
		return err
	}

	return wr.Close()
}

// SinkRecordsToFile creates (or truncates) path and writes records to it.
func SinkRecordsToFile(path string, schema field.RecordInfo, records iter.Seq2[record.Record, error]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	defer f.Close()

	return SinkRecords(f, schema, records)
}
