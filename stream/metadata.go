// Package stream implements the streaming pipeline (component G): reading
// and writing YXDB files without loading them into memory, reconstructing
// the header and block index only after the record stream is fully
// consumed (write side) or read once up front (read side).
package stream

import (
	"fmt"
	"os"

	"github.com/arloliu/yxdb/block"
	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/header"
	"github.com/arloliu/yxdb/schema"
)

// RecordsPerBlock is the soft threshold the writer buffers records against:
// one block is emitted every time this many records have been buffered, or
// when the input stream ends.
const RecordsPerBlock = 0x10000

// Metadata is the lazily-readable handle produced by GetMetadata: a file's
// header, schema and block index, without its records.
type Metadata struct {
	Header header.Header
	Schema field.RecordInfo
	Index  block.Index
}

// GetMetadata reads path's header, schema and block index, but none of its
// records.
func GetMetadata(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	defer f.Close()

	return readMetadata(f)
}

func readMetadata(f *os.File) (Metadata, error) {
	headerBytes := make([]byte, header.Size)
	if _, err := f.ReadAt(headerBytes, 0); err != nil {
		return Metadata{}, fmt.Errorf("reading header: %w", err)
	}
	h, err := header.Parse(headerBytes)
	if err != nil {
		return Metadata{}, err
	}

	schemaBytes := make([]byte, int(h.MetaInfoLength)*2)
	if _, err := f.ReadAt(schemaBytes, header.Size); err != nil {
		return Metadata{}, fmt.Errorf("reading schema: %w", err)
	}
	info, err := schema.Decode(schemaBytes)
	if err != nil {
		return Metadata{}, err
	}

	fi, err := f.Stat()
	if err != nil {
		return Metadata{}, fmt.Errorf("stat: %w", err)
	}
	trailerLen := fi.Size() - int64(h.RecordBlockIndexPos)
	if trailerLen < 0 {
		return Metadata{}, fmt.Errorf("%w: recordBlockIndexPos %d past EOF %d", errs.ErrIndexTruncated, h.RecordBlockIndexPos, fi.Size())
	}
	trailer := make([]byte, trailerLen)
	if _, err := f.ReadAt(trailer, int64(h.RecordBlockIndexPos)); err != nil {
		return Metadata{}, fmt.Errorf("reading block index: %w", err)
	}
	idx, err := block.DecodeIndex(trailer)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{Header: h, Schema: info, Index: idx}, nil
}
