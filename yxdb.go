// Package yxdb provides a reader/writer for the YXDB binary record-database
// file format (and its Calgary container variant), plus a bridging
// pipe-delimited textual form for import/export.
//
// # Core Features
//
//   - Streaming record I/O: files are read and written without loading them
//     into memory, reconstructing the header and block index only after the
//     record stream is fully consumed.
//   - A schema-driven record codec supporting integers, floats, fixed
//     decimals, ASCII/UTF-16 strings (fixed and variable length), dates,
//     times, and blobs, each independently nullable.
//   - Per-block LZF compression with a stable "never grows past input"
//     guarantee.
//   - A Calgary container variant sharing the same schema and record
//     codecs but exposing an explicit offset table for random access.
//   - A pipe-delimited textual schema and row grammar for interchange.
//
// # Basic Usage
//
// Reading a file's records:
//
//	import "github.com/arloliu/yxdb"
//
//	for rec, err := range yxdb.SourceFileRecords("data.yxdb") {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // use rec
//	}
//
// Writing a file:
//
//	f, _ := os.Create("out.yxdb")
//	defer f.Close()
//	w, _ := yxdb.NewWriter(f, schema)
//	for _, rec := range records {
//	    w.WriteRecord(rec)
//	}
//	w.Close()
//
// # Package Structure
//
// This package re-exports the most common entry points from the stream,
// calgary and csv subpackages. Advanced or fine-grained usage should import
// those subpackages directly.
package yxdb

import (
	"io"
	"iter"

	"github.com/arloliu/yxdb/calgary"
	"github.com/arloliu/yxdb/csv"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/record"
	"github.com/arloliu/yxdb/stream"
)

type (
	// RecordInfo is the schema describing a record's fields.
	RecordInfo = field.RecordInfo
	// Record is one row of optional field values.
	Record = record.Record
	// Field is a single typed, sized, nullable column descriptor.
	Field = field.Field
	// Metadata is a file's header, schema and block index, without its
	// records.
	Metadata = stream.Metadata
	// Writer is the streaming YXDB writer.
	Writer = stream.Writer
)

// GetMetadata reads path's header, schema and block index, but none of its
// records.
func GetMetadata(path string) (Metadata, error) { return stream.GetMetadata(path) }

// SourceFileRecords streams path's records in file order.
func SourceFileRecords(path string) iter.Seq2[Record, error] { return stream.SourceFileRecords(path) }

// SourceCalgaryFileRecords streams a Calgary container's records in file
// order, concatenating its record vectors.
func SourceCalgaryFileRecords(path string) iter.Seq2[Record, error] {
	return calgary.SourceFileRecords(path)
}

// NewWriter starts writing a new YXDB file to w, described by schema.
func NewWriter(w io.WriteSeeker, schema RecordInfo) (*Writer, error) {
	return stream.NewWriter(w, schema)
}

// SinkRecords writes records as a complete YXDB file to w.
func SinkRecords(w io.WriteSeeker, schema RecordInfo, records iter.Seq2[Record, error]) error {
	return stream.SinkRecords(w, schema, records)
}

// ParseCSVHeader parses a pipe-delimited schema line into a RecordInfo.
func ParseCSVHeader(line string) (RecordInfo, error) { return csv.ParseHeader(line) }
