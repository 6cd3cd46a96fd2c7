package stream_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/header"
	"github.com/arloliu/yxdb/record"
	"github.com/arloliu/yxdb/stream"
)

func createFile(path string) (*os.File, error) { return os.Create(path) }

func simpleSchema(t *testing.T) field.RecordInfo {
	t.Helper()
	require := require.New(t)

	id, err := field.NewBuilder("id", field.Int32).Build()
	require.NoError(err)
	name, err := field.NewBuilder("name", field.VString).Build()
	require.NoError(err)
	info, err := field.NewRecordInfo(id, name)
	require.NoError(err)

	return info
}

func genRecords(n int) func(yield func(record.Record, error) bool) {
	return func(yield func(record.Record, error) bool) {
		for i := range n {
			rec := record.Record{
				field.IntValue(int64(i)),
				field.StringValue("row"),
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func writeAndReadBack(t *testing.T, n int) []record.Record {
	t.Helper()
	require := require.New(t)

	schema := simpleSchema(t)
	path := filepath.Join(t.TempDir(), "out.yxdb")

	require.NoError(stream.SinkRecordsToFile(path, schema, genRecords(n)))

	var out []record.Record
	for rec, err := range stream.SourceFileRecords(path) {
		require.NoError(err)
		out = append(out, rec)
	}

	return out
}

func TestWriteReadEmptyStream(t *testing.T) {
	require := require.New(t)

	recs := writeAndReadBack(t, 0)
	require.Empty(recs)
}

func TestWriteReadSingleBlock(t *testing.T) {
	require := require.New(t)

	recs := writeAndReadBack(t, 10)
	require.Len(recs, 10)
	require.Equal(int64(0), recs[0][0].Value.Int)
	require.Equal("row", recs[9][1].Value.Str)
}

func TestWriteReadExactlyOneBlockBoundary(t *testing.T) {
	require := require.New(t)

	recs := writeAndReadBack(t, stream.RecordsPerBlock)
	require.Len(recs, stream.RecordsPerBlock)
}

func TestWriteReadOneRecordPastBlockBoundary(t *testing.T) {
	require := require.New(t)

	recs := writeAndReadBack(t, stream.RecordsPerBlock+1)
	require.Len(recs, stream.RecordsPerBlock+1)
	require.Equal(int64(stream.RecordsPerBlock), recs[stream.RecordsPerBlock][0].Value.Int)
}

func TestMetadataReflectsRecordCount(t *testing.T) {
	require := require.New(t)

	schema := simpleSchema(t)
	path := filepath.Join(t.TempDir(), "meta.yxdb")
	require.NoError(stream.SinkRecordsToFile(path, schema, genRecords(5)))

	meta, err := stream.GetMetadata(path)
	require.NoError(err)
	require.Equal(uint64(5), meta.Header.NumRecords)
	require.Len(meta.Index, 1)
	require.Equal(schema.Len(), meta.Schema.Len())
}

func TestWriterStampsSpatialIndexMagic(t *testing.T) {
	require := require.New(t)

	schema := simpleSchema(t)
	path := filepath.Join(t.TempDir(), "magic.yxdb")
	require.NoError(stream.SinkRecordsToFile(path, schema, genRecords(2)))

	meta, err := stream.GetMetadata(path)
	require.NoError(err)
	require.Equal(header.MagicWithSpatialIndex, meta.Header.FileID)
	require.Equal(uint64(0), meta.Header.SpatialIndexPos, "no spatial index is signaled by a zero offset, not fileId")
}

func TestWriterRejectsWriteAfterClose(t *testing.T) {
	require := require.New(t)

	schema := simpleSchema(t)
	path := filepath.Join(t.TempDir(), "closed.yxdb")
	f, err := createFile(path)
	require.NoError(err)
	defer f.Close()

	wr, err := stream.NewWriter(f, schema)
	require.NoError(err)
	require.NoError(wr.Close())

	err = wr.WriteRecord(record.Record{field.IntValue(1), field.StringValue("x")})
	require.Error(err)
}
