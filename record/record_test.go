package record_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/yxdb/endian"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/internal/pool"
	"github.com/arloliu/yxdb/record"
)

func testSchema(t *testing.T) field.RecordInfo {
	t.Helper()
	require := require.New(t)

	name, err := field.NewBuilder("name", field.String, field.WithSize(16)).Build()
	require.NoError(err)
	age, err := field.NewBuilder("age", field.Int32).Build()
	require.NoError(err)
	score, err := field.NewBuilder("score", field.Double).Build()
	require.NoError(err)

	info, err := field.NewRecordInfo(name, age, score)
	require.NoError(err)

	return info
}

func TestRecordEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	schema := testSchema(t)
	engine := endian.GetLittleEndianEngine()

	rec := record.Record{
		field.StringValue("alice"),
		field.IntValue(30),
		field.DoubleValue(99.5),
	}

	buf := pool.NewByteBuffer(64)
	require.NoError(record.Encode(buf, rec, schema, engine))

	c := field.NewCursor(buf.Bytes())
	got, err := record.Decode(c, schema, engine)
	require.NoError(err)
	require.Equal(0, c.Remaining())

	require.Equal("alice", got[0].Value.Str)
	require.Equal(int64(30), got[1].Value.Int)
	require.InDelta(99.5, got[2].Value.F64, 1e-9)
}

func TestRecordNullBitmapRoundTrip(t *testing.T) {
	require := require.New(t)

	schema := testSchema(t)
	engine := endian.GetLittleEndianEngine()

	rec := record.Record{
		field.Null(),
		field.IntValue(5),
		field.Null(),
	}

	buf := pool.NewByteBuffer(64)
	require.NoError(record.Encode(buf, rec, schema, engine))

	c := field.NewCursor(buf.Bytes())
	got, err := record.Decode(c, schema, engine)
	require.NoError(err)

	require.False(got[0].Valid)
	require.True(got[1].Valid)
	require.Equal(int64(5), got[1].Value.Int)
	require.False(got[2].Valid)
}

func TestRecordEncodeFieldCountMismatch(t *testing.T) {
	require := require.New(t)

	schema := testSchema(t)
	engine := endian.GetLittleEndianEngine()

	rec := record.Record{field.StringValue("only one")}
	buf := pool.NewByteBuffer(64)
	err := record.Encode(buf, rec, schema, engine)
	require.Error(err)
}

func TestRecordInfoBitmapSize(t *testing.T) {
	require := require.New(t)

	for _, tc := range []struct {
		numFields int
		want      int
	}{
		{1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3},
	} {
		fields := make([]field.Field, tc.numFields)
		for i := range fields {
			f, err := field.NewBuilder(fmt.Sprintf("f%d", i), field.Bool).Build()
			require.NoError(err)
			fields[i] = f
		}
		info, err := field.NewRecordInfo(fields...)
		require.NoError(err)
		require.Equal(tc.want, info.BitmapSize(), "numFields=%d", tc.numFields)
	}
}
