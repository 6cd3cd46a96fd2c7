package calgary_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/yxdb/calgary"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/record"
)

func createFile(path string) (*os.File, error) { return os.Create(path) }

func vectorSchema(t *testing.T) field.RecordInfo {
	t.Helper()
	require := require.New(t)

	market, err := field.NewBuilder("market", field.Int16).Build()
	require.NoError(err)
	households, err := field.NewBuilder("households", field.Int32).Build()
	require.NoError(err)
	info, err := field.NewRecordInfo(market, households)
	require.NoError(err)

	return info
}

func TestWriterMultiVectorRoundTrip(t *testing.T) {
	require := require.New(t)

	schema := vectorSchema(t)
	path := filepath.Join(t.TempDir(), "out.cgy")

	f, err := createFile(path)
	require.NoError(err)

	wr, err := calgary.NewWriter(f, schema)
	require.NoError(err)

	vec1 := []record.Record{
		{field.IntValue(1), field.IntValue(100)},
		{field.IntValue(2), field.IntValue(200)},
	}
	vec2 := []record.Record{
		{field.IntValue(3), field.IntValue(300)},
	}
	require.NoError(wr.WriteVector(vec1))
	require.NoError(wr.WriteVector(vec2))
	require.NoError(wr.Close())
	require.NoError(f.Close())

	var got []record.Record
	for rec, err := range calgary.SourceFileRecords(path) {
		require.NoError(err)
		got = append(got, rec)
	}

	require.Len(got, 3, "vectors concatenate into one record stream")
	require.Equal(int64(1), got[0][0].Value.Int)
	require.Equal(int64(300), got[2][1].Value.Int)
}

func TestWriterRejectsSecondClose(t *testing.T) {
	require := require.New(t)

	schema := vectorSchema(t)
	path := filepath.Join(t.TempDir(), "closed.cgy")
	f, err := createFile(path)
	require.NoError(err)
	defer f.Close()

	wr, err := calgary.NewWriter(f, schema)
	require.NoError(err)
	require.NoError(wr.Close())

	err = wr.Close()
	require.Error(err, "a second Close must fail")
}

func TestCacheGetPutRoundTrip(t *testing.T) {
	require := require.New(t)

	cache := calgary.NewCache()
	payload := []byte("some vector bytes to cache")

	require.NoError(cache.Put(0, uint32(len(payload)), payload))

	got, ok := cache.Get(0, uint32(len(payload)))
	require.True(ok)
	require.Equal(payload, got)

	_, ok = cache.Get(100, 200)
	require.False(ok)
}
