package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/field"
	"github.com/arloliu/yxdb/schema"
)

func exampleSchema(t *testing.T) field.RecordInfo {
	t.Helper()
	require := require.New(t)

	month, err := field.NewBuilder("month", field.Date).Build()
	require.NoError(err)
	market, err := field.NewBuilder("market", field.Int16).Build()
	require.NoError(err)
	households, err := field.NewBuilder("num_households", field.Int32,
		field.WithDescription("household count")).Build()
	require.NoError(err)

	info, err := field.NewRecordInfo(month, market, households)
	require.NoError(err)

	return info
}

func TestSchemaEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	info := exampleSchema(t)

	encoded, err := schema.Encode(info)
	require.NoError(err)
	require.Equal(0, len(encoded)%2, "UTF-16LE output must be an even number of bytes")

	decoded, err := schema.Decode(encoded)
	require.NoError(err)
	require.Equal(info.Len(), decoded.Len())
	for i, f := range info.Fields {
		require.Equal(f.Name, decoded.Fields[i].Name)
		require.Equal(f.Type, decoded.Fields[i].Type)
		require.Equal(f.Size, decoded.Fields[i].Size)
	}
}

func TestSchemaByteLenMatchesEncode(t *testing.T) {
	require := require.New(t)

	info := exampleSchema(t)
	encoded, err := schema.Encode(info)
	require.NoError(err)

	n, err := schema.ByteLen(info)
	require.NoError(err)
	require.Equal(len(encoded), n)
}

func TestSchemaDecodeNoRecordInfo(t *testing.T) {
	require := require.New(t)

	var units []uint16
	for _, r := range "<MetaInfo></MetaInfo>" {
		units = append(units, uint16(r))
	}
	out := make([]byte, len(units)*2)
	for i, u := range units {
		out[i*2] = byte(u)
		out[i*2+1] = byte(u >> 8)
	}

	_, err := schema.Decode(out)
	require.ErrorIs(err, errs.ErrNoRecordInfo)
}

func TestSchemaDecodeOddByteLength(t *testing.T) {
	_, err := schema.Decode([]byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrMalformedSchema)
}
