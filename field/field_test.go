package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/yxdb/errs"
)

func TestBuilderValidatesSizeRequirement(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder("name", String).Build()
	require.ErrorIs(err, errs.ErrMissingFieldSize)

	f, err := NewBuilder("name", String, WithSize(32)).Build()
	require.NoError(err)
	require.Equal(uint(32), f.Size)
}

func TestBuilderRejectsUnexpectedSize(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder("flag", Bool, WithSize(1)).Build()
	require.Error(err)
}

func TestBuilderValidatesScaleRequirement(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder("price", FixedDecimal, WithSize(10)).Build()
	require.Error(err, "FixedDecimal without scale must fail")

	f, err := NewBuilder("price", FixedDecimal, WithSize(10), WithScale(2)).Build()
	require.NoError(err)
	require.Equal(uint(2), f.Scale)
}

func TestBuilderRejectsInvalidName(t *testing.T) {
	require := require.New(t)

	_, err := NewBuilder("bad name!", Int32).Build()
	require.Error(err)
}

func TestFieldWidth(t *testing.T) {
	require := require.New(t)

	f, err := NewBuilder("n", Int32).Build()
	require.NoError(err)
	w, fixed := f.Width()
	require.True(fixed)
	require.Equal(4, w)

	vs, err := NewBuilder("desc", VString).Build()
	require.NoError(err)
	_, fixed = vs.Width()
	require.False(fixed)
}

func TestTypeStringRoundTrip(t *testing.T) {
	require := require.New(t)

	types := []Type{Bool, Byte, Int16, Int32, Int64, FixedDecimal, Float, Double,
		String, WString, VString, VWString, Date, Time, DateTime, Blob, SpatialObject}

	for _, typ := range types {
		require.Equal(typ, ParseType(typ.String()), "round trip for %s", typ)
	}
}

func TestParseTypeUnknownSpelling(t *testing.T) {
	require.New(t).Equal(Unknown, ParseType("not-a-real-type"))
}
