package header_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/yxdb/errs"
	"github.com/arloliu/yxdb/header"
)

func TestHeaderBytesLength(t *testing.T) {
	h := header.Header{FileID: header.MagicWithoutSpatialIndex}
	require.Len(t, h.Bytes(), header.Size)
}

func TestHeaderRoundTrip(t *testing.T) {
	require := require.New(t)

	h := header.Header{
		FileID:              header.MagicWithSpatialIndex,
		CreationDate:        1700000000,
		MetaInfoLength:      128,
		SpatialIndexPos:     600,
		RecordBlockIndexPos: 9000,
		NumRecords:          42,
		CompressionVersion:  1,
	}
	h.SetDescription("quarterly household counts")

	got, err := header.Parse(h.Bytes())
	require.NoError(err)
	require.Equal(h.FileID, got.FileID)
	require.Equal(h.CreationDate, got.CreationDate)
	require.Equal(h.MetaInfoLength, got.MetaInfoLength)
	require.Equal(h.SpatialIndexPos, got.SpatialIndexPos)
	require.Equal(h.RecordBlockIndexPos, got.RecordBlockIndexPos)
	require.Equal(h.NumRecords, got.NumRecords)
	require.True(got.HasSpatialIndex())
}

func TestHeaderParseRejectsWrongLength(t *testing.T) {
	_, err := header.Parse(make([]byte, 100))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderLen)
}

func TestHeaderParseRejectsBadMagic(t *testing.T) {
	h := header.Header{FileID: 0xdeadbeef}
	_, err := header.Parse(h.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestHeaderSetDescriptionTruncatesAndPads(t *testing.T) {
	require := require.New(t)

	h := &header.Header{FileID: header.MagicWithoutSpatialIndex}
	h.SetDescription("short")

	b := h.Bytes()
	require.Equal(byte('s'), b[0])
	require.Equal(byte(0), b[10], "unused description bytes must be zero-padded")

	h.SetDescription(strings.Repeat("x", 100))
	b = h.Bytes()
	require.Equal(byte('x'), b[63])
	require.Equal(byte(0x04), b[64], "a long description must be truncated before fileId")
}

func TestCalgaryHeaderRoundTrip(t *testing.T) {
	require := require.New(t)

	h := header.CalgaryHeader{IndexPosition: 12345}
	got, err := header.ParseCalgaryHeader(h.Bytes())
	require.NoError(err)
	require.Equal(h.IndexPosition, got.IndexPosition)
}

func TestCalgaryHeaderParseRejectsWrongLength(t *testing.T) {
	_, err := header.ParseCalgaryHeader(make([]byte, 10))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderLen)
}
