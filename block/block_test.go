package block_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/yxdb/block"
	"github.com/arloliu/yxdb/errs"
)

func TestEncodeDecodeCompressibleRoundTrip(t *testing.T) {
	require := require.New(t)

	payload := bytes.Repeat([]byte("columnar-record-payload"), 500)
	encoded := block.Encode(payload)

	decoded, err := block.Decode(encoded)
	require.NoError(err)
	require.Equal(payload, decoded)
}

func TestEncodeFallsBackToLiteralForIncompressibleData(t *testing.T) {
	require := require.New(t)

	// Random-looking, short data that LZF cannot shrink below len-1 bytes.
	payload := []byte{0x01, 0x02}

	encoded := block.Encode(payload)
	decoded, err := block.Decode(encoded)
	require.NoError(err)
	require.Equal(payload, decoded)
}

func TestDecodeRejectsTruncatedPrefix(t *testing.T) {
	_, err := block.Decode([]byte{0x01, 0x02})
	require.ErrorIs(t, err, errs.ErrTruncatedBlock)
}

func TestDecodeRejectsOverflowingLengthPrefix(t *testing.T) {
	require := require.New(t)

	raw := make([]byte, 4)
	raw[0], raw[1], raw[2], raw[3] = 0xff, 0xff, 0xff, 0x00 // declares far more bytes than present
	_, err := block.Decode(raw)
	require.ErrorIs(t, err, errs.ErrBlockLengthOverflow)
}

func TestIndexEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	idx := block.Index{512, 1024, 2048}
	decoded, err := block.DecodeIndex(idx.Encode())
	require.NoError(err)
	require.Equal(idx, decoded)
}

func TestIndexDecodeRejectsNonMonotone(t *testing.T) {
	require := require.New(t)

	idx := block.Index{512, 256}
	_, err := block.DecodeIndex(idx.Encode())
	require.ErrorIs(err, errs.ErrNonMonotoneIndex)
}

func TestIndexDecodeRejectsCountMismatch(t *testing.T) {
	require := require.New(t)

	idx := block.Index{512, 1024}
	raw := idx.Encode()
	_, err := block.DecodeIndex(raw[:len(raw)-4]) // truncate one offset
	require.ErrorIs(err, errs.ErrIndexCountMismatch)
}

func TestIndexRanges(t *testing.T) {
	require := require.New(t)

	idx := block.Index{100, 300, 700}
	ranges := idx.Ranges(1000)
	require.Equal([][2]uint64{{100, 300}, {300, 700}, {700, 1000}}, ranges)
}
