package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLZ4CodecRoundTrip(t *testing.T) {
	require := require.New(t)

	codec := NewLZ4Codec()
	payload := bytes.Repeat([]byte("calgary-vector-bytes"), 300)

	compressed, err := codec.Compress(payload)
	require.NoError(err)
	require.Less(len(compressed), len(payload))

	decompressed, err := codec.Decompress(compressed, len(payload))
	require.NoError(err)
	require.Equal(payload, decompressed)
}

func TestLZ4CodecEmptyInput(t *testing.T) {
	require := require.New(t)

	codec := NewLZ4Codec()

	compressed, err := codec.Compress(nil)
	require.NoError(err)
	require.Empty(compressed)

	decompressed, err := codec.Decompress(nil, 0)
	require.NoError(err)
	require.Empty(decompressed)
}
