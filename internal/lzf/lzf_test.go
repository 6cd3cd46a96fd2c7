package lzf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	require := require.New(t)

	cases := map[string][]byte{
		"empty":          {},
		"single byte":    []byte("a"),
		"short literal":  []byte("hello"),
		"repeated runs":  bytes.Repeat([]byte("abcd"), 200),
		"long literal":   []byte(strings.Repeat("xyz123", 50)),
		"binary garbage": {0x00, 0xff, 0x10, 0x00, 0xff, 0x10, 0x00, 0xff, 0x10, 0xab, 0xcd},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			compressed, ok := Compress(input, len(input)+64)
			require.True(ok, "compress should fit within budget")

			decoded, ok := Decompress(compressed, len(input))
			require.True(ok)
			require.Equal(input, decoded)
		})
	}
}

func TestCompressRespectsMaxOut(t *testing.T) {
	require := require.New(t)

	input := bytes.Repeat([]byte{0x5a}, 4096)
	_, ok := Compress(input, 1)
	require.False(ok, "a 1-byte budget cannot hold any encoding of 4096 bytes")
}

func TestCompressHighlyCompressible(t *testing.T) {
	require := require.New(t)

	input := bytes.Repeat([]byte("A"), 10000)
	compressed, ok := Compress(input, len(input)-1)
	require.True(ok)
	require.Less(len(compressed), len(input))

	decoded, ok := Decompress(compressed, len(input))
	require.True(ok)
	require.Equal(input, decoded)
}

func TestDecompressRejectsOversizedOutput(t *testing.T) {
	require := require.New(t)

	input := bytes.Repeat([]byte("repeat-me-"), 500)
	compressed, ok := Compress(input, len(input))
	require.True(ok)

	_, ok = Decompress(compressed, 10)
	require.False(ok, "decompress must fail rather than overrun a too-small buffer")
}
