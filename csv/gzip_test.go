package csv_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/yxdb/csv"
)

func TestGzipRoundTrip(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	gw := csv.NewGzipWriter(&buf)
	_, err := gw.Write([]byte("id:int(32)|label:vstring\n1|one\n2|two\n"))
	require.NoError(err)
	require.NoError(gw.Close())

	gr, err := csv.OpenGzipReader(&buf)
	require.NoError(err)
	defer gr.Close()

	out, err := io.ReadAll(gr)
	require.NoError(err)
	require.Equal("id:int(32)|label:vstring\n1|one\n2|two\n", string(out))
}
