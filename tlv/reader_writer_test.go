package tlv_test

import (
	"testing"

	"github.com/ndnlite/ndnlite/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	// Encode a fake element: type=8, value="ab"
	total := tlv.BlockTotalLength(8, 2)
	buf := make([]byte, total)
	w := tlv.NewWriter(buf)
	require.NoError(t, w.WriteTypeLength(8, 2))
	require.NoError(t, w.WriteBytes([]byte("ab")))
	assert.Equal(t, total, w.Pos())

	r := tlv.NewReader(w.Bytes())
	typ, val, err := r.ReadTypeLength()
	require.NoError(t, err)
	assert.Equal(t, uint64(8), typ)
	assert.Equal(t, []byte("ab"), val)
	assert.True(t, r.AtEnd())
}

func TestReaderExpectTypeLengthMismatch(t *testing.T) {
	buf := []byte{0x08, 0x01, 'x'}
	r := tlv.NewReader(buf)
	_, err := r.ExpectTypeLength(7)
	require.Error(t, err)
}
