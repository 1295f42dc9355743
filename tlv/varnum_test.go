package tlv_test

import (
	"testing"

	"github.com/ndnlite/ndnlite/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarNumRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 252, 253, 254, 65535, 65536, 0xffffffff}
	for _, v := range values {
		n := tlv.VarNumLength(v)
		buf := make([]byte, n)
		written := tlv.EncodeVarNum(v, buf)
		require.Equal(t, n, written)

		got, consumed, err := tlv.DecodeVarNum(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, n, consumed)
	}
}

func TestVarNumLengthBoundaries(t *testing.T) {
	assert.Equal(t, 1, tlv.VarNumLength(0))
	assert.Equal(t, 1, tlv.VarNumLength(252))
	assert.Equal(t, 3, tlv.VarNumLength(253))
	assert.Equal(t, 3, tlv.VarNumLength(0xffff))
	assert.Equal(t, 5, tlv.VarNumLength(0x10000))
	assert.Equal(t, 5, tlv.VarNumLength(0xffffffff))
}

func TestDecodeVarNumTruncated(t *testing.T) {
	_, _, err := tlv.DecodeVarNum(nil)
	require.Error(t, err)

	// lead byte says 3-byte form but only 2 bytes present
	_, _, err = tlv.DecodeVarNum([]byte{253, 0x01})
	require.Error(t, err)
}

func TestDecodeVarNumRejects9ByteForm(t *testing.T) {
	_, _, err := tlv.DecodeVarNum([]byte{255, 0, 0, 0, 0, 0, 0, 0, 1})
	require.Error(t, err)
	var invalid tlv.ErrInvalidVarnum
	require.ErrorAs(t, err, &invalid)
}

func TestBlockTotalLength(t *testing.T) {
	// type=7 (1 byte varnum), length=0 -> 2 bytes total, no value
	assert.Equal(t, 2, tlv.BlockTotalLength(7, 0))
	// type=5, length=300 (3-byte varnum) -> 1 + 3 + 300
	assert.Equal(t, 1+3+300, tlv.BlockTotalLength(5, 300))
}

func TestExtractBlock(t *testing.T) {
	frame := []byte{0x07, 0x02, 'a', 'b', 0xff, 0xff} // Name TLV + trailing junk
	block, err := tlv.ExtractBlock(frame)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x07, 0x02, 'a', 'b'}, block)
}

func TestExtractBlockTruncated(t *testing.T) {
	frame := []byte{0x07, 0x05, 'a', 'b'} // claims length 5, only 2 present
	_, err := tlv.ExtractBlock(frame)
	require.Error(t, err)
}
