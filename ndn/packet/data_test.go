package packet

import (
	"crypto/sha256"
	"testing"

	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/ndn/sign"
	"github.com/stretchr/testify/require"
)

func fixtureName(t *testing.T) ndn.Name {
	t.Helper()
	name, err := ndn.NameFromURI("/a/b/c/d")
	require.NoError(t, err)
	return name
}

var fixtureContent = []byte{0x91, 0x82, 0x73, 0x64, 0x55, 0x44, 0x33, 0x22, 0x10}

func fixtureMetaInfo() MetaInfo {
	return MetaInfo{ContentType: 0, FreshnessPeriod: 0x07102034}
}

// TestDataDigestWireLayout pins the exact encoding of a digest-signed
// Data packet: the block is 77 bytes and its last 32 bytes equal SHA-256
// of bytes [2:43] - the signed region (everything after the outer
// {DATA,length} header through the end of SignatureInfo).
func TestDataDigestWireLayout(t *testing.T) {
	block, err := CreateData(fixtureName(t), fixtureMetaInfo(), fixtureContent, sign.NewDigestSha256Signer())
	require.NoError(t, err)
	require.Len(t, block, 77)

	want := sha256.Sum256(block[2:43])
	require.Equal(t, want[:], block[45:77])

	name, err := DataName(block)
	require.NoError(t, err)
	require.True(t, name.Equal(fixtureName(t)))

	meta, err := DataMetaInfo(block)
	require.NoError(t, err)
	require.Equal(t, fixtureMetaInfo(), meta)

	content, err := DataContent(block)
	require.NoError(t, err)
	require.Equal(t, fixtureContent, content)

	require.NoError(t, VerifyDataSignature(block, nil))
}

// TestDataHmacSignAndVerify signs the same fixture with HMAC_SHA256.
// Verification succeeds against the untouched block and fails once a
// byte of the signature value is flipped.
func TestDataHmacSignAndVerify(t *testing.T) {
	key := []byte{0xa1, 0xb9, 0xc8, 0xd7, 0xe0, 0xf3, 0xf2, 0xe4}
	signer, err := sign.NewHmacSha256Signer(key)
	require.NoError(t, err)

	block, err := CreateData(fixtureName(t), fixtureMetaInfo(), fixtureContent, signer)
	require.NoError(t, err)
	require.Len(t, block, 77)

	require.NoError(t, VerifyDataSignature(block, key))

	tampered := make([]byte, len(block))
	copy(tampered, block)
	tampered[70] ^= 0xFF
	require.ErrorIs(t, VerifyDataSignature(tampered, key), sign.ErrVerifyFailed)
}

// TestDataEcdsaSignAndVerify exercises the third supported algorithm:
// verification succeeds against an untampered block and fails once any
// byte of the signed region is flipped.
func TestDataEcdsaSignAndVerify(t *testing.T) {
	signer, pub, err := sign.GenerateEcdsaP256Key()
	require.NoError(t, err)

	block, err := CreateData(fixtureName(t), fixtureMetaInfo(), fixtureContent, signer)
	require.NoError(t, err)
	require.NoError(t, VerifyDataSignature(block, pub))

	tampered := make([]byte, len(block))
	copy(tampered, block)
	tampered[3] ^= 0xFF
	require.ErrorIs(t, VerifyDataSignature(tampered, pub), sign.ErrVerifyFailed)
}

// TestDataNoMetaInfo exercises the absent-fields MetaInfo path; the
// fixture above only covers the both-present case.
func TestDataNoMetaInfo(t *testing.T) {
	name, err := ndn.NameFromURI("/x")
	require.NoError(t, err)

	block, err := CreateData(name, NoMetaInfo, []byte("hi"), sign.NewDigestSha256Signer())
	require.NoError(t, err)

	meta, err := DataMetaInfo(block)
	require.NoError(t, err)
	require.Equal(t, NoMetaInfo, meta)

	content, err := DataContent(block)
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), content)

	require.NoError(t, VerifyDataSignature(block, nil))
}

func TestDataRejectsTruncatedBlock(t *testing.T) {
	block, err := CreateData(fixtureName(t), fixtureMetaInfo(), fixtureContent, sign.NewDigestSha256Signer())
	require.NoError(t, err)

	_, err = DataName(block[:10])
	require.Error(t, err)
}
