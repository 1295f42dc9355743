package sign_test

import (
	"testing"

	"github.com/ndnlite/ndnlite/ndn/sign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestSignAndVerify(t *testing.T) {
	covered := []byte("name||metainfo||content||siginfo")
	signer := sign.NewDigestSha256Signer()
	sig, err := signer.Sign(covered)
	require.NoError(t, err)
	assert.Len(t, sig, signer.EstimateSize())

	require.NoError(t, sign.Verify(signer.Type(), covered, sig, nil))

	tampered := append([]byte(nil), covered...)
	tampered[0] ^= 0xff
	require.ErrorIs(t, sign.Verify(signer.Type(), tampered, sig, nil), sign.ErrVerifyFailed)
}

func TestHmacSignAndVerify(t *testing.T) {
	key := []byte{0xa1, 0xb9, 0xc8, 0xd7, 0xe0, 0xf3, 0xf2, 0xe4}
	covered := []byte("name||metainfo||content||siginfo")

	signer, err := sign.NewHmacSha256Signer(key)
	require.NoError(t, err)
	sig, err := signer.Sign(covered)
	require.NoError(t, err)

	require.NoError(t, sign.Verify(signer.Type(), covered, sig, key))

	sig[len(sig)-1] ^= 0xff
	require.ErrorIs(t, sign.Verify(signer.Type(), covered, sig, key), sign.ErrVerifyFailed)
}

func TestHmacRejectsEmptyKey(t *testing.T) {
	_, err := sign.NewHmacSha256Signer(nil)
	require.Error(t, err)
}

func TestEcdsaSignAndVerify(t *testing.T) {
	signer, pub, err := sign.GenerateEcdsaP256Key()
	require.NoError(t, err)
	assert.Len(t, pub, 64)

	covered := []byte("name||metainfo||content||siginfo")
	sig, err := signer.Sign(covered)
	require.NoError(t, err)
	assert.Len(t, sig, 64)

	require.NoError(t, sign.Verify(signer.Type(), covered, sig, pub))

	flipped := append([]byte(nil), covered...)
	flipped[len(flipped)-1] ^= 0xff
	require.ErrorIs(t, sign.Verify(signer.Type(), flipped, sig, pub), sign.ErrVerifyFailed)
}

func TestEcdsaRejectsShortKey(t *testing.T) {
	_, err := sign.ParseEcdsaP256PrivateKey([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestVerifyUnsupportedAlgorithm(t *testing.T) {
	err := sign.Verify(99, []byte("x"), []byte("y"), nil)
	var unsupported sign.ErrUnsupportedAlgorithm
	require.ErrorAs(t, err, &unsupported)
}
