package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/ndnlite/ndnlite/ndn"
)

// Verify checks sigValue against covered for the named algorithm. key is
// ignored for DIGEST_SHA256, is the symmetric key for HMAC_SHA256, and is
// the 64-byte raw public key for ECDSA_SHA256. Returns ErrVerifyFailed on
// mismatch, ErrUnsupportedAlgorithm for an unrecognized algorithm code.
func Verify(algorithm uint64, covered, sigValue, key []byte) error {
	var ok bool
	switch algorithm {
	case ndn.SigTypeDigestSha256:
		sum := sha256.Sum256(covered)
		ok = subtle.ConstantTimeCompare(sum[:], sigValue) == 1
	case ndn.SigTypeHmacSha256:
		mac := hmac.New(sha256.New, key)
		mac.Write(covered) //nolint:errcheck // hash.Hash never errors
		ok = hmac.Equal(mac.Sum(nil), sigValue)
	case ndn.SigTypeEcdsaSha256:
		ok = verifyEcdsa(covered, sigValue, key)
	default:
		return ErrUnsupportedAlgorithm{Algorithm: algorithm}
	}
	if !ok {
		return ErrVerifyFailed
	}
	return nil
}
