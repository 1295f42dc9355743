// Package sign implements the three Data signature algorithms:
// DIGEST_SHA256 (no key), HMAC_SHA256 (symmetric key), and ECDSA_SHA256
// (secp256r1). Each signer exposes Type/EstimateSize/Sign; verification
// goes through the package-level Verify.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/ndnlite/ndnlite/ndn"
)

// ErrInvalidKey is returned when key material does not match what an
// algorithm requires: an ECDSA private key that is not 32 bytes, or an
// empty HMAC key.
type ErrInvalidKey struct {
	Algorithm uint64
	Reason    string
}

func (e ErrInvalidKey) Error() string {
	return fmt.Sprintf("sign: invalid key for algorithm %d: %s", e.Algorithm, e.Reason)
}

// ErrUnsupportedAlgorithm is returned for a SignatureType the codec does
// not recognize.
type ErrUnsupportedAlgorithm struct {
	Algorithm uint64
}

func (e ErrUnsupportedAlgorithm) Error() string {
	return fmt.Sprintf("sign: unsupported signature algorithm %d", e.Algorithm)
}

// ErrVerifyFailed is returned when a signature does not validate.
var ErrVerifyFailed = fmt.Errorf("sign: signature verification failed")

// Signer produces a signature value over the signed portion of a Data
// packet (Name||Metainfo||Content||SignatureInfo).
type Signer interface {
	// Type returns the SignatureType code this signer produces.
	Type() uint64
	// EstimateSize returns the exact size in bytes of the signature
	// value this signer will produce - 32 for the SHA-256 family, 64
	// for ECDSA.
	EstimateSize() int
	// Sign computes the signature over covered.
	Sign(covered []byte) ([]byte, error)
}

// digestSigner implements DIGEST_SHA256: a plain SHA-256 hash, no key.
type digestSigner struct{}

// NewDigestSha256Signer returns a Signer for the DIGEST_SHA256 algorithm.
func NewDigestSha256Signer() Signer { return digestSigner{} }

func (digestSigner) Type() uint64      { return ndn.SigTypeDigestSha256 }
func (digestSigner) EstimateSize() int { return sha256.Size }
func (digestSigner) Sign(covered []byte) ([]byte, error) {
	h := sha256.Sum256(covered)
	return h[:], nil
}

// hmacSigner implements HMAC_SHA256 with a caller-supplied symmetric key.
type hmacSigner struct {
	key []byte
}

// NewHmacSha256Signer returns a Signer for the HMAC_SHA256 algorithm.
// The key must be non-empty.
func NewHmacSha256Signer(key []byte) (Signer, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey{Algorithm: ndn.SigTypeHmacSha256, Reason: "key must be non-empty"}
	}
	return hmacSigner{key: key}, nil
}

func (hmacSigner) Type() uint64      { return ndn.SigTypeHmacSha256 }
func (hmacSigner) EstimateSize() int { return sha256.Size }

func (s hmacSigner) Sign(covered []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(covered) //nolint:errcheck // hash.Hash never errors
	return mac.Sum(nil), nil
}
