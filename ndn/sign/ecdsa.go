package sign

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/ndnlite/ndnlite/ndn"
)

const ecdsaFieldWidth = 32 // secp256r1 coordinate/scalar width in bytes

// ecdsaSigner implements ECDSA_SHA256 on secp256r1, producing a fixed
// 64-byte signature (32-byte r, 32-byte s, both zero-padded big-endian),
// not an ASN.1 DER encoding.
type ecdsaSigner struct {
	priv *ecdsa.PrivateKey
}

// ParseEcdsaP256PrivateKey builds a signer from a raw private scalar,
// which must be exactly 32 bytes.
func ParseEcdsaP256PrivateKey(key []byte) (Signer, error) {
	if len(key) != ecdsaFieldWidth {
		return nil, ErrInvalidKey{Algorithm: ndn.SigTypeEcdsaSha256, Reason: "key must be 32 bytes"}
	}
	curve := elliptic.P256()
	d := new(big.Int).SetBytes(key)
	x, y := curve.ScalarBaseMult(key)
	priv := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         d,
	}
	return &ecdsaSigner{priv: priv}, nil
}

// GenerateEcdsaP256Key creates a fresh secp256r1 key pair, returning the
// signer and the 64-byte raw public key (X||Y) for distribution to peers
// that need to verify.
func GenerateEcdsaP256Key() (signer Signer, rawPublicKey []byte, err error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return &ecdsaSigner{priv: priv}, marshalPublicKey(&priv.PublicKey), nil
}

func marshalPublicKey(pub *ecdsa.PublicKey) []byte {
	out := make([]byte, 2*ecdsaFieldWidth)
	pub.X.FillBytes(out[:ecdsaFieldWidth])
	pub.Y.FillBytes(out[ecdsaFieldWidth:])
	return out
}

func (s *ecdsaSigner) Type() uint64      { return ndn.SigTypeEcdsaSha256 }
func (s *ecdsaSigner) EstimateSize() int { return 2 * ecdsaFieldWidth }

func (s *ecdsaSigner) Sign(covered []byte) ([]byte, error) {
	digest := sha256.Sum256(covered)
	r, sVal, err := ecdsa.Sign(rand.Reader, s.priv, digest[:])
	if err != nil {
		return nil, err
	}
	out := make([]byte, 2*ecdsaFieldWidth)
	r.FillBytes(out[:ecdsaFieldWidth])
	sVal.FillBytes(out[ecdsaFieldWidth:])
	return out, nil
}

// verifyEcdsa validates a 64-byte raw (r||s) signature over covered's
// SHA-256 digest, using a 64-byte raw (X||Y) public key.
func verifyEcdsa(covered, sigValue, pubKey []byte) bool {
	if len(sigValue) != 2*ecdsaFieldWidth || len(pubKey) != 2*ecdsaFieldWidth {
		return false
	}
	r := new(big.Int).SetBytes(sigValue[:ecdsaFieldWidth])
	s := new(big.Int).SetBytes(sigValue[ecdsaFieldWidth:])
	x := new(big.Int).SetBytes(pubKey[:ecdsaFieldWidth])
	y := new(big.Int).SetBytes(pubKey[ecdsaFieldWidth:])
	pub := &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}

	digest := sha256.Sum256(covered)
	return ecdsa.Verify(pub, digest[:], r, s)
}
