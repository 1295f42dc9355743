// Package ndn implements the NDN name model: components, names, URI
// conversion, canonical ordering, and prefix matching, plus the wire-level
// TLV type constants shared by the packet codecs in ndn/packet.
package ndn

// Wire-format TLV type numbers.
const (
	TypeInterest         uint64 = 5
	TypeData             uint64 = 6
	TypeName             uint64 = 7
	TypeNameComponent    uint64 = 8
	TypeSelectors        uint64 = 9
	TypeNonce            uint64 = 10
	TypeInterestLifetime uint64 = 11
	TypeMetaInfo         uint64 = 20
	TypeContent          uint64 = 21
	TypeSignatureInfo    uint64 = 22
	TypeSignatureValue   uint64 = 23
	TypeContentType      uint64 = 24
	TypeFreshnessPeriod  uint64 = 25
	TypeSignatureType    uint64 = 27
)

// SignatureType codes.
const (
	SigTypeDigestSha256 uint64 = 0
	SigTypeEcdsaSha256  uint64 = 3
	SigTypeHmacSha256   uint64 = 4
)
