package packet

import (
	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/tlv"
)

// CreateInterest encodes an Interest TLV: INTEREST ‖ Name ‖ Nonce(4 bytes,
// drawn from nonceSrc) ‖ InterestLifetime(lifetimeMs). Selectors are
// never generated.
func CreateInterest(name ndn.Name, lifetimeMs uint64, nonceSrc NonceSource) []byte {
	nonce := nonceSrc.Next()

	nameLen := name.EncodingLength()
	nonceLen := tlv.BlockTotalLength(ndn.TypeNonce, 4)
	lifetimeValLen := tlv.NatLength(lifetimeMs)
	lifetimeLen := tlv.BlockTotalLength(ndn.TypeInterestLifetime, uint64(lifetimeValLen))

	valueLen := nameLen + nonceLen + lifetimeLen
	total := tlv.BlockTotalLength(ndn.TypeInterest, uint64(valueLen))

	buf := make([]byte, total)
	w := tlv.NewWriter(buf)
	_ = w.WriteTypeLength(ndn.TypeInterest, uint64(valueLen))

	name.EncodeInto(buf[w.Pos() : w.Pos()+nameLen]) //nolint:errcheck // buf is sized exactly
	w.Skip(nameLen)                                 //nolint:errcheck

	w.WriteTypeLength(ndn.TypeNonce, 4) //nolint:errcheck
	w.WriteBytes(nonce[:])              //nolint:errcheck

	w.WriteTypeLength(ndn.TypeInterestLifetime, uint64(lifetimeValLen)) //nolint:errcheck
	w.WriteNat(lifetimeMs)                                              //nolint:errcheck

	return buf
}

// interestFields parses all of an Interest's fields in one pass, used by
// the individual accessors below. Name must come first; an optional
// Selectors element may follow it and is skipped; Nonce and
// InterestLifetime must follow in that order.
func interestFields(block []byte) (name ndn.Name, nonce [4]byte, lifetimeMs uint64, err error) {
	r := tlv.NewReader(block)
	value, err := r.ExpectTypeLength(ndn.TypeInterest)
	if err != nil {
		return nil, nonce, 0, ErrMalformed{Field: "Interest", Reason: err.Error()}
	}

	vr := tlv.NewReader(value)
	nameTyp, nameVal, err := vr.ReadTypeLength()
	if err != nil || nameTyp != ndn.TypeName {
		return nil, nonce, 0, ErrMalformed{Field: "Name", Reason: "missing or malformed"}
	}
	name, err = ndn.DecodeNameValue(nameVal)
	if err != nil {
		return nil, nonce, 0, ErrMalformed{Field: "Name", Reason: err.Error()}
	}

	typ, val, err := vr.ReadTypeLength()
	if err != nil {
		return nil, nonce, 0, ErrMalformed{Field: "Nonce", Reason: "missing"}
	}
	if typ == ndn.TypeSelectors {
		// Selectors are recognized but never consulted for matching:
		// skip over them entirely.
		typ, val, err = vr.ReadTypeLength()
		if err != nil {
			return nil, nonce, 0, ErrMalformed{Field: "Nonce", Reason: "missing after selectors"}
		}
	}
	if typ != ndn.TypeNonce || len(val) != 4 {
		return nil, nonce, 0, ErrMalformed{Field: "Nonce", Reason: "wrong type or length"}
	}
	copy(nonce[:], val)

	typ, val, err = vr.ReadTypeLength()
	if err != nil || typ != ndn.TypeInterestLifetime {
		return nil, nonce, 0, ErrMalformed{Field: "InterestLifetime", Reason: "missing"}
	}
	lifetimeMs, err = tlv.DecodeNat(val)
	if err != nil {
		return nil, nonce, 0, ErrMalformed{Field: "InterestLifetime", Reason: err.Error()}
	}

	return name, nonce, lifetimeMs, nil
}

// InterestName returns the Interest's Name.
func InterestName(block []byte) (ndn.Name, error) {
	name, _, _, err := interestFields(block)
	return name, err
}

// InterestNonce returns the Interest's 4-byte Nonce.
func InterestNonce(block []byte) ([4]byte, error) {
	_, nonce, _, err := interestFields(block)
	return nonce, err
}

// InterestLifetime returns the Interest's declared lifetime in
// milliseconds.
func InterestLifetime(block []byte) (uint64, error) {
	_, _, lifetimeMs, err := interestFields(block)
	return lifetimeMs, err
}
