package packet

import (
	"fmt"

	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/ndn/sign"
	"github.com/ndnlite/ndnlite/tlv"
)

// CreateData encodes a Data TLV: DATA ‖ Name ‖ MetaInfo ‖ Content ‖
// SignatureInfo ‖ SignatureValue. The signature is computed over the
// signed region - every byte after the outer {DATA,length} header up to
// and including SignatureInfo - using signer.
func CreateData(name ndn.Name, meta MetaInfo, content []byte, signer sign.Signer) ([]byte, error) {
	nameLen := name.EncodingLength()
	metaLen := meta.encodingLength()
	contentLen := tlv.BlockTotalLength(ndn.TypeContent, uint64(len(content)))
	sigInfoLen := tlv.BlockTotalLength(ndn.TypeSignatureInfo, 3) // always 5 bytes total
	sigValLen := tlv.BlockTotalLength(ndn.TypeSignatureValue, uint64(signer.EstimateSize()))

	dl := nameLen + metaLen + contentLen + sigInfoLen + sigValLen
	total := tlv.BlockTotalLength(ndn.TypeData, uint64(dl))

	buf := make([]byte, total)
	w := tlv.NewWriter(buf)
	w.WriteTypeLength(ndn.TypeData, uint64(dl)) //nolint:errcheck
	coveredStart := w.Pos()

	name.EncodeInto(buf[w.Pos() : w.Pos()+nameLen]) //nolint:errcheck
	w.Skip(nameLen)                                 //nolint:errcheck

	meta.encodeInto(buf[w.Pos() : w.Pos()+metaLen])
	w.Skip(metaLen) //nolint:errcheck

	w.WriteTypeLength(ndn.TypeContent, uint64(len(content))) //nolint:errcheck
	w.WriteBytes(content)                                    //nolint:errcheck

	w.WriteTypeLength(ndn.TypeSignatureInfo, 3)           //nolint:errcheck
	w.WriteTypeLength(ndn.TypeSignatureType, 1)           //nolint:errcheck
	w.WriteNat(signer.Type())                             //nolint:errcheck
	coveredEnd := w.Pos()

	sig, err := signer.Sign(buf[coveredStart:coveredEnd])
	if err != nil {
		return nil, err
	}

	w.WriteTypeLength(ndn.TypeSignatureValue, uint64(len(sig))) //nolint:errcheck
	w.WriteBytes(sig)                                           //nolint:errcheck

	return buf, nil
}

// dataFields locates every field of a Data packet by walking its TLVs in
// strict order, returning the decoded Name/MetaInfo/Content, the signed
// region, the signature algorithm, and the signature value.
func dataFields(block []byte) (name ndn.Name, meta MetaInfo, content []byte, sigAlgorithm uint64, sigValue []byte, signedRegion []byte, err error) {
	r := tlv.NewReader(block)
	value, err := r.ExpectTypeLength(ndn.TypeData)
	if err != nil {
		return nil, MetaInfo{}, nil, 0, nil, nil, ErrMalformed{Field: "Data", Reason: err.Error()}
	}

	vr := tlv.NewReader(value)

	nameTyp, nameVal, err := vr.ReadTypeLength()
	if err != nil || nameTyp != ndn.TypeName {
		return nil, MetaInfo{}, nil, 0, nil, nil, ErrMalformed{Field: "Name", Reason: "missing or malformed"}
	}
	name, err = ndn.DecodeNameValue(nameVal)
	if err != nil {
		return nil, MetaInfo{}, nil, 0, nil, nil, ErrMalformed{Field: "Name", Reason: err.Error()}
	}

	metaTyp, metaVal, err := vr.ReadTypeLength()
	if err != nil || metaTyp != ndn.TypeMetaInfo {
		return nil, MetaInfo{}, nil, 0, nil, nil, ErrMalformed{Field: "MetaInfo", Reason: "missing"}
	}
	meta, err = decodeMetaInfoValue(metaVal)
	if err != nil {
		return nil, MetaInfo{}, nil, 0, nil, nil, err
	}

	contentTyp, contentVal, err := vr.ReadTypeLength()
	if err != nil || contentTyp != ndn.TypeContent {
		return nil, MetaInfo{}, nil, 0, nil, nil, ErrMalformed{Field: "Content", Reason: "missing"}
	}
	content = contentVal

	sigInfoTyp, sigInfoVal, err := vr.ReadTypeLength()
	if err != nil || sigInfoTyp != ndn.TypeSignatureInfo {
		return nil, MetaInfo{}, nil, 0, nil, nil, ErrMalformed{Field: "SignatureInfo", Reason: "missing"}
	}
	sigInfoEnd := vr.Pos()
	sigAlgorithm, err = decodeSignatureInfo(sigInfoVal)
	if err != nil {
		return nil, MetaInfo{}, nil, 0, nil, nil, err
	}

	sigValTyp, sigVal, err := vr.ReadTypeLength()
	if err != nil || sigValTyp != ndn.TypeSignatureValue {
		return nil, MetaInfo{}, nil, 0, nil, nil, ErrMalformed{Field: "SignatureValue", Reason: "missing"}
	}
	sigValue = sigVal

	return name, meta, content, sigAlgorithm, sigValue, value[:sigInfoEnd], nil
}

func decodeSignatureInfo(value []byte) (uint64, error) {
	r := tlv.NewReader(value)
	typ, val, err := r.ReadTypeLength()
	if err != nil || typ != ndn.TypeSignatureType {
		return 0, ErrMalformed{Field: "SignatureType", Reason: "missing"}
	}
	return tlv.DecodeNat(val)
}

// DataName returns the Data's Name.
func DataName(block []byte) (ndn.Name, error) {
	name, _, _, _, _, _, err := dataFields(block)
	return name, err
}

// DataMetaInfo returns the Data's MetaInfo.
func DataMetaInfo(block []byte) (MetaInfo, error) {
	_, meta, _, _, _, _, err := dataFields(block)
	return meta, err
}

// DataContent returns the Data's Content bytes (a view into block, not a
// copy).
func DataContent(block []byte) ([]byte, error) {
	_, _, content, _, _, _, err := dataFields(block)
	return content, err
}

// VerifyDataSignature recomputes the signature over the Data's signed
// region and compares it against the embedded SignatureValue, using the
// given key (ignored for DIGEST_SHA256). A block that cannot be parsed
// far enough to locate its signature also fails with sign.ErrVerifyFailed,
// wrapping the parse error. Verification failure never affects routing:
// it is purely an app-level operation.
func VerifyDataSignature(block []byte, key []byte) error {
	_, _, _, algorithm, sigValue, signedRegion, err := dataFields(block)
	if err != nil {
		return fmt.Errorf("%w: %w", sign.ErrVerifyFailed, err)
	}
	return sign.Verify(algorithm, signedRegion, sigValue, key)
}
