package packet

import (
	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/tlv"
)

// MetaInfo holds Data's two optional fields: ContentType and
// FreshnessPeriod (in milliseconds). -1 means absent for either field.
type MetaInfo struct {
	ContentType     int64
	FreshnessPeriod int64
}

// NoMetaInfo is a MetaInfo with both fields absent.
var NoMetaInfo = MetaInfo{ContentType: -1, FreshnessPeriod: -1}

func (m MetaInfo) encodingLength() int {
	valueLen := 0
	if m.ContentType >= 0 {
		valueLen += tlv.BlockTotalLength(ndn.TypeContentType, uint64(tlv.NatLength(uint64(m.ContentType))))
	}
	if m.FreshnessPeriod >= 0 {
		valueLen += tlv.BlockTotalLength(ndn.TypeFreshnessPeriod, uint64(tlv.NatLength(uint64(m.FreshnessPeriod))))
	}
	return tlv.BlockTotalLength(ndn.TypeMetaInfo, uint64(valueLen))
}

func (m MetaInfo) encodeInto(buf []byte) int {
	valueLen := 0
	if m.ContentType >= 0 {
		valueLen += tlv.BlockTotalLength(ndn.TypeContentType, uint64(tlv.NatLength(uint64(m.ContentType))))
	}
	if m.FreshnessPeriod >= 0 {
		valueLen += tlv.BlockTotalLength(ndn.TypeFreshnessPeriod, uint64(tlv.NatLength(uint64(m.FreshnessPeriod))))
	}

	w := tlv.NewWriter(buf)
	w.WriteTypeLength(ndn.TypeMetaInfo, uint64(valueLen)) //nolint:errcheck
	if m.ContentType >= 0 {
		l := tlv.NatLength(uint64(m.ContentType))
		w.WriteTypeLength(ndn.TypeContentType, uint64(l)) //nolint:errcheck
		w.WriteNat(uint64(m.ContentType))                 //nolint:errcheck
	}
	if m.FreshnessPeriod >= 0 {
		l := tlv.NatLength(uint64(m.FreshnessPeriod))
		w.WriteTypeLength(ndn.TypeFreshnessPeriod, uint64(l)) //nolint:errcheck
		w.WriteNat(uint64(m.FreshnessPeriod))                 //nolint:errcheck
	}
	return w.Pos()
}

// decodeMetaInfoValue parses a MetaInfo TLV's inner value bytes.
func decodeMetaInfoValue(value []byte) (MetaInfo, error) {
	m := NoMetaInfo
	r := tlv.NewReader(value)
	for !r.AtEnd() {
		typ, val, err := r.ReadTypeLength()
		if err != nil {
			return MetaInfo{}, ErrMalformed{Field: "MetaInfo", Reason: err.Error()}
		}
		switch typ {
		case ndn.TypeContentType:
			v, err := tlv.DecodeNat(val)
			if err != nil {
				return MetaInfo{}, ErrMalformed{Field: "ContentType", Reason: err.Error()}
			}
			m.ContentType = int64(v)
		case ndn.TypeFreshnessPeriod:
			v, err := tlv.DecodeNat(val)
			if err != nil {
				return MetaInfo{}, ErrMalformed{Field: "FreshnessPeriod", Reason: err.Error()}
			}
			m.FreshnessPeriod = int64(v)
		}
	}
	return m, nil
}
