package iso8583

import (
	"encoding/hex"
	"strings"

	"github.com/moov-io/bertlv"
)

// TLVEntry is one tag/value pair of a constructed (ClassTLV) field's
// content, e.g. one EMV data object of DE 55's ICC data.
type TLVEntry struct {
	Tag   string // uppercase hex tag, e.g. "9F26"
	Value []byte
}

// BuildTLVValue BER-TLV-encodes entries and returns the hex string
// suitable for Message.Set on a ClassTLV field.
func BuildTLVValue(entries []TLVEntry) (string, error) {
	tlvs := make([]bertlv.TLV, len(entries))
	for i, e := range entries {
		tlvs[i] = bertlv.TLV{Tag: strings.ToUpper(e.Tag), Value: e.Value}
	}
	raw, err := bertlv.Encode(tlvs)
	if err != nil {
		return "", wrapErr(KindInvalidValue, "tlv", -1, err)
	}
	return hex.EncodeToString(raw), nil
}

// ExtractTLVEntries decodes a ClassTLV field's hex-string value back
// into its constituent tag/value pairs, in wire order.
func ExtractTLVEntries(value string) ([]TLVEntry, error) {
	raw, err := hex.DecodeString(value)
	if err != nil {
		return nil, wrapErr(KindInvalidValue, "tlv", -1, err)
	}
	packets, err := bertlv.Decode(raw)
	if err != nil {
		return nil, wrapErr(KindInvalidValue, "tlv", -1, err)
	}
	out := make([]TLVEntry, len(packets))
	for i, p := range packets {
		out[i] = TLVEntry{Tag: strings.ToUpper(p.Tag), Value: p.Value}
	}
	return out, nil
}

// TLVTag scans a ClassTLV field's value for one tag and returns its raw
// payload, matching gregLibert-smart-card/pkg/tlv's GetValue helper.
func TLVTag(value, tag string) ([]byte, error) {
	entries, err := ExtractTLVEntries(value)
	if err != nil {
		return nil, err
	}
	tag = strings.ToUpper(tag)
	for _, e := range entries {
		if e.Tag == tag {
			return e.Value, nil
		}
	}
	return nil, newErr(KindUnknownField, tag, -1)
}
