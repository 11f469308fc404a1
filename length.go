package iso8583

// FieldCodec is the composed codec described in spec.md §9's design note:
// a length-discipline wrapper around a content codec. One FieldCodec value
// is shared, read-only, by every field/header/MTI definition that uses it;
// FieldDefinition attaches the name and number.
type FieldCodec struct {
	Class   ContentClass
	Length  LengthDiscipline
	Len     int // Fixed: exact byte length of the encoded content
	MaxLen  int // LLVAR/LLLVAR: upper bound on encoded content byte length
	Padding Padding
}

// defaultPadding returns the class's conventional padding rule, used
// when a FieldCodec does not set an explicit Padding option.
func defaultPadding(class ContentClass) Padding {
	switch class {
	case ClassN:
		return PadLeftZero
	case ClassAN, ClassANS:
		return PadRightSpace
	default:
		return PadNone
	}
}

func (c FieldCodec) padding() Padding {
	if c.Padding != PadNone {
		return c.Padding
	}
	return defaultPadding(c.Class)
}

func (c FieldCodec) contentWidth() int {
	if c.Length == Fixed {
		return c.Len
	}
	return 0
}

// Encode produces the complete wire bytes for value: the length prefix
// (for LLVAR/LLLVAR) followed by the encoded content.
func (c FieldCodec) Encode(value string) ([]byte, error) {
	raw, err := contentEncode(c.Class, c.padding(), value, c.contentWidth())
	if err != nil {
		return nil, err
	}
	switch c.Length {
	case Fixed:
		return raw, nil
	case LLVAR, LLLVAR:
		if c.MaxLen > 0 && len(raw) > c.MaxLen {
			return nil, ErrLengthOverflow
		}
		width := c.Length.prefixWidth()
		if len(raw) >= pow10(width) {
			return nil, ErrLengthOverflow
		}
		out := make([]byte, 0, width+len(raw))
		out = append(out, formatDecimalPrefix(len(raw), width)...)
		out = append(out, raw...)
		return out, nil
	default:
		return nil, ErrInvalidValue
	}
}

// Parse consumes exactly the bytes belonging to this field from the
// front of data, returning the decoded value and the number of bytes
// consumed.
func (c FieldCodec) Parse(data []byte, stripPad bool) (value string, consumed int, err error) {
	switch c.Length {
	case Fixed:
		if len(data) < c.Len {
			return "", 0, ErrTruncated
		}
		v, err := contentDecode(c.Class, data[:c.Len], stripPad)
		if err != nil {
			return "", 0, err
		}
		return v, c.Len, nil
	case LLVAR, LLLVAR:
		width := c.Length.prefixWidth()
		if len(data) < width {
			return "", 0, ErrTruncated
		}
		n, err := parseDecimalPrefix(data[:width])
		if err != nil {
			return "", 0, err
		}
		if c.MaxLen > 0 && n > c.MaxLen {
			return "", 0, ErrLengthOverflow
		}
		if len(data) < width+n {
			return "", 0, ErrTruncated
		}
		v, err := contentDecode(c.Class, data[width:width+n], stripPad)
		if err != nil {
			return "", 0, err
		}
		return v, width + n, nil
	default:
		return "", 0, ErrInvalidValue
	}
}

func pow10(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}
