package iso8583

// FieldDefinition binds a FieldCodec to a data-field number and a
// human name, per spec.md §3's "Field definition (BMP)" triple. It is
// immutable once registered by a FamilyBuilder; Message instances refer
// to it by pointer and keep their own values in a parallel map, rather
// than cloning it per spec.md §9's "clone-on-bind" design note. Aliases
// are tracked separately in Family.aliases, not on the definition
// itself, since one field may carry several aliases.
type FieldDefinition struct {
	Number int
	Name   string
	Codec  FieldCodec
}

// HeaderDefinition binds a FieldCodec to a string header key. Header
// fields are always Fixed-length per spec.md §4.4, so a family's header
// section has a deterministic total byte length.
type HeaderDefinition struct {
	Key   string
	Name  string
	Codec FieldCodec
}

// formatIntToBytes converts value to its ASCII decimal representation in
// buf, left-zero-padding to width when width > len(digits). Used by
// Message's integer convenience setters (Message.SetInt).
func formatIntToBytes(buf []byte, value int, width int) int {
	if value == 0 {
		if width > 0 {
			for i := 0; i < width; i++ {
				buf[i] = '0'
			}
			return width
		}
		buf[0] = '0'
		return 1
	}

	i := len(buf) - 1
	for value > 0 {
		buf[i] = byte(value%10 + '0')
		value /= 10
		i--
	}

	digits := len(buf) - 1 - i
	if width > digits {
		padding := width - digits
		copy(buf[padding:], buf[i+1:])
		for j := 0; j < padding; j++ {
			buf[j] = '0'
		}
		return width
	}

	copy(buf, buf[i+1:])
	return digits
}
