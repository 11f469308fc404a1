package iso8583

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// sensitiveFields lists the data-field numbers masked by Describe: PAN
// (2), track 2 (35), track 1 (45 in some dialects), PIN block-adjacent
// track data (52 carries the PIN block itself and is masked too).
var sensitiveFields = map[int]bool{2: true, 35: true, 45: true, 52: true}

// Message is the per-instance object described in spec.md §3: a current
// MTI, a value map for data fields, and a value map for header fields,
// all bound to one shared, read-only Family. It is not safe for
// concurrent use by multiple goroutines (spec.md §5).
type Message struct {
	family  *Family
	mti     string
	values  map[int]string
	headers map[string]string
	bitmap  *Bitmap
	traceID string
}

func newTraceID() string {
	return uuid.New().String()
}

// TraceID returns the correlation identifier assigned to this message
// for log correlation. It is never part of the wire format.
func (m *Message) TraceID() string { return m.traceID }

type resolvedKey struct {
	isField   bool
	fieldNum  int
	headerKey string
}

func (f *Family) resolveKey(key interface{}) (resolvedKey, error) {
	switch k := key.(type) {
	case int:
		if _, ok := f.fields[k]; ok {
			return resolvedKey{isField: true, fieldNum: k}, nil
		}
	case string:
		if n, ok := f.aliases[k]; ok {
			return resolvedKey{isField: true, fieldNum: n}, nil
		}
		if _, ok := f.headers[k]; ok {
			return resolvedKey{headerKey: k}, nil
		}
	}
	return resolvedKey{}, ErrUnknownField
}

func keyName(key interface{}) string {
	switch k := key.(type) {
	case int:
		return strconv.Itoa(k)
	case string:
		return k
	default:
		return "?"
	}
}

// Set assigns value to key, which may be a data-field number (int), a
// declared alias (string), or a header key (string). A nil value
// removes the entry, matching spec.md §4.4's "null sentinel" removal
// semantics.
func (m *Message) Set(key interface{}, value interface{}) error {
	rk, err := m.family.resolveKey(key)
	if err != nil {
		return newErr(KindUnknownField, keyName(key), -1)
	}

	if value == nil {
		if rk.isField {
			delete(m.values, rk.fieldNum)
			m.bitmap.Clear(rk.fieldNum)
		} else {
			delete(m.headers, rk.headerKey)
		}
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return newErr(KindInvalidValue, keyName(key), -1)
	}

	if rk.isField {
		m.values[rk.fieldNum] = s
		m.bitmap.Set(rk.fieldNum)
	} else {
		m.headers[rk.headerKey] = s
	}
	return nil
}

// Get returns the value stored at key and whether it was present.
func (m *Message) Get(key interface{}) (string, bool) {
	rk, err := m.family.resolveKey(key)
	if err != nil {
		return "", false
	}
	if rk.isField {
		v, ok := m.values[rk.fieldNum]
		return v, ok
	}
	v, ok := m.headers[rk.headerKey]
	return v, ok
}

// SetInt sets a numeric field from an int, formatting it as ASCII
// decimal padded to width digits (0 leaves it unpadded).
func (m *Message) SetInt(key interface{}, value int, width int) error {
	buf := make([]byte, width)
	if width == 0 {
		buf = make([]byte, 20)
	}
	n := formatIntToBytes(buf, value, width)
	return m.Set(key, string(buf[:n]))
}

// GetInt parses a field's value as a base-10 integer.
func (m *Message) GetInt(key interface{}) (int, bool) {
	v, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// HasField reports whether field number n carries a value.
func (m *Message) HasField(n int) bool {
	_, ok := m.values[n]
	return ok
}

// PresentFields returns the set data-field numbers in ascending order.
func (m *Message) PresentFields() []int {
	nums := make([]int, 0, len(m.values))
	for n := range m.values {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// SetMTI assigns the message's MTI, accepting either the numeric code
// or a name registered via FamilyBuilder.DeclareMTI. The stored form is
// always the canonical numeric code.
func (m *Message) SetMTI(codeOrName string) error {
	code, err := m.family.mti.resolve(codeOrName)
	if err != nil {
		return newErr(KindUnknownMTI, codeOrName, -1)
	}
	m.mti = code
	return nil
}

// MTI returns the message's canonical numeric MTI, or "" if unset.
func (m *Message) MTI() string { return m.mti }

// MTIName returns the registered name for the message's MTI, or "" if
// none was declared.
func (m *Message) MTIName() string {
	if m.mti == "" {
		return ""
	}
	return m.family.mti.nameFor(m.mti)
}

// ToBytes serializes the message per layout, producing the three
// sections of spec.md §4.4 concatenated in the order layout specifies.
func (m *Message) ToBytes(layout LayoutView) ([]byte, error) {
	if m.mti == "" {
		return nil, newErr(KindMissingMTI, "mti", -1)
	}

	mtiBytes, err := m.family.mti.codec.Encode(m.mti)
	if err != nil {
		return nil, withSection(err, "mti")
	}

	var headerBytes []byte
	if layout.UseHeader {
		for _, key := range m.family.headerOrder {
			def := m.family.headers[key]
			b, err := def.Codec.Encode(m.headers[key])
			if err != nil {
				return nil, withSection(err, "header:"+key)
			}
			headerBytes = append(headerBytes, b...)
		}
	}

	bm := &Bitmap{}
	data := getBuffer()
	for _, n := range m.PresentFields() {
		def := m.family.fields[n]
		if def == nil {
			putBuffer(data)
			return nil, newErr(KindUnknownField, strconv.Itoa(n), -1)
		}
		b, err := def.Codec.Encode(m.values[n])
		if err != nil {
			putBuffer(data)
			return nil, withSection(err, strconv.Itoa(n))
		}
		bm.Set(n)
		data = append(data, b...)
	}
	bitmapAndData := append(bm.ToWire(layout.BitmapEncoding), data...)
	putBuffer(data)

	sections := map[section][]byte{
		sectionMTI:        mtiBytes,
		sectionHeader:     headerBytes,
		sectionBitmapData: bitmapAndData,
	}

	var out []byte
	for _, s := range layout.order() {
		out = append(out, sections[s]...)
	}
	return out, nil
}

// Parse consumes data section by section per layout, producing a new
// Message. Trailing bytes after the last section fail with
// TrailingData; running out of bytes mid-section fails with Truncated.
func (f *Family) Parse(data []byte, layout LayoutView) (*Message, error) {
	m := f.NewMessage()
	remaining := data

	for _, s := range layout.order() {
		switch s {
		case sectionMTI:
			v, n, err := f.mti.codec.Parse(remaining, false)
			if err != nil {
				return nil, withSection(err, "mti")
			}
			if _, err := f.mti.resolve(v); err != nil {
				return nil, newErr(KindUnknownMTI, v, len(data)-len(remaining))
			}
			m.mti = v
			remaining = remaining[n:]

		case sectionHeader:
			for _, key := range f.headerOrder {
				def := f.headers[key]
				v, n, err := def.Codec.Parse(remaining, layout.RemovePaddingOnParse)
				if err != nil {
					return nil, withSection(err, "header:"+key)
				}
				m.headers[key] = v
				remaining = remaining[n:]
			}

		case sectionBitmapData:
			bm, rest, err := ParseBitmap(remaining, layout.BitmapEncoding)
			if err != nil {
				return nil, withSection(err, "bitmap")
			}
			remaining = rest
			for _, n := range bm.Fields() {
				def := f.fields[n]
				if def == nil {
					return nil, newErr(KindUnknownField, strconv.Itoa(n), len(data)-len(remaining))
				}
				v, consumed, err := def.Codec.Parse(remaining, layout.RemovePaddingOnParse)
				if err != nil {
					return nil, withSection(err, strconv.Itoa(n))
				}
				m.values[n] = v
				m.bitmap.Set(n)
				remaining = remaining[consumed:]
			}
		}
	}

	if len(remaining) > 0 {
		return nil, newErr(KindTrailingData, "message", len(data)-len(remaining))
	}
	return m, nil
}

// Describe renders a human-readable summary for diagnostic logging.
// Sensitive fields (PAN and track data) are masked; ToBytes never
// masks.
func (m *Message) Describe() string {
	var sb strings.Builder
	sb.WriteString("MTI=")
	sb.WriteString(m.mti)
	if name := m.MTIName(); name != "" {
		sb.WriteString(" (")
		sb.WriteString(name)
		sb.WriteString(")")
	}
	for _, n := range m.PresentFields() {
		sb.WriteString(" DE")
		sb.WriteString(strconv.Itoa(n))
		sb.WriteString("=")
		if sensitiveFields[n] {
			sb.WriteString(maskValue(m.values[n]))
		} else {
			sb.WriteString(m.values[n])
		}
	}
	return sb.String()
}

func maskValue(v string) string {
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}

// CreateResponse clones the message and flips the third MTI digit (the
// message function) from '0' to '1', the conventional request-to-response
// transform (0200 -> 0210), setting field 39 (response code) to
// responseCode. This is a supplemental convenience, not required for
// round-trip correctness.
func (m *Message) CreateResponse(responseCode string) (*Message, error) {
	if len(m.mti) < 3 {
		return nil, newErr(KindMissingMTI, "mti", -1)
	}

	resp := m.family.NewMessage()
	respMTI := []byte(m.mti)
	if respMTI[2] == '0' {
		respMTI[2] = '1'
	}
	if err := resp.SetMTI(string(respMTI)); err != nil {
		return nil, err
	}

	for n, v := range m.values {
		resp.values[n] = v
		resp.bitmap.Set(n)
	}
	for k, v := range m.headers {
		resp.headers[k] = v
	}

	if err := resp.Set(39, responseCode); err != nil {
		return nil, err
	}
	return resp, nil
}
