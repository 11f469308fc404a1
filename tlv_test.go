package iso8583

import "testing"

func TestBuildAndExtractTLVEntries(t *testing.T) {
	entries := []TLVEntry{
		{Tag: "9F26", Value: []byte{0x01, 0x02, 0x03, 0x04}},
		{Tag: "9F27", Value: []byte{0x80}},
	}
	value, err := BuildTLVValue(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ExtractTLVEntries(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Tag != "9F26" {
		t.Fatalf("got tag %q", got[0].Tag)
	}
}

func TestTLVTagFindsSpecificEntry(t *testing.T) {
	value, err := BuildTLVValue([]TLVEntry{
		{Tag: "5F2A", Value: []byte{0x09, 0x78}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := TLVTag(value, "5f2a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 2 || v[0] != 0x09 || v[1] != 0x78 {
		t.Fatalf("got %v", v)
	}
}

func TestTLVTagMissingReturnsUnknownField(t *testing.T) {
	value, err := BuildTLVValue([]TLVEntry{{Tag: "9F26", Value: []byte{0x01}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := TLVTag(value, "9F27"); err == nil {
		t.Fatalf("expected error for missing tag")
	} else if e, ok := err.(*Error); !ok || e.Kind != KindUnknownField {
		t.Fatalf("expected KindUnknownField, got %v", err)
	}
}

func TestScenarioE9TLVFieldRoundTripThroughFamily(t *testing.T) {
	b := NewFamily("e9")
	b.DeclareMTICodec(ClassN, Fixed, fixed(4))
	b.DeclareField(55, "ICC Data", ClassTLV, LLLVAR, varLen(999))
	f, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tlvValue, err := BuildTLVValue([]TLVEntry{{Tag: "9F26", Value: []byte{0xAA, 0xBB}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := f.NewMessage()
	_ = m.SetMTI("1100")
	if err := m.Set(55, tlvValue); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := m.ToBytes(DefaultLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parsed, err := f.Parse(data, DefaultLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := parsed.Get(55)
	if !ok || got != tlvValue {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}
