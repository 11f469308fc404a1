package iso8583

import "testing"

func TestContentEncodeNumericFixedPadsLeftZero(t *testing.T) {
	got, err := contentEncode(ClassN, PadLeftZero, "42", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "000042" {
		t.Fatalf("got %q", got)
	}
}

func TestContentEncodeNumericRejectsNonDigits(t *testing.T) {
	if _, err := contentEncode(ClassN, PadLeftZero, "12a4", 4); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
}

func TestContentEncodeNumericOverflow(t *testing.T) {
	_, err := contentEncode(ClassN, PadLeftZero, "1234567", 4)
	if e, ok := err.(*Error); !ok || e.Kind != KindLengthOverflow {
		t.Fatalf("expected LengthOverflow, got %v", err)
	}
}

func TestContentEncodeANSPadsRightSpace(t *testing.T) {
	got, err := contentEncode(ClassANS, PadRightSpace, "AB", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "AB   " {
		t.Fatalf("got %q", got)
	}
}

func TestContentDecodeStripsPaddingWhenRequested(t *testing.T) {
	v, err := contentDecode(ClassN, []byte("000042"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "42" {
		t.Fatalf("got %q", v)
	}
}

func TestContentDecodeKeepsPaddingByDefault(t *testing.T) {
	v, err := contentDecode(ClassN, []byte("000042"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "000042" {
		t.Fatalf("got %q", v)
	}
}

func TestBCDRoundTrip(t *testing.T) {
	packed, err := encodeBCD("12345", PadNone, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packed) != 3 {
		t.Fatalf("expected 3 packed bytes for 5 (padded to 6) digits, got %d", len(packed))
	}
	if got := decodeBCD(packed); got != "012345" {
		t.Fatalf("got %q", got)
	}
}

func TestBClassRawBytesRoundTripAsHex(t *testing.T) {
	raw, err := contentEncode(ClassB, PadNone, "deadbeef", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := contentDecode(ClassB, raw, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "deadbeef" {
		t.Fatalf("got %q", v)
	}
}

func TestFormatAndParseDecimalPrefixRoundTrip(t *testing.T) {
	buf := formatDecimalPrefix(7, 3)
	if string(buf) != "007" {
		t.Fatalf("got %q", buf)
	}
	n, err := parseDecimalPrefix(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Fatalf("got %d", n)
	}
}

func TestParseDecimalPrefixRejectsNonDigits(t *testing.T) {
	if _, err := parseDecimalPrefix([]byte("1a")); err == nil {
		t.Fatalf("expected error for non-digit prefix")
	}
}
