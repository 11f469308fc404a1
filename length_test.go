package iso8583

import "testing"

func TestFieldCodecFixedRoundTrip(t *testing.T) {
	c := FieldCodec{Class: ClassN, Length: Fixed, Len: 6}
	encoded, err := c.Encode("000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(encoded) != "000000" {
		t.Fatalf("got %q", encoded)
	}
	v, consumed, err := c.Parse(append(encoded, "extra"...), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "000000" || consumed != 6 {
		t.Fatalf("got value=%q consumed=%d", v, consumed)
	}
}

func TestFieldCodecLLVAREncodesLengthPrefix(t *testing.T) {
	c := FieldCodec{Class: ClassN, Length: LLVAR, MaxLen: 19}
	encoded, err := c.Encode("474747474747")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(encoded) != "12474747474747" {
		t.Fatalf("got %q", encoded)
	}
}

func TestFieldCodecLLVARRejectsOverMax(t *testing.T) {
	c := FieldCodec{Class: ClassN, Length: LLVAR, MaxLen: 4}
	if _, err := c.Encode("123456"); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestFieldCodecParseTruncatedFixed(t *testing.T) {
	c := FieldCodec{Class: ClassN, Length: Fixed, Len: 6}
	if _, _, err := c.Parse([]byte("123"), false); err == nil {
		t.Fatalf("expected truncated error")
	} else if e, ok := err.(*Error); !ok || e.Kind != KindTruncated {
		t.Fatalf("expected KindTruncated, got %v", err)
	}
}

func TestFieldCodecParseTruncatedMidLLVARValue(t *testing.T) {
	c := FieldCodec{Class: ClassN, Length: LLVAR, MaxLen: 19}
	// prefix claims 12 bytes of content but only 5 are present
	if _, _, err := c.Parse([]byte("12abcde"), false); err == nil {
		t.Fatalf("expected truncated error")
	} else if e, ok := err.(*Error); !ok || e.Kind != KindTruncated {
		t.Fatalf("expected KindTruncated, got %v", err)
	}
}

func TestFieldCodecLLVARLengthPrefixOverflowsWidth(t *testing.T) {
	c := FieldCodec{Class: ClassAN, Length: LLVAR, MaxLen: 999}
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'A'
	}
	if _, err := c.Encode(string(long)); err == nil {
		t.Fatalf("expected overflow: content exceeds a 2-digit length prefix")
	}
}
