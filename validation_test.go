package iso8583

import "testing"

func validationFamily(t *testing.T) *Family {
	t.Helper()
	b := NewFamily("validation")
	b.DeclareMTICodec(ClassN, Fixed, fixed(4))
	b.DeclareField(7, "Transmission Date & Time", ClassN, Fixed, fixed(10))
	b.DeclareField(13, "Date, Local Transaction", ClassN, Fixed, fixed(4))
	b.DeclareField(73, "Date, Action", ClassN, Fixed, fixed(6))
	f, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func TestDateTimeRangeRuleAcceptsValidDate(t *testing.T) {
	f := validationFamily(t)
	m := f.NewMessage()
	_ = m.SetMTI("0200")
	_ = m.Set(73, "260131")

	rule := DateTimeRangeRule{Field: 73, Layout: LayoutYYMMDD}
	if err := Validate(m, rule); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDateTimeRangeRuleRejectsImpossibleMonth(t *testing.T) {
	f := validationFamily(t)
	m := f.NewMessage()
	_ = m.SetMTI("0200")
	_ = m.Set(73, "269901")

	rule := DateTimeRangeRule{Field: 73, Layout: LayoutYYMMDD}
	if err := Validate(m, rule); err == nil {
		t.Fatalf("expected error for month 99")
	}
}

func TestDateTimeRangeRuleSkipsAbsentField(t *testing.T) {
	f := validationFamily(t)
	m := f.NewMessage()
	_ = m.SetMTI("0200")

	rule := DateTimeRangeRule{Field: 13, Layout: LayoutYYMMDD}
	if err := Validate(m, rule); err != nil {
		t.Fatalf("expected no error for an absent optional field, got %v", err)
	}
}

func TestMandatoryFieldsRuleFailsWhenMissing(t *testing.T) {
	f := validationFamily(t)
	m := f.NewMessage()
	_ = m.SetMTI("0200")

	rule := MandatoryFieldsRule{Fields: []int{7}}
	if err := Validate(m, rule); err == nil {
		t.Fatalf("expected error for missing mandatory field 7")
	} else if e, ok := err.(*Error); !ok || e.Kind != KindUnknownField {
		t.Fatalf("expected KindUnknownField, got %v", err)
	}
}

func TestValidateStopsAtFirstFailure(t *testing.T) {
	f := validationFamily(t)
	m := f.NewMessage()
	_ = m.SetMTI("0200")

	err := Validate(m,
		MandatoryFieldsRule{Fields: []int{7}},
		MandatoryFieldsRule{Fields: []int{13}},
	)
	if err == nil {
		t.Fatalf("expected error")
	}
}
