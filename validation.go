package iso8583

import "strconv"

// ValidationRule is an extra check applied to a Message beyond the
// content-class and length-discipline enforcement every codec already
// performs. Content-class validation belongs to the codec (codec.go);
// ValidationRule exists for cross-field or business-adjacent structural
// checks a family wants to opt into, such as verifying a datetime
// field's component ranges (spec.md §4.1: "structural validation of
// component ranges left to the caller").
type ValidationRule interface {
	Name() string
	Validate(m *Message) error
}

// DateTimeLayout names the component ordering of a fixed-width datetime
// field.
type DateTimeLayout int

const (
	LayoutYYMMDD DateTimeLayout = iota
	LayoutYYYYMMDD
	LayoutHHMMSS
)

// DateTimeRangeRule validates that a fixed-width numeric datetime field
// decomposes into components within valid calendar/clock ranges, e.g.
// month 01-12 for a YYMMDD-shaped field. It does not touch the wire
// format; it only rejects semantically impossible values that the plain
// numeric-ASCII content class would accept (e.g. "994599").
type DateTimeRangeRule struct {
	Field  int
	Layout DateTimeLayout
}

func (r DateTimeRangeRule) Name() string { return "datetime_range" }

func (r DateTimeRangeRule) Validate(m *Message) error {
	v, ok := m.Get(r.Field)
	if !ok {
		return nil
	}
	if !allDigits(v) {
		return newErr(KindInvalidValue, strconv.Itoa(r.Field), -1)
	}

	var month, day, hour, minute, second int
	var err error
	switch r.Layout {
	case LayoutYYMMDD:
		if len(v) != 6 {
			return newErr(KindInvalidValue, strconv.Itoa(r.Field), -1)
		}
		month, err = strconv.Atoi(v[2:4])
		if err == nil {
			day, err = strconv.Atoi(v[4:6])
		}
	case LayoutYYYYMMDD:
		if len(v) != 8 {
			return newErr(KindInvalidValue, strconv.Itoa(r.Field), -1)
		}
		month, err = strconv.Atoi(v[4:6])
		if err == nil {
			day, err = strconv.Atoi(v[6:8])
		}
	case LayoutHHMMSS:
		if len(v) != 6 {
			return newErr(KindInvalidValue, strconv.Itoa(r.Field), -1)
		}
		hour, err = strconv.Atoi(v[0:2])
		if err == nil {
			minute, err = strconv.Atoi(v[2:4])
		}
		if err == nil {
			second, err = strconv.Atoi(v[4:6])
		}
	}
	if err != nil {
		return newErr(KindInvalidValue, strconv.Itoa(r.Field), -1)
	}

	switch r.Layout {
	case LayoutYYMMDD, LayoutYYYYMMDD:
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return newErr(KindInvalidValue, strconv.Itoa(r.Field), -1)
		}
	case LayoutHHMMSS:
		if hour > 23 || minute > 59 || second > 59 {
			return newErr(KindInvalidValue, strconv.Itoa(r.Field), -1)
		}
	}
	return nil
}

// MandatoryFieldsRule fails when any of Fields is absent from the
// message.
type MandatoryFieldsRule struct {
	Fields []int
}

func (r MandatoryFieldsRule) Name() string { return "mandatory_fields" }

func (r MandatoryFieldsRule) Validate(m *Message) error {
	for _, n := range r.Fields {
		if !m.HasField(n) {
			return newErr(KindUnknownField, strconv.Itoa(n), -1)
		}
	}
	return nil
}

// Validate runs rules against m in order, stopping at the first
// failure.
func Validate(m *Message, rules ...ValidationRule) error {
	for _, r := range rules {
		if err := r.Validate(m); err != nil {
			return err
		}
	}
	return nil
}
