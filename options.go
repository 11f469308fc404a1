package iso8583

import "github.com/mitchellh/mapstructure"

// FieldOptions is the typed form of the options map described in
// spec.md §4.1. Recognized keys: length (fixed codecs), max (variable
// codecs), padding (override the class default with "left_zero" or
// "right_space"; "none" is treated the same as leaving padding unset, so
// the class default still applies).
type FieldOptions struct {
	Length  int    `mapstructure:"length"`
	Max     int    `mapstructure:"max"`
	Padding string `mapstructure:"padding"`
}

func decodePaddingOption(s string) Padding {
	switch s {
	case "left_zero":
		return PadLeftZero
	case "right_space":
		return PadRightSpace
	case "none":
		return PadNone
	default:
		return PadNone
	}
}

// decodeFieldOptions turns the loosely-typed options map into a
// FieldOptions value using mapstructure, the same decoder the pack uses
// to turn generic option maps into typed settings. Unknown keys are
// reported to sink and otherwise ignored, per spec.md §4.1's "unknown
// options ... do not abort" invariant.
func decodeFieldOptions(raw map[string]interface{}, sink DiagnosticSink, section string) FieldOptions {
	var opts FieldOptions
	if raw == nil {
		return opts
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   &opts,
	})
	if err != nil {
		return opts
	}
	if err := dec.Decode(raw); err != nil {
		return opts
	}

	for _, key := range md.Unused {
		if sink != nil {
			sink.Warn("unknown field option", "section", section, "option", key)
		}
	}

	return opts
}

// MessageOption configures a Message at construction time.
type MessageOption func(*Message)

// WithInitialMTI sets the MTI (numeric code or registered name) on a
// newly-constructed message. Declaration errors are swallowed here,
// matching a constructor convenience; callers that need the error
// should call Message.SetMTI directly.
func WithInitialMTI(codeOrName string) MessageOption {
	return func(m *Message) {
		_ = m.SetMTI(codeOrName)
	}
}

// WithTraceID overrides the auto-generated correlation ID (see
// Message.TraceID) assigned to every new Message.
func WithTraceID(id string) MessageOption {
	return func(m *Message) {
		m.traceID = id
	}
}

// FamilyOption configures a FamilyBuilder.
type FamilyOption func(*FamilyBuilder)

// WithDiagnosticSink routes schema-declaration warnings (unknown
// options, see decodeFieldOptions) to sink instead of the package
// default logger.
func WithDiagnosticSink(sink DiagnosticSink) FamilyOption {
	return func(b *FamilyBuilder) {
		b.sink = sink
	}
}
