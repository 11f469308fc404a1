package iso8583

import (
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// FieldConfig is the YAML declaration form of one data field, mirroring
// FamilyBuilder.DeclareField's parameters.
type FieldConfig struct {
	Number  int    `yaml:"number"`
	Name    string `yaml:"name"`
	Alias   string `yaml:"alias,omitempty"`
	Class   string `yaml:"class"`
	Length  string `yaml:"length"`
	Len     int    `yaml:"len,omitempty"`
	Max     int    `yaml:"max,omitempty"`
	Padding string `yaml:"padding,omitempty"`
}

// HeaderFieldConfig is the YAML declaration form of one header field.
type HeaderFieldConfig struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Class string `yaml:"class"`
	Len   int    `yaml:"len"`
}

// MTIEntryConfig is one code/name pair in the MTI bijection.
type MTIEntryConfig struct {
	Code string `yaml:"code"`
	Name string `yaml:"name,omitempty"`
}

// Validate checks that Code is a well-formed numeric MTI (spec.md §2's
// four ASCII digits), mirroring Forest33-tapir/business/entity/config.go's
// is.Host use for format-checking a single scalar field.
func (e MTIEntryConfig) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Code, validation.Required, validation.Length(4, 4), is.Digit),
	)
}

var validContentClasses = []interface{}{"N", "AN", "ANS", "B", "BCD", "HEX", "DATETIME", "TLV"}

// Validate checks that Class names a recognized content class before
// Compile silently defaults an unrecognized one to ClassN.
func (fc FieldConfig) Validate() error {
	return validation.ValidateStruct(&fc,
		validation.Field(&fc.Number, validation.Required),
		validation.Field(&fc.Name, validation.Required),
		validation.Field(&fc.Class, validation.Required, validation.In(validContentClasses...)),
	)
}

// LayoutConfig is the YAML form of LayoutView.
type LayoutConfig struct {
	UseHeader             bool   `yaml:"useHeader"`
	MTIPosition           int    `yaml:"mtiPosition"`
	HeaderPosition        int    `yaml:"headerPosition"`
	BitmapAndDataPosition int    `yaml:"bitmapAndDataPosition"`
	BitmapEncoding        string `yaml:"bitmapEncoding"`
	RemovePaddingOnParse  bool   `yaml:"removePaddingOnParse"`
}

// FamilyConfig is the declarative, file-based alternative to calling
// NewFamily/DeclareField directly (spec.md §4.3 supports both paths
// converging on the same Family).
type FamilyConfig struct {
	Name      string              `yaml:"name"`
	MTI       FieldConfig         `yaml:"mti"`
	MTIs      []MTIEntryConfig    `yaml:"mtis,omitempty"`
	Headers   []HeaderFieldConfig `yaml:"headers,omitempty"`
	Fields    []FieldConfig       `yaml:"fields"`
	LayoutCfg *LayoutConfig       `yaml:"layout,omitempty"`
}

// LoadFamilyConfig parses a YAML family declaration from r.
func LoadFamilyConfig(r io.Reader) (*FamilyConfig, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapErr(KindTruncated, "config", -1, err)
	}
	var cfg FamilyConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, wrapErr(KindInvalidValue, "config", -1, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, wrapErr(KindSchemaConflict, "config", -1, err)
	}
	return &cfg, nil
}

// Validate checks structural completeness of the parsed config before
// it is compiled into a Family.
func (c *FamilyConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Fields, validation.Required),
		validation.Field(&c.MTIs),
	)
}

func parseContentClass(s string) ContentClass {
	switch s {
	case "AN":
		return ClassAN
	case "ANS":
		return ClassANS
	case "B":
		return ClassB
	case "BCD":
		return ClassBCD
	case "HEX":
		return ClassHex
	case "DATETIME":
		return ClassDateTime
	case "TLV":
		return ClassTLV
	default:
		return ClassN
	}
}

func parseLengthDiscipline(s string) LengthDiscipline {
	switch s {
	case "LLVAR":
		return LLVAR
	case "LLLVAR":
		return LLLVAR
	default:
		return Fixed
	}
}

func (fc FieldConfig) options() map[string]interface{} {
	m := map[string]interface{}{}
	if fc.Len > 0 {
		m["length"] = fc.Len
	}
	if fc.Max > 0 {
		m["max"] = fc.Max
	}
	if fc.Padding != "" {
		m["padding"] = fc.Padding
	}
	return m
}

// Compile builds an immutable Family from the parsed config, using the
// same FamilyBuilder path a direct Go declaration would.
func (c *FamilyConfig) Compile(opts ...FamilyOption) (*Family, error) {
	b := NewFamily(c.Name, opts...)

	if c.MTI.Class != "" || c.MTI.Length != "" || c.MTI.Len > 0 {
		b.DeclareMTICodec(parseContentClass(c.MTI.Class), parseLengthDiscipline(c.MTI.Length), c.MTI.options())
	}
	for _, e := range c.MTIs {
		b.DeclareMTI(e.Code, e.Name)
	}
	for _, h := range c.Headers {
		b.DeclareHeader(h.Key, h.Name, parseContentClass(h.Class), map[string]interface{}{"length": h.Len})
	}
	for _, f := range c.Fields {
		b.DeclareField(f.Number, f.Name, parseContentClass(f.Class), parseLengthDiscipline(f.Length), f.options())
		if f.Alias != "" {
			b.DeclareAlias(f.Number, f.Alias)
		}
	}

	return b.Build()
}

// Layout converts the config's layout section into a LayoutView, falling
// back to DefaultLayout when the config didn't specify one.
func (c *FamilyConfig) Layout() LayoutView {
	if c.LayoutCfg == nil {
		return DefaultLayout()
	}
	enc := BitmapBinary
	if c.LayoutCfg.BitmapEncoding == "hex" {
		enc = BitmapHex
	}
	return LayoutView{
		UseHeader:             c.LayoutCfg.UseHeader,
		MTIPosition:           c.LayoutCfg.MTIPosition,
		HeaderPosition:        c.LayoutCfg.HeaderPosition,
		BitmapAndDataPosition: c.LayoutCfg.BitmapAndDataPosition,
		BitmapEncoding:        enc,
		RemovePaddingOnParse:  c.LayoutCfg.RemovePaddingOnParse,
	}
}
