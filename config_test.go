package iso8583

import (
	"bytes"
	"strings"
	"testing"
)

const e8YAML = `
name: e8
mti:
  class: N
  length: Fixed
  len: 4
fields:
  - number: 2
    name: PAN
    alias: pan
    class: N
    length: LLVAR
    max: 19
  - number: 3
    name: Processing Code
    class: N
    length: Fixed
    len: 6
`

func e8GoFamily(t *testing.T) *Family {
	t.Helper()
	b := NewFamily("e8")
	b.DeclareMTICodec(ClassN, Fixed, fixed(4))
	b.DeclareField(2, "PAN", ClassN, LLVAR, varLen(19))
	b.DeclareField(3, "Processing Code", ClassN, Fixed, fixed(6))
	b.DeclareAlias(2, "pan")
	f, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func TestScenarioE8YAMLFamilyMatchesGoDeclaredFamily(t *testing.T) {
	cfg, err := LoadFamilyConfig(strings.NewReader(e8YAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	yamlFamily, err := cfg.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	goFamily := e8GoFamily(t)

	yamlMsg := yamlFamily.NewMessage()
	_ = yamlMsg.SetMTI("1100")
	_ = yamlMsg.Set("pan", "474747474747")
	_ = yamlMsg.Set(3, "000000")

	goMsg := goFamily.NewMessage()
	_ = goMsg.SetMTI("1100")
	_ = goMsg.Set("pan", "474747474747")
	_ = goMsg.Set(3, "000000")

	yamlBytes, err := yamlMsg.ToBytes(DefaultLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	goBytes, err := goMsg.ToBytes(DefaultLayout())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(yamlBytes, goBytes) {
		t.Fatalf("yaml-compiled family produced different bytes\nyaml %q\ngo   %q", yamlBytes, goBytes)
	}
}

func TestLoadFamilyConfigRejectsMissingName(t *testing.T) {
	_, err := LoadFamilyConfig(strings.NewReader(`
fields:
  - number: 2
    name: PAN
    class: N
    length: LLVAR
`))
	if err == nil {
		t.Fatalf("expected validation error for missing name")
	}
}

func TestLoadFamilyConfigRejectsMissingFields(t *testing.T) {
	_, err := LoadFamilyConfig(strings.NewReader(`
name: empty
`))
	if err == nil {
		t.Fatalf("expected validation error for missing fields")
	}
}

func TestFamilyConfigCompileRejectsTLVWithoutLLLVAR(t *testing.T) {
	cfg, err := LoadFamilyConfig(strings.NewReader(`
name: bad-tlv
fields:
  - number: 55
    name: ICC Data
    class: TLV
    length: LLVAR
    max: 99
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := cfg.Compile(); err == nil {
		t.Fatalf("expected SchemaConflict compiling TLV field declared LLVAR")
	}
}

func TestFamilyConfigLayoutDefaultsWhenUnset(t *testing.T) {
	cfg, err := LoadFamilyConfig(strings.NewReader(e8YAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Layout() != DefaultLayout() {
		t.Fatalf("expected DefaultLayout when config omits a layout section")
	}
}
