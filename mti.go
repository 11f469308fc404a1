package iso8583

// mtiTable holds the MTI codec and the bijective (numeric-code ↔
// human-name) pairs described in spec.md §3. Names are optional sugar: MTI assignment
// always canonicalizes to the numeric code.
type mtiTable struct {
	codec      FieldCodec
	codeToName map[string]string
	nameToCode map[string]string
}

func newMTITable(codec FieldCodec) *mtiTable {
	return &mtiTable{
		codec:      codec,
		codeToName: make(map[string]string),
		nameToCode: make(map[string]string),
	}
}

func (t *mtiTable) declare(code, name string) {
	t.codeToName[code] = name
	if name != "" {
		t.nameToCode[name] = code
	}
}

// resolve accepts either a numeric code or a registered name and returns
// the canonical numeric code.
func (t *mtiTable) resolve(codeOrName string) (string, error) {
	if _, ok := t.codeToName[codeOrName]; ok {
		return codeOrName, nil
	}
	if code, ok := t.nameToCode[codeOrName]; ok {
		return code, nil
	}
	if allDigits(codeOrName) && len(t.codeToName) == 0 {
		// No MTI table was declared; accept any well-formed numeric code.
		return codeOrName, nil
	}
	return "", ErrUnknownMTI
}

func (t *mtiTable) nameFor(code string) string {
	return t.codeToName[code]
}
