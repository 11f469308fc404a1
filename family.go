package iso8583

import "strconv"

// Family is the per-message-family schema registry described in
// spec.md §4.3: the MTI codec, the MTI bijection, the ordered header
// definitions, and the numbered data-field definitions. It is populated
// once by a FamilyBuilder and is read-only and safely shared across
// goroutines thereafter (spec.md §5).
type Family struct {
	Name string

	mti *mtiTable

	headerOrder []string
	headers     map[string]*HeaderDefinition

	fields  map[int]*FieldDefinition
	aliases map[string]int
}

// FieldByNumber returns the field's definition, or nil if none exists.
func (f *Family) FieldByNumber(n int) *FieldDefinition {
	return f.fields[n]
}

// FieldByAlias resolves an alias to its field definition, or nil.
func (f *Family) FieldByAlias(alias string) *FieldDefinition {
	n, ok := f.aliases[alias]
	if !ok {
		return nil
	}
	return f.fields[n]
}

// Header returns a header field's definition, or nil.
func (f *Family) Header(key string) *HeaderDefinition {
	return f.headers[key]
}

// NewMessage constructs an empty message bound to this family.
func (f *Family) NewMessage(opts ...MessageOption) *Message {
	m := &Message{
		family:  f,
		values:  make(map[int]string),
		headers: make(map[string]string),
		bitmap:  &Bitmap{},
		traceID: newTraceID(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FamilyBuilder accumulates declarations and produces an immutable
// Family via Build(). Per spec.md §4.3, redeclaring a field number
// overwrites silently (developer error, not a runtime failure);
// declaring the same MTI code with a conflicting name, or the same
// alias against two different field numbers, is a SchemaConflict
// reported by Build().
type FamilyBuilder struct {
	name string
	sink DiagnosticSink

	mtiCodec    *FieldCodec
	mtiEntries  []struct{ code, name string }
	headerOrder []string
	headers     map[string]*HeaderDefinition
	fields      map[int]*FieldDefinition
	aliases     map[string]int

	conflicts []error
}

// NewFamily starts declaring a family named name.
func NewFamily(name string, opts ...FamilyOption) *FamilyBuilder {
	b := &FamilyBuilder{
		name:    name,
		sink:    defaultSink,
		headers: make(map[string]*HeaderDefinition),
		fields:  make(map[int]*FieldDefinition),
		aliases: make(map[string]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DeclareMTICodec sets the codec used to encode/decode the MTI value
// itself, e.g. DeclareMTICodec(ClassN, Fixed, map[string]interface{}{"length": 4}).
func (b *FamilyBuilder) DeclareMTICodec(class ContentClass, length LengthDiscipline, options map[string]interface{}) *FamilyBuilder {
	opts := decodeFieldOptions(options, b.sink, "mti")
	codec := FieldCodec{Class: class, Length: length, Len: opts.Length, MaxLen: opts.Max, Padding: decodePaddingOption(opts.Padding)}
	b.mtiCodec = &codec
	return b
}

// DeclareMTI registers a known numeric code, optionally bound to a
// human name.
func (b *FamilyBuilder) DeclareMTI(code, name string) *FamilyBuilder {
	b.mtiEntries = append(b.mtiEntries, struct{ code, name string }{code, name})
	return b
}

// DeclareField registers (or silently overwrites) the definition for
// data-field number.
func (b *FamilyBuilder) DeclareField(number int, name string, class ContentClass, length LengthDiscipline, options map[string]interface{}) *FamilyBuilder {
	if class == ClassTLV && length != LLLVAR {
		b.conflicts = append(b.conflicts, newErr(KindSchemaConflict, strconv.Itoa(number), -1))
	}
	opts := decodeFieldOptions(options, b.sink, strconv.Itoa(number))
	codec := FieldCodec{Class: class, Length: length, Len: opts.Length, MaxLen: opts.Max, Padding: decodePaddingOption(opts.Padding)}
	b.fields[number] = &FieldDefinition{Number: number, Name: name, Codec: codec}
	return b
}

// DeclareHeader registers a fixed-length header field, appended to the
// header's declaration order the first time key is seen.
func (b *FamilyBuilder) DeclareHeader(key, name string, class ContentClass, options map[string]interface{}) *FamilyBuilder {
	opts := decodeFieldOptions(options, b.sink, "header:"+key)
	codec := FieldCodec{Class: class, Length: Fixed, Len: opts.Length, Padding: decodePaddingOption(opts.Padding)}
	if _, exists := b.headers[key]; !exists {
		b.headerOrder = append(b.headerOrder, key)
	}
	b.headers[key] = &HeaderDefinition{Key: key, Name: name, Codec: codec}
	return b
}

// DeclareAlias binds a symbolic name to a field number so Message.Get
// and Message.Set can be called with either.
func (b *FamilyBuilder) DeclareAlias(number int, alias string) *FamilyBuilder {
	if existing, ok := b.aliases[alias]; ok && existing != number {
		b.conflicts = append(b.conflicts, newErr(KindSchemaConflict, alias, -1))
	}
	b.aliases[alias] = number
	return b
}

// Build finalizes the declarations into an immutable Family.
func (b *FamilyBuilder) Build() (*Family, error) {
	if b.mtiCodec == nil {
		b.mtiCodec = &FieldCodec{Class: ClassN, Length: Fixed, Len: 4}
	}
	table := newMTITable(*b.mtiCodec)
	seenName := make(map[string]string)
	for _, e := range b.mtiEntries {
		if prevName, ok := table.codeToName[e.code]; ok && prevName != e.name {
			b.conflicts = append(b.conflicts, newErr(KindSchemaConflict, e.code, -1))
		}
		if prevCode, ok := seenName[e.name]; ok && e.name != "" && prevCode != e.code {
			b.conflicts = append(b.conflicts, newErr(KindSchemaConflict, e.name, -1))
		}
		table.declare(e.code, e.name)
		if e.name != "" {
			seenName[e.name] = e.code
		}
	}

	if len(b.conflicts) > 0 {
		return nil, b.conflicts[0]
	}

	return &Family{
		Name:        b.name,
		mti:         table,
		headerOrder: b.headerOrder,
		headers:     b.headers,
		fields:      b.fields,
		aliases:     b.aliases,
	}, nil
}
