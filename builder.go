package iso8583

import "sync"

// builderPool reuses Builder values across message constructions,
// avoiding an allocation per built message under sustained throughput.
var builderPool = sync.Pool{
	New: func() interface{} {
		return &Builder{errors: make([]error, 0, 4)}
	},
}

// Builder is a fluent accumulator over Message.Set, deferring error
// reporting to Build() so call chains read top to bottom without an
// if-err check after every field.
type Builder struct {
	msg    *Message
	errors []error
}

// NewBuilder starts building a message bound to family.
func NewBuilder(family *Family, opts ...MessageOption) *Builder {
	b := builderPool.Get().(*Builder)
	b.msg = family.NewMessage(opts...)
	b.errors = b.errors[:0]
	return b
}

// Release returns the builder to the pool. Callers must not use b after
// calling Release or Build.
func (b *Builder) Release() {
	b.msg = nil
	b.errors = b.errors[:0]
	builderPool.Put(b)
}

// MTI sets the message's MTI (numeric code or registered name).
func (b *Builder) MTI(codeOrName string) *Builder {
	if err := b.msg.SetMTI(codeOrName); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

// Field sets a data field or alias to value.
func (b *Builder) Field(key interface{}, value string) *Builder {
	if err := b.msg.Set(key, value); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

// PAN sets field 2 (primary account number).
func (b *Builder) PAN(pan string) *Builder { return b.Field(2, pan) }

// ProcessingCode sets field 3.
func (b *Builder) ProcessingCode(code string) *Builder { return b.Field(3, code) }

// Amount sets field 4 (transaction amount).
func (b *Builder) Amount(amount string) *Builder { return b.Field(4, amount) }

// STAN sets field 11 (system trace audit number).
func (b *Builder) STAN(stan string) *Builder { return b.Field(11, stan) }

// Build returns the accumulated message, or the first error recorded
// along the way.
func (b *Builder) Build() (*Message, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	msg := b.msg
	b.msg = nil
	return msg, nil
}

// MustBuild is Build but panics on error, for call sites that have
// already validated their inputs (tests, fixtures).
func (b *Builder) MustBuild() *Message {
	msg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return msg
}
