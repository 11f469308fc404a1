package iso8583

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the closed set of failure modes the codec can
// produce. Callers branch on Kind, never on error text.
type Kind string

const (
	KindUnknownField    Kind = "unknown_field"
	KindUnknownMTI      Kind = "unknown_mti"
	KindMissingMTI      Kind = "missing_mti"
	KindInvalidValue    Kind = "invalid_value"
	KindLengthOverflow  Kind = "length_overflow"
	KindLengthUnderflow Kind = "length_underflow"
	KindTruncated       Kind = "truncated"
	KindTrailingData    Kind = "trailing_data"
	KindSchemaConflict  Kind = "schema_conflict"
)

// Error is the single error type this package returns. Section names a
// field number ("2"), a header key, or a top-level section ("mti",
// "bitmap", "header"). Offset is the byte position where the failure was
// detected, or -1 when not meaningful.
type Error struct {
	Kind    Kind
	Section string
	Offset  int
	cause   error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("iso8583: %s at %s (offset %d)", e.Kind, e.Section, e.Offset)
	}
	return fmt.Sprintf("iso8583: %s at %s", e.Kind, e.Section)
}

func (e *Error) Unwrap() error { return e.cause }

func newErr(kind Kind, section string, offset int) *Error {
	return &Error{Kind: kind, Section: section, Offset: offset}
}

func wrapErr(kind Kind, section string, offset int, cause error) *Error {
	return &Error{Kind: kind, Section: section, Offset: offset, cause: errors.WithStack(cause)}
}

// withSection re-tags a *Error sentinel returned by a codec (which
// carries no Section since codecs are field-agnostic) with the section
// it failed in. Non-*Error causes are wrapped as InvalidValue with a
// stack trace attached.
func withSection(err error, section string) *Error {
	if ie, ok := err.(*Error); ok {
		return &Error{Kind: ie.Kind, Section: section, Offset: -1, cause: ie.cause}
	}
	return &Error{Kind: KindInvalidValue, Section: section, Offset: -1, cause: errors.WithStack(err)}
}

// Is lets errors.Is match on Kind alone, ignoring Section/Offset, so
// callers can write errors.Is(err, iso8583.ErrTruncated) as a shorthand
// for a Kind check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values usable with errors.Is; only Kind is compared.
var (
	ErrUnknownField    = &Error{Kind: KindUnknownField, Offset: -1}
	ErrUnknownMTI      = &Error{Kind: KindUnknownMTI, Offset: -1}
	ErrMissingMTI      = &Error{Kind: KindMissingMTI, Offset: -1}
	ErrInvalidValue    = &Error{Kind: KindInvalidValue, Offset: -1}
	ErrLengthOverflow  = &Error{Kind: KindLengthOverflow, Offset: -1}
	ErrLengthUnderflow = &Error{Kind: KindLengthUnderflow, Offset: -1}
	ErrTruncated       = &Error{Kind: KindTruncated, Offset: -1}
	ErrTrailingData    = &Error{Kind: KindTrailingData, Offset: -1}
	ErrSchemaConflict  = &Error{Kind: KindSchemaConflict, Offset: -1}
)
