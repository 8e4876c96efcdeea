package ast

import (
	"github.com/mcgru/corelang/internal/ident"
	"github.com/mcgru/corelang/internal/token"
)

// Pattern is the sum type: Ident, Constructor, Literal,
// Tuple, Record, As, Error.
type Pattern interface {
	Spanner
	isPattern()
}

// IdentPattern binds a lowercase identifier. A pattern identifier that
// starts uppercase is upgraded by the parser into a ConstructorPattern
// with no arguments.
type IdentPattern struct {
	ID   ident.Id
	Span token.Span
}

func (p *IdentPattern) GetSpan() token.Span { return p.Span }
func (*IdentPattern) isPattern()            {}

// ConstructorPattern matches a constructor applied to zero or more atomic
// argument patterns. A bare constructor name without at least one atomic
// pattern argument parses as a ConstructorPattern with an empty Args,
// not as an IdentPattern.
type ConstructorPattern struct {
	ID   ident.Id
	Args []Pattern
	Span token.Span
}

func (p *ConstructorPattern) GetSpan() token.Span { return p.Span }
func (*ConstructorPattern) isPattern()            {}

// LiteralPattern matches an exact literal value.
type LiteralPattern struct {
	Value Literal
	Span  token.Span
}

func (p *LiteralPattern) GetSpan() token.Span { return p.Span }
func (*LiteralPattern) isPattern()            {}

// TuplePattern matches a parenthesised comma list: `()` has no elements,
// and a single element with a trailing comma `(p,)` has one. A single
// parenthesised pattern without a comma unwraps to its inner pattern
// instead of becoming a TuplePattern.
type TuplePattern struct {
	Elems []Pattern
	Span  token.Span
}

func (p *TuplePattern) GetSpan() token.Span { return p.Span }
func (*TuplePattern) isPattern()            {}

// RecordPatternAssocType references an associated type by name inside a
// record pattern, with no further binding power.
type RecordPatternAssocType struct {
	Name ident.Id
	Span token.Span
}

// RecordPatternField is one value-field entry of a record pattern.
// Pattern is nil for the shorthand `{ x }` form, which binds Name
// directly.
type RecordPatternField struct {
	Name    ident.Id
	Pattern Pattern
	Span    token.Span
}

// RecordPattern matches a record, optionally importing the remaining
// fields implicitly via a trailing `?`. When ImplicitImport is non-nil
// it names the synthesised `implicit?<offset>` binder.
type RecordPattern struct {
	Types          []RecordPatternAssocType
	Fields         []RecordPatternField
	ImplicitImport *ident.Id
	Span           token.Span
}

func (p *RecordPattern) GetSpan() token.Span { return p.Span }
func (*RecordPattern) isPattern()            {}

// AsPattern binds Name to the whole value matched by Inner: `id @ inner`.
type AsPattern struct {
	Name  ident.Id
	Inner Pattern
	Span  token.Span
}

func (p *AsPattern) GetSpan() token.Span { return p.Span }
func (*AsPattern) isPattern()            {}

// ErrorPattern stands in for a pattern that failed to parse. Every
// ErrorPattern corresponds to at least one diagnostic already pushed to
// the sink.
type ErrorPattern struct {
	Span token.Span
}

func (p *ErrorPattern) GetSpan() token.Span { return p.Span }
func (*ErrorPattern) isPattern()            {}

// ImplicitImportName synthesises the binder name for a record pattern's
// trailing `?`, keyed by the byte offset of the `?` token so that two
// distinct imports in the same function never collide.
func ImplicitImportName(questionOffset token.BytePos) string {
	return "implicit?" + itoa(int(questionOffset))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{byte('0' + n%10)}, buf...)
		n /= 10
	}
	if neg {
		buf = append([]byte{'-'}, buf...)
	}
	return string(buf)
}
