// Package ast defines the spanned abstract syntax tree the parser
// produces: kinds and types live in internal/typesys; everything
// pattern-, expression-, and binding-shaped lives here. 
package ast

import (
	"github.com/mcgru/corelang/internal/ident"
	"github.com/mcgru/corelang/internal/token"
	"github.com/mcgru/corelang/internal/typesys"
)

// Spanner is implemented by every node that can fail, be located in
// diagnostics, or be re-printed.
type Spanner interface {
	GetSpan() token.Span
}

// SpannedIdent is an identifier together with the span of the token it
// came from — used for binding names, type-binding names, and infix
// operators, none of which need the full Pattern/Expr machinery.
type SpannedIdent struct {
	ID   ident.Id
	Span token.Span
}

func (s SpannedIdent) GetSpan() token.Span { return s.Span }

// TypedIdent pairs an Id with a placeholder type slot, initialised to a
// fresh hole at parse time and filled in by a later inference pass
//. Binder positions whose type is never written out
// explicitly — lambda arguments — carry one of these rather than a bare
// SpannedIdent.
type TypedIdent struct {
	ID   ident.Id
	Type *typesys.Type
	Span token.Span
}

func (t TypedIdent) GetSpan() token.Span { return t.Span }

// NewTypedIdent builds a TypedIdent with a fresh hole type at span.
func NewTypedIdent(id ident.Id, span token.Span) TypedIdent {
	return TypedIdent{ID: id, Type: typesys.NewHole(span), Span: span}
}

// LiteralTag discriminates Literal's payload.
type LiteralTag int

const (
	LitInt LiteralTag = iota
	LitByte
	LitFloat
	LitString
	LitChar
)

// Literal is a decoded literal value, shared between patterns and
// expressions.
type Literal struct {
	Tag    LiteralTag
	Int    int64
	Byte   uint8
	Float  float64
	String string
	Char   rune
}

// Comment is a merged doc comment: consecutive `documentation comment`
// tokens joined by newline, with the last token's category (line vs
// block) winning when they differ.
type Comment struct {
	Category token.DocKind
	Text     string
	Span     token.Span
}

// Attribute is a `#[name(args)]` annotation. Arguments is the raw source
// substring captured between the attribute's parentheses.
type Attribute struct {
	Name      ident.Id
	Arguments string
	Span      token.Span
}

// Metadata bundles an optional doc Comment with a binding's attributes.
type Metadata struct {
	Doc        *Comment
	Attributes []Attribute
}

// Arg is one explicit-or-implicit argument in a value binding's argument
// list.
type Arg struct {
	Pattern Pattern
	Kind    ArgType
}

// ArgType mirrors typesys.ArgType for value-level arguments: an argument
// prefixed with `?` in a pattern or call position is Implicit.
type ArgType int

const (
	Explicit ArgType = iota
	Implicit
)
