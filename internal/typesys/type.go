package typesys

import (
	"github.com/mcgru/corelang/internal/ident"
	"github.com/mcgru/corelang/internal/token"
)

// Builtin enumerates the primitive builtins, including the special
// function-arrow builtin (the head of a desugared `(->)` application).
type Builtin int

const (
	IntType Builtin = iota
	FloatType
	ByteType
	StringType
	CharType
	ArrayType
	FunctionType
)

func (b Builtin) String() string {
	switch b {
	case IntType:
		return "Int"
	case FloatType:
		return "Float"
	case ByteType:
		return "Byte"
	case StringType:
		return "String"
	case CharType:
		return "Char"
	case ArrayType:
		return "Array"
	case FunctionType:
		return "->"
	default:
		return "?"
	}
}

// ArgType distinguishes an explicit argument from one wrapped in `[ ... ]`
// at the type level, or prefixed with `?` at the value level.
type ArgType int

const (
	Explicit ArgType = iota
	Implicit
)

// Tag discriminates Type's variants (the AstType sum).
type Tag int

const (
	Hole Tag = iota
	BuiltinT
	IdentT
	GenericT
	AppT
	FunctionT
	ForallT
	RecordT
	VariantT
	TupleT
)

// Param is a type parameter: a lowercase identifier with a (possibly
// hole) kind, or `(id : Kind)`. 
type Param struct {
	ID   ident.Id
	Kind *Kind
}

// AssocType is a record associated-type-alias row entry:
// `id <params>* = Type` or bare `id` (body becomes Hole). 
type AssocType struct {
	Name   ident.Id
	Params []Param
	Value  *Type
	Span   token.Span
}

// Field is a value-field row entry: `id : Type` in a record type, or a
// variant constructor paired with its constructor function type.
type Field struct {
	Name  ident.Id
	Value *Type
	Span  token.Span
}

// Row is an ordered sequence of associated-type entries followed by an
// ordered sequence of field entries, terminated by an empty row.
type Row struct {
	Types  []AssocType
	Fields []Field
}

// Type is the AstType sum type. Only the fields relevant
// to Tag are populated; the zero value of the others is ignored.
type Type struct {
	Tag  Tag
	Span token.Span

	Builtin Builtin // BuiltinT

	Ident ident.Id // IdentT: a (possibly dotted-path-joined) name

	Generic     ident.Id // GenericT
	GenericKind *Kind

	Head *Type   // AppT
	Args []*Type // AppT: curried argument vector

	ArgKind ArgType // FunctionT
	Lhs     *Type   // FunctionT: argument type
	Rhs     *Type   // FunctionT: result type

	ForallVars []Param // ForallT
	ForallBody *Type   // ForallT
	// ForallT's third field is reserved for future inferred-kind
	// information and is always nil in this grammar.

	Row *Row // RecordT, VariantT

	TupleElems []*Type // TupleT, ordered
}

// NewHole returns an unresolved placeholder type at span.
func NewHole(span token.Span) *Type { return &Type{Tag: Hole, Span: span} }

// AsRecordRow desugars a Tuple into the record-with-numeric-field-names
// shape: field "0", "1", ... in order.
func (t *Type) AsRecordRow(env *ident.Env) *Row {
	if t.Tag != TupleT {
		return nil
	}
	row := &Row{Fields: make([]Field, len(t.TupleElems))}
	for i, elem := range t.TupleElems {
		row.Fields[i] = Field{
			Name:  env.From(itoa(i)),
			Value: elem,
			Span:  elem.Span,
		}
	}
	return row
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

// Cache supplies reusable hole nodes, builtin type constructors, and a
// tuple-type constructor over the identifier environment. It is an
// external collaborator; SimpleCache is a usable default.
type Cache interface {
	Hole(span token.Span) *Type
	Builtin(b Builtin, span token.Span) *Type
	Tuple(env *ident.Env, elems []*Type, span token.Span) *Type
}

// SimpleCache is the default Cache: it allocates fresh nodes rather than
// truly caching them, which is sufficient for the parser's purposes (the
// cache's job, from the parser's point of view, is only to centralize
// construction, not to deduplicate).
type SimpleCache struct{}

func (SimpleCache) Hole(span token.Span) *Type { return NewHole(span) }

func (SimpleCache) Builtin(b Builtin, span token.Span) *Type {
	return &Type{Tag: BuiltinT, Builtin: b, Span: span}
}

func (SimpleCache) Tuple(env *ident.Env, elems []*Type, span token.Span) *Type {
	return &Type{Tag: TupleT, TupleElems: elems, Span: span}
}
