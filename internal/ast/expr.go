package ast

import (
	"github.com/mcgru/corelang/internal/ident"
	"github.com/mcgru/corelang/internal/token"
	"github.com/mcgru/corelang/internal/typesys"
)

// Expr is the sum type.
type Expr interface {
	Spanner
	isExpr()
}

type IdentExpr struct {
	ID   ident.Id
	Span token.Span
}

func (e *IdentExpr) GetSpan() token.Span { return e.Span }
func (*IdentExpr) isExpr()               {}

type LiteralExpr struct {
	Value Literal
	Span  token.Span
}

func (e *LiteralExpr) GetSpan() token.Span { return e.Span }
func (*LiteralExpr) isExpr()               {}

// ProjectionExpr is `e . id` field access.
type ProjectionExpr struct {
	Expr  Expr
	Field ident.Id
	Span  token.Span
}

func (e *ProjectionExpr) GetSpan() token.Span { return e.Span }
func (*ProjectionExpr) isExpr()               {}

// TupleExpr is `(e1, e2, ...)`; a single parenthesised expression with no
// trailing comma unwraps to that expression rather than becoming a
// TupleExpr.
type TupleExpr struct {
	Elems []Expr
	Span  token.Span
}

func (e *TupleExpr) GetSpan() token.Span { return e.Span }
func (*TupleExpr) isExpr()               {}

// ArrayExpr is `[e1, e2, ...]`.
type ArrayExpr struct {
	Elems []Expr
	Span  token.Span
}

func (e *ArrayExpr) GetSpan() token.Span { return e.Span }
func (*ArrayExpr) isExpr()               {}

// RecordExprAssocType is a bare uppercase field reference inside a record
// expression, e.g. `{ Eq }`, referencing an associated type by name.
type RecordExprAssocType struct {
	Name ident.Id
	Span token.Span
}

// RecordExprField is one value field of a record expression. Value is
// nil for the shorthand `{ x }` form.
type RecordExprField struct {
	Name  ident.Id
	Value Expr
	Span  token.Span
}

// RecordExpr is `{ fields, ..base? }`. Base is nil unless a `.. expr`
// base-record extension was written.
type RecordExpr struct {
	Types  []RecordExprAssocType
	Fields []RecordExprField
	Base   Expr
	Span   token.Span
}

func (e *RecordExpr) GetSpan() token.Span { return e.Span }
func (*RecordExpr) isExpr()               {}

// AppExpr is function application: `f ?i1 ?i2 a b`. Implicit arguments
// always precede explicit ones.
type AppExpr struct {
	Func         Expr
	ImplicitArgs []Expr
	Args         []Expr
	Span         token.Span
}

func (e *AppExpr) GetSpan() token.Span { return e.Span }
func (*AppExpr) isExpr()               {}

// LambdaExpr is `\ arg+ -> body`. Lambda arguments are TypedIdents with a
// fresh hole type slot, filled in by later inference; implicit arguments
// are not accepted in lambda syntax.
type LambdaExpr struct {
	Args []TypedIdent
	Body Expr
	Span token.Span
}

func (e *LambdaExpr) GetSpan() token.Span { return e.Span }
func (*LambdaExpr) isExpr()               {}

// InfixExpr is a single-precedence right-associative operator
// application. ImplicitArgs is populated only when elaboration-time
// trait dispatch needs it; the parser always leaves it empty, since
// there is no implicit-argument syntax at an infix operator.
type InfixExpr struct {
	Lhs          Expr
	Op           SpannedIdent
	Rhs          Expr
	ImplicitArgs []Expr
	Span         token.Span
}

func (e *InfixExpr) GetSpan() token.Span { return e.Span }
func (*InfixExpr) isExpr()               {}

type IfElseExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	Span token.Span
}

func (e *IfElseExpr) GetSpan() token.Span { return e.Span }
func (*IfElseExpr) isExpr()               {}

// MatchArm is one `| pat -> block` arm. Recovered arms set
// Pattern to an ErrorPattern and/or Body to an ErrorExpr, keyed by the
// arm's own span so recovery can be keyed per arm.
type MatchArm struct {
	Pattern Pattern
	Body    Expr
	Span    token.Span
}

type MatchExpr struct {
	Scrutinee Expr
	Arms      []MatchArm
	Span      token.Span
}

func (e *MatchExpr) GetSpan() token.Span { return e.Span }
func (*MatchExpr) isExpr()               {}

type LetBindingsExpr struct {
	Bindings []*ValueBinding
	Body     Expr
	Span     token.Span
}

func (e *LetBindingsExpr) GetSpan() token.Span { return e.Span }
func (*LetBindingsExpr) isExpr()               {}

type TypeBindingsExpr struct {
	Bindings []*TypeBinding
	Body     Expr
	Span     token.Span
}

func (e *TypeBindingsExpr) GetSpan() token.Span { return e.Span }
func (*TypeBindingsExpr) isExpr()               {}

// DoExpr is `do id = bound in body`. FlatMapID is always nil at parse
// time; a later desugaring phase fills it in.
type DoExpr struct {
	ID        ident.Id
	Bound     Expr
	Body      Expr
	FlatMapID *ident.Id
	Span      token.Span
}

func (e *DoExpr) GetSpan() token.Span { return e.Span }
func (*DoExpr) isExpr()               {}

// BlockExpr is `block open (expr block separator)* expr block close`,
// the layout-driven continuation used by let/match-arm bodies, top-level
// files, and the REPL.
type BlockExpr struct {
	Exprs []Expr
	Span  token.Span
}

func (e *BlockExpr) GetSpan() token.Span { return e.Span }
func (*BlockExpr) isExpr()               {}

// ErrorExpr stands in for an expression that failed to parse. Inner is
// non-nil when a partially-parsed sub-expression could still be carried
// along for better downstream error messages; every ErrorExpr corresponds
// to at least one diagnostic already pushed to the sink.
type ErrorExpr struct {
	Inner Expr
	Span  token.Span
}

func (e *ErrorExpr) GetSpan() token.Span { return e.Span }
func (*ErrorExpr) isExpr()               {}

// ValueBinding is a `let`/`and` value binding. Exactly one of Name or
// Pattern is set: Name (with Args) for `id arg* = body`, Pattern for a
// destructuring binding, which never takes Args.
type ValueBinding struct {
	Meta           Metadata
	Name           *SpannedIdent
	Pattern        Pattern
	Args           []Arg
	TypeAnnotation *typesys.Type
	ResolvedType   *typesys.Type
	Body           Expr
	Span           token.Span
}

func (b *ValueBinding) GetSpan() token.Span { return b.Span }

// TypeBinding is a `type`/`and` type binding. Exactly one of Alias or
// Variant is set: Alias for a transparent alias (`Name <params> = Type`),
// Variant for a variant declaration (`Name <params> = |C1 ... |Cn ...`).
type TypeBinding struct {
	Meta           Metadata
	Name           SpannedIdent
	Params         []typesys.Param
	Alias          *typesys.Type
	Variant        *typesys.Row
	FinalizedAlias *typesys.Type
	Span           token.Span
}

func (b *TypeBinding) GetSpan() token.Span { return b.Span }

// ReplLineTag discriminates ReplLine's two shapes.
type ReplLineTag int

const (
	ReplExpr ReplLineTag = iota
	ReplLet
)

// ReplLine is the result of parsing a single REPL input line: either a
// whole expression or an elided `let` binding.
type ReplLine struct {
	Tag  ReplLineTag
	Expr Expr
	Let  *ValueBinding
}
