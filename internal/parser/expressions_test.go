package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcgru/corelang/internal/ast"
)

func TestParseExprIdent(t *testing.T) {
	p, ctx := newTestParser("x")
	e := p.parseExpr()
	ie, ok := e.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "x", ctx.Env.String(ie.ID))
}

func TestParseExprApplicationImplicitBeforeExplicit(t *testing.T) {
	p, ctx := newTestParser("f ?i a b")
	e := p.parseExpr()
	app, ok := e.(*ast.AppExpr)
	require.True(t, ok)
	fn, ok := app.Func.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "f", ctx.Env.String(fn.ID))
	require.Len(t, app.ImplicitArgs, 1)
	require.Len(t, app.Args, 2)
}

func TestParseExprInfixRightAssociative(t *testing.T) {
	p, ctx := newTestParser("a + b + c")
	e := p.parseExpr()
	outer, ok := e.(*ast.InfixExpr)
	require.True(t, ok)
	assert.Equal(t, "+", ctx.Env.String(outer.Op.ID))
	_, ok = outer.Lhs.(*ast.IdentExpr)
	require.True(t, ok)
	inner, ok := outer.Rhs.(*ast.InfixExpr)
	require.True(t, ok)
	assert.Equal(t, "+", ctx.Env.String(inner.Op.ID))
}

func TestParseExprLambdaArgsAreTypedIdents(t *testing.T) {
	p, ctx := newTestParser(`\x y -> x`)
	e := p.parseExpr()
	lam, ok := e.(*ast.LambdaExpr)
	require.True(t, ok)
	require.Len(t, lam.Args, 2)
	assert.Equal(t, "x", ctx.Env.String(lam.Args[0].ID))
	require.NotNil(t, lam.Args[0].Type)
}

func TestParseExprTupleVsUnwrap(t *testing.T) {
	p, _ := newTestParser("(1)")
	e := p.parseExpr()
	_, ok := e.(*ast.LiteralExpr)
	assert.True(t, ok)

	p2, _ := newTestParser("(1, 2)")
	e2 := p2.parseExpr()
	tup, ok := e2.(*ast.TupleExpr)
	require.True(t, ok)
	assert.Len(t, tup.Elems, 2)
}

func TestParseExprRecordWithBase(t *testing.T) {
	p, ctx := newTestParser("{ x = 1, ..rest }")
	e := p.parseExpr()
	re, ok := e.(*ast.RecordExpr)
	require.True(t, ok)
	require.Len(t, re.Fields, 1)
	assert.Equal(t, "x", ctx.Env.String(re.Fields[0].Name))
	require.NotNil(t, re.Base)
	base, ok := re.Base.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "rest", ctx.Env.String(base.ID))
}

func TestParseExprProjection(t *testing.T) {
	p, ctx := newTestParser("r.field")
	e := p.parseExpr()
	proj, ok := e.(*ast.ProjectionExpr)
	require.True(t, ok)
	assert.Equal(t, "field", ctx.Env.String(proj.Field))
	_, ok = proj.Expr.(*ast.IdentExpr)
	assert.True(t, ok)
}

func TestParseExprIfElse(t *testing.T) {
	p, _ := newTestParser("if x then 1 else 2")
	e := p.parseExpr()
	ie, ok := e.(*ast.IfElseExpr)
	require.True(t, ok)
	require.NotNil(t, ie.Cond)
	require.NotNil(t, ie.Then)
	require.NotNil(t, ie.Else)
}

func TestParseExprMatchWithArms(t *testing.T) {
	p, ctx := newTestParser("match x with\n  | None -> 0\n  | Some y -> y")
	e := p.parseExpr()
	me, ok := e.(*ast.MatchExpr)
	require.True(t, ok)
	require.Len(t, me.Arms, 2)
	first, ok := me.Arms[0].Pattern.(*ast.ConstructorPattern)
	require.True(t, ok)
	assert.Equal(t, "None", ctx.Env.String(first.ID))
	block, ok := me.Arms[0].Body.(*ast.BlockExpr)
	require.True(t, ok)
	require.Len(t, block.Exprs, 1)
	_, ok = block.Exprs[0].(*ast.LiteralExpr)
	assert.True(t, ok)
	assert.Equal(t, 0, ctx.Errors.Len())
}

func TestParseExprMatchSingleLineArms(t *testing.T) {
	p, ctx := newTestParser("match xs with | Cons x xs -> 1 | Nil -> 0")
	e := p.parseExpr()
	me, ok := e.(*ast.MatchExpr)
	require.True(t, ok)
	require.Len(t, me.Arms, 2)
	first, ok := me.Arms[0].Pattern.(*ast.ConstructorPattern)
	require.True(t, ok)
	assert.Equal(t, "Cons", ctx.Env.String(first.ID))
	second, ok := me.Arms[1].Pattern.(*ast.ConstructorPattern)
	require.True(t, ok)
	assert.Equal(t, "Nil", ctx.Env.String(second.ID))
	assert.Equal(t, 0, ctx.Errors.Len())
}

func TestParseExprMatchArmRecoversMissingArrow(t *testing.T) {
	p, ctx := newTestParser("match x with\n  | None 0\n  | Some y -> y")
	e := p.parseExpr()
	me, ok := e.(*ast.MatchExpr)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(me.Arms), 1)
	assert.Greater(t, ctx.Errors.Len(), 0)
}

func TestParseExprLetInSingleBinding(t *testing.T) {
	p, ctx := newTestParser("let id x = x in id 1")
	e := p.parseExpr()
	let, ok := e.(*ast.LetBindingsExpr)
	require.True(t, ok)
	require.Len(t, let.Bindings, 1)
	assert.Equal(t, "id", ctx.Env.String(let.Bindings[0].Name.ID))
	require.Len(t, let.Bindings[0].Args, 1)
	_, ok = let.Body.(*ast.AppExpr)
	assert.True(t, ok)
}

func TestParseExprLetAndChain(t *testing.T) {
	p, ctx := newTestParser("let a = 1 and b = 2 in a")
	e := p.parseExpr()
	let, ok := e.(*ast.LetBindingsExpr)
	require.True(t, ok)
	require.Len(t, let.Bindings, 2)
	assert.Equal(t, "a", ctx.Env.String(let.Bindings[0].Name.ID))
	assert.Equal(t, "b", ctx.Env.String(let.Bindings[1].Name.ID))
}

func TestParseExprMalformedLetRecovers(t *testing.T) {
	p, ctx := newTestParser("let x = in y")
	e := p.parseExpr()
	let, ok := e.(*ast.LetBindingsExpr)
	require.True(t, ok)
	require.Len(t, let.Bindings, 1)
	assert.Equal(t, "x", ctx.Env.String(let.Bindings[0].Name.ID))
	_, ok = let.Bindings[0].Body.(*ast.ErrorExpr)
	assert.True(t, ok, "binding body should recover as ErrorExpr, not swallow 'in'")
	body, ok := let.Body.(*ast.IdentExpr)
	require.True(t, ok, "let body should be the plain identifier y, not an application swallowing it")
	assert.Equal(t, "y", ctx.Env.String(body.ID))
	assert.Equal(t, 1, ctx.Errors.Len())
}

func TestParseExprDo(t *testing.T) {
	p, ctx := newTestParser("do x = action in x")
	e := p.parseExpr()
	de, ok := e.(*ast.DoExpr)
	require.True(t, ok)
	assert.Equal(t, "x", ctx.Env.String(de.ID))
}

func TestParseExprTypeBindingVariant(t *testing.T) {
	p, ctx := newTestParser("type Option a = |None |Some a in None")
	e := p.parseExpr()
	tb, ok := e.(*ast.TypeBindingsExpr)
	require.True(t, ok)
	require.Len(t, tb.Bindings, 1)
	assert.Equal(t, "Option", ctx.Env.String(tb.Bindings[0].Name.ID))
	require.NotNil(t, tb.Bindings[0].Variant)
	assert.Len(t, tb.Bindings[0].Variant.Fields, 2)
}

func TestParseExprErrorRecoversOnUnknownStart(t *testing.T) {
	p, ctx := newTestParser(")")
	e := p.parseExpr()
	_, ok := e.(*ast.ErrorExpr)
	require.True(t, ok)
	assert.Equal(t, 1, ctx.Errors.Len())
}

func TestAtExprArgStartOnAtomicStarts(t *testing.T) {
	for _, src := range []string{"1", "(x)", "{ x = 1 }", "[1]", "x"} {
		p, _ := newTestParser(src)
		assert.True(t, p.atExprArgStart(), "expected %q to start an argument", src)
	}
	p, _ := newTestParser("-> x")
	assert.False(t, p.atExprArgStart())
}
