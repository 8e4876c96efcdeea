package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcgru/corelang/internal/ast"
)

func TestParsePatternIdent(t *testing.T) {
	p, ctx := newTestParser("x")
	pat := p.parsePattern()
	ip, ok := pat.(*ast.IdentPattern)
	require.True(t, ok)
	assert.Equal(t, "x", ctx.Env.String(ip.ID))
}

func TestParsePatternAsBinding(t *testing.T) {
	p, ctx := newTestParser("whole @ (x, y)")
	pat := p.parsePattern()
	ap, ok := pat.(*ast.AsPattern)
	require.True(t, ok)
	assert.Equal(t, "whole", ctx.Env.String(ap.Name))
	_, ok = ap.Inner.(*ast.TuplePattern)
	assert.True(t, ok)
}

func TestParsePatternBareConstructorHasNoArgs(t *testing.T) {
	p, ctx := newTestParser("None")
	pat := p.parsePattern()
	cp, ok := pat.(*ast.ConstructorPattern)
	require.True(t, ok)
	assert.Equal(t, "None", ctx.Env.String(cp.ID))
	assert.Empty(t, cp.Args)
}

func TestParsePatternConstructorWithArgsDoesNotGreedilyNestConstructors(t *testing.T) {
	p, ctx := newTestParser("Cons (Some y) ys")
	pat := p.parsePattern()
	cp, ok := pat.(*ast.ConstructorPattern)
	require.True(t, ok)
	assert.Equal(t, "Cons", ctx.Env.String(cp.ID))
	require.Len(t, cp.Args, 2)

	some, ok := cp.Args[0].(*ast.ConstructorPattern)
	require.True(t, ok)
	assert.Equal(t, "Some", ctx.Env.String(some.ID))
	require.Len(t, some.Args, 1)

	ys, ok := cp.Args[1].(*ast.IdentPattern)
	require.True(t, ok)
	assert.Equal(t, "ys", ctx.Env.String(ys.ID))
}

func TestParsePatternNestedConstructorArgWithoutParensStopsAtZeroArity(t *testing.T) {
	p, ctx := newTestParser("Pair Some x")
	pat := p.parsePattern()
	cp, ok := pat.(*ast.ConstructorPattern)
	require.True(t, ok)
	require.Len(t, cp.Args, 2)
	some, ok := cp.Args[0].(*ast.ConstructorPattern)
	require.True(t, ok)
	assert.Empty(t, some.Args)
	_ = ctx
}

func TestParsePatternLiteral(t *testing.T) {
	p, _ := newTestParser("42")
	pat := p.parsePattern()
	lp, ok := pat.(*ast.LiteralPattern)
	require.True(t, ok)
	assert.Equal(t, int64(42), lp.Value.Int)
}

func TestParsePatternUnitParens(t *testing.T) {
	p, _ := newTestParser("()")
	pat := p.parsePattern()
	tp, ok := pat.(*ast.TuplePattern)
	require.True(t, ok)
	assert.Empty(t, tp.Elems)
}

func TestParsePatternParenUnwrapsSingleElement(t *testing.T) {
	p, ctx := newTestParser("(x)")
	pat := p.parsePattern()
	ip, ok := pat.(*ast.IdentPattern)
	require.True(t, ok)
	assert.Equal(t, "x", ctx.Env.String(ip.ID))
}

func TestParsePatternTrailingCommaSingleElementIsTuple(t *testing.T) {
	p, _ := newTestParser("(x,)")
	pat := p.parsePattern()
	tp, ok := pat.(*ast.TuplePattern)
	require.True(t, ok)
	assert.Len(t, tp.Elems, 1)
}

func TestParsePatternRecordShorthandAndBoundFields(t *testing.T) {
	p, ctx := newTestParser("{ x, y = inner }")
	pat := p.parsePattern()
	rp, ok := pat.(*ast.RecordPattern)
	require.True(t, ok)
	require.Len(t, rp.Fields, 2)
	assert.Equal(t, "x", ctx.Env.String(rp.Fields[0].Name))
	assert.Nil(t, rp.Fields[0].Pattern)
	assert.Equal(t, "y", ctx.Env.String(rp.Fields[1].Name))
	require.NotNil(t, rp.Fields[1].Pattern)
}

func TestParsePatternRecordImplicitImport(t *testing.T) {
	p, _ := newTestParser("{ x, ? }")
	pat := p.parsePattern()
	rp, ok := pat.(*ast.RecordPattern)
	require.True(t, ok)
	require.NotNil(t, rp.ImplicitImport)
}

func TestParsePatternErrorPushesDiagnostic(t *testing.T) {
	p, ctx := newTestParser("->")
	pat := p.parsePattern()
	_, ok := pat.(*ast.ErrorPattern)
	require.True(t, ok)
	assert.Equal(t, 1, ctx.Errors.Len())
}
