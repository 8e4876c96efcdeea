package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcgru/corelang/internal/ast"
)

func TestTopExprSingleExpression(t *testing.T) {
	p, ctx := newTestParser("x")
	e := p.TopExpr()
	_, ok := e.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, 0, ctx.Errors.Len())
}

func TestTopExprToleratesTrailingTokens(t *testing.T) {
	p, ctx := newTestParser("x )")
	e := p.TopExpr()
	_, ok := e.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, 1, ctx.Errors.Len())
}

func TestTopExprSkipsLeadingShebang(t *testing.T) {
	p, ctx := newTestParser("#!/usr/bin/env corelang\nx")
	e := p.TopExpr()
	ie, ok := e.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "x", ctx.Env.String(ie.ID))
	assert.Equal(t, 0, ctx.Errors.Len())
}

func TestReplLinePlainExpression(t *testing.T) {
	p, _ := newTestParser("x + 1")
	rl := p.ReplLine()
	assert.Equal(t, ast.ReplExpr, rl.Tag)
	require.NotNil(t, rl.Expr)
}

func TestReplLineElidedLetBecomesReplLet(t *testing.T) {
	p, ctx := newTestParser("let x = 1")
	rl := p.ReplLine()
	require.Equal(t, ast.ReplLet, rl.Tag)
	require.NotNil(t, rl.Let)
	assert.Equal(t, "x", ctx.Env.String(rl.Let.Name.ID))
}

func TestReplLineFullLetExpressionIsNotElided(t *testing.T) {
	p, _ := newTestParser("let x = 1 in x")
	rl := p.ReplLine()
	require.Equal(t, ast.ReplExpr, rl.Tag)
	_, ok := rl.Expr.(*ast.LetBindingsExpr)
	assert.True(t, ok)
}
