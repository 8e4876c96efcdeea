package parser

import (
	"github.com/mcgru/corelang/internal/ast"
	"github.com/mcgru/corelang/internal/token"
)

// TopExpr parses a whole source file: an optional shebang line, then a
// single expression, tolerating (and reporting) any trailing tokens
// rather than silently ignoring them.
func (p *Parser) TopExpr() ast.Expr {
	if p.curIs(token.ShebangLine) {
		p.advance()
	}
	expr := p.parseExpr()
	for !p.curIs(token.EOF) {
		p.pushUnexpected(token.EOF.String())
		p.advance()
	}
	return expr
}

// ReplLine parses one REPL input line, which is either a whole
// expression or an elided `let` binding with no trailing `in` clause. A
// bare `let` line is only recognised as ReplLet when it has no top-level
// `in` before the stream ends; anything else (including a full `let ...
// in ...` expression) falls back to parsing the whole line as a
// LetBindingsExpr wrapped in ReplExpr.
func (p *Parser) ReplLine() ast.ReplLine {
	if p.curIs(token.ShebangLine) {
		p.advance()
	}
	if p.curIs(token.KwLet) && p.looksLikeReplLet() {
		p.advance() // consume 'let'
		binding := p.parseValueBinding()
		for !p.curIs(token.EOF) {
			p.pushUnexpected(token.EOF.String())
			p.advance()
		}
		return ast.ReplLine{Tag: ast.ReplLet, Let: binding}
	}
	expr := p.TopExpr()
	return ast.ReplLine{Tag: ast.ReplExpr, Expr: expr}
}

// looksLikeReplLet scans ahead (without consuming) for a top-level `in`
// keyword before EOF; its absence at depth zero is the signal that this
// `let` line is a REPL-elided binding rather than a full let-expression.
func (p *Parser) looksLikeReplLet() bool {
	depth := 0
	for i := 0; ; i++ {
		tok := p.peekN(i)
		switch tok.Type {
		case token.EOF:
			return true
		case token.BlockOpen:
			depth++
		case token.BlockClose:
			depth--
		case token.KwIn:
			if depth == 0 {
				return false
			}
		case token.KwAnd:
			if depth <= 1 {
				continue
			}
		}
	}
}

// peekN returns the token n positions ahead of cur (0 is cur itself),
// using the parser's own cur/peek slots for the first two positions and
// falling through to the stream for anything further.
func (p *Parser) peekN(n int) token.Token {
	switch n {
	case 0:
		return p.cur
	case 1:
		return p.peek
	default:
		return p.stream.Peek(n - 2)
	}
}
