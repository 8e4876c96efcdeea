package parser

import (
	"github.com/mcgru/corelang/internal/ast"
	"github.com/mcgru/corelang/internal/token"
)

// isLiteralStart reports whether t begins a literal token, shared by the
// pattern and expression atomic rules.
func isLiteralStart(t token.Type) bool {
	switch t {
	case token.IntLit, token.ByteLit, token.FloatLit, token.StringLit, token.CharLit:
		return true
	}
	return false
}

// parseLiteralValue decodes cur's payload into an ast.Literal and
// consumes it, reporting false if cur is not a literal token.
func (p *Parser) parseLiteralValue() (ast.Literal, bool) {
	switch p.cur.Type {
	case token.IntLit:
		v, _ := p.cur.Literal.(int64)
		p.advance()
		return ast.Literal{Tag: ast.LitInt, Int: v}, true
	case token.ByteLit:
		v, _ := p.cur.Literal.(uint8)
		p.advance()
		return ast.Literal{Tag: ast.LitByte, Byte: v}, true
	case token.FloatLit:
		v, _ := p.cur.Literal.(float64)
		p.advance()
		return ast.Literal{Tag: ast.LitFloat, Float: v}, true
	case token.StringLit:
		v, _ := p.cur.Literal.(string)
		p.advance()
		return ast.Literal{Tag: ast.LitString, String: v}, true
	case token.CharLit:
		v, _ := p.cur.Literal.(rune)
		p.advance()
		return ast.Literal{Tag: ast.LitChar, Char: v}, true
	default:
		return ast.Literal{}, false
	}
}
