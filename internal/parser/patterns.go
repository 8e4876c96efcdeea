package parser

import (
	"github.com/mcgru/corelang/internal/ast"
	"github.com/mcgru/corelang/internal/token"
)

// parsePattern is the pattern grammar's entry point. A parse failure
// substitutes ast.ErrorPattern and pushes a diagnostic rather than
// aborting the whole pattern.
func (p *Parser) parsePattern() ast.Pattern {
	start := p.markL()
	switch {
	case p.curIs(token.IdentUpper):
		return p.parseConstructorPattern()
	case p.curIs(token.IdentLower):
		return p.parseIdentOrAsPattern()
	case isLiteralStart(p.cur.Type):
		return p.parseLiteralPattern()
	case p.curIs(token.LParen):
		return p.parseParenPattern()
	case p.curIs(token.LBrace):
		return p.parseRecordPattern()
	default:
		p.pushUnexpected("pattern")
		p.advance()
		return &ast.ErrorPattern{Span: p.span(start)}
	}
}

// parseIdentOrAsPattern handles a lowercase identifier, with an optional
// `id @ inner` as-binding.
func (p *Parser) parseIdentOrAsPattern() ast.Pattern {
	start := p.markL()
	id := p.ctx.Env.From(p.cur.Text)
	p.advance()
	if p.curIs(token.At) {
		p.advance()
		inner := p.parsePattern()
		return &ast.AsPattern{Name: id, Inner: inner, Span: p.span(start)}
	}
	return &ast.IdentPattern{ID: id, Span: p.span(start)}
}

// parseConstructorPattern parses an uppercase constructor name applied
// to zero or more atomic pattern arguments. A constructor with no atomic
// argument following it still yields a ConstructorPattern with an empty
// Args — every constructor pattern's identifier starts uppercase, so a
// bare uppercase identifier is never left as an IdentPattern.
func (p *Parser) parseConstructorPattern() ast.Pattern {
	start := p.markL()
	id := p.ctx.Env.From(p.cur.Text)
	p.advance()
	var args []ast.Pattern
	for p.atPatternArgStart() {
		args = append(args, p.parseAtomicPatternArg())
	}
	return &ast.ConstructorPattern{ID: id, Args: args, Span: p.span(start)}
}

func (p *Parser) atPatternArgStart() bool {
	switch p.cur.Type {
	case token.IdentLower, token.IdentUpper, token.IntLit, token.ByteLit, token.FloatLit, token.StringLit, token.CharLit, token.LParen, token.LBrace:
		return true
	}
	return false
}

// parseAtomicPatternArg parses one argument position of a constructor
// pattern. An uppercase identifier here never consumes further arguments
// of its own — `Cons (Some y) ys`, not `Cons Some y ys` — nested
// constructors with arguments require parentheses.
func (p *Parser) parseAtomicPatternArg() ast.Pattern {
	start := p.markL()
	switch {
	case p.curIs(token.IdentUpper):
		id := p.ctx.Env.From(p.cur.Text)
		p.advance()
		return &ast.ConstructorPattern{ID: id, Span: p.span(start)}
	case p.curIs(token.IdentLower):
		return p.parseIdentOrAsPattern()
	case isLiteralStart(p.cur.Type):
		return p.parseLiteralPattern()
	case p.curIs(token.LParen):
		return p.parseParenPattern()
	case p.curIs(token.LBrace):
		return p.parseRecordPattern()
	default:
		p.pushUnexpected("pattern")
		p.advance()
		return &ast.ErrorPattern{Span: p.span(start)}
	}
}

func (p *Parser) parseLiteralPattern() ast.Pattern {
	start := p.markL()
	lit, ok := p.parseLiteralValue()
	if !ok {
		p.pushUnexpected("literal")
		p.advance()
		return &ast.ErrorPattern{Span: p.span(start)}
	}
	return &ast.LiteralPattern{Value: lit, Span: p.span(start)}
}

// parseParenPattern parses a parenthesised comma list: zero elements is
// unit, one element with no trailing comma unwraps, and anything else
// (including a single element with a trailing comma) becomes a
// TuplePattern.
func (p *Parser) parseParenPattern() ast.Pattern {
	start := p.markL()
	p.advance() // consume '('
	if p.curIs(token.RParen) {
		p.advance()
		return &ast.TuplePattern{Span: p.span(start)}
	}
	first := p.parsePattern()
	if p.curIs(token.Comma) {
		elems := []ast.Pattern{first}
		for p.curIs(token.Comma) {
			p.advance()
			if p.curIs(token.RParen) {
				break
			}
			elems = append(elems, p.parsePattern())
		}
		p.expect(token.RParen)
		return &ast.TuplePattern{Elems: elems, Span: p.span(start)}
	}
	p.expect(token.RParen)
	return first
}

// parseRecordPattern parses a record pattern, with an optional trailing
// `?` recording an "implicit import" binder named `implicit?<offset>`.
func (p *Parser) parseRecordPattern() ast.Pattern {
	start := p.markL()
	p.advance() // consume '{'
	rp := &ast.RecordPattern{}
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		if p.curIs(token.Question) {
			offset := p.cur.Span.Start
			p.advance()
			id := p.ctx.Env.From(ast.ImplicitImportName(offset))
			rp.ImplicitImport = &id
			break
		}
		fieldStart := p.markL()
		if !(p.curIs(token.IdentLower) || p.curIs(token.IdentUpper)) {
			p.pushUnexpected("identifier")
			p.syncTo(token.Comma, token.RBrace)
			if p.curIs(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		isUpper := p.curIs(token.IdentUpper)
		name := p.ctx.Env.From(p.cur.Text)
		p.advance()
		switch {
		case isUpper:
			rp.Types = append(rp.Types, ast.RecordPatternAssocType{Name: name, Span: p.span(fieldStart)})
		case p.curIs(token.Equals):
			p.advance()
			inner := p.parsePattern()
			rp.Fields = append(rp.Fields, ast.RecordPatternField{Name: name, Pattern: inner, Span: p.span(fieldStart)})
		default:
			rp.Fields = append(rp.Fields, ast.RecordPatternField{Name: name, Span: p.span(fieldStart)})
		}
		if p.curIs(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBrace)
	rp.Span = p.span(start)
	return rp
}
