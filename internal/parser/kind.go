package parser

import (
	"github.com/mcgru/corelang/internal/token"
	"github.com/mcgru/corelang/internal/typesys"
)

// parseAtomicKind recognises one of the keyword identifiers `_`, `Type`,
// `Row`, or a parenthesised kind.
func (p *Parser) parseAtomicKind() *typesys.Kind {
	switch {
	case p.curIs(token.IdentLower) && p.cur.Text == "_":
		p.advance()
		return typesys.HoleKind()
	case p.curIs(token.IdentUpper) && p.cur.Text == "Type":
		p.advance()
		return typesys.TypeKind
	case p.curIs(token.IdentUpper) && p.cur.Text == "Row":
		p.advance()
		return typesys.RowKind
	case p.curIs(token.LParen):
		p.advance()
		k := p.parseKind()
		p.expect(token.RParen)
		return k
	default:
		p.pushUnexpected(typesys.AtomicKindNames...)
		p.advance()
		return typesys.HoleKind()
	}
}

// parseKind composes atomic kinds with `->`, right-associative.
func (p *Parser) parseKind() *typesys.Kind {
	left := p.parseAtomicKind()
	if p.curIs(token.Arrow) {
		p.advance()
		right := p.parseKind()
		return typesys.Arrow(left, right)
	}
	return left
}
