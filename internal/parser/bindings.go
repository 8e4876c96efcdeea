package parser

import (
	"github.com/mcgru/corelang/internal/ast"
	"github.com/mcgru/corelang/internal/source"
	"github.com/mcgru/corelang/internal/token"
)

// parseMetadata collects any run of leading doc-comment tokens into a
// single merged Comment (last token's category wins) and any run of
// `#[name(args)]` attributes into Metadata.Attributes.
func (p *Parser) parseMetadata() ast.Metadata {
	var meta ast.Metadata
	var doc *ast.Comment
	for p.curIs(token.DocComment) {
		d, _ := p.cur.Literal.(token.Doc)
		span := p.cur.Span
		if doc == nil {
			doc = &ast.Comment{Category: d.Typ, Text: d.Content, Span: span}
		} else {
			doc.Category = d.Typ
			doc.Text += "\n" + d.Content
			doc.Span = token.Join(doc.Span, span)
		}
		p.advance()
	}
	meta.Doc = doc
	for p.curIs(token.AttrOpen) {
		meta.Attributes = append(meta.Attributes, p.parseAttribute())
	}
	return meta
}

// parseAttribute parses `#[ name ( ... ) ]`, capturing the parenthesised
// argument text verbatim via source.Slice.
func (p *Parser) parseAttribute() ast.Attribute {
	start := p.markL()
	p.advance() // consume '#['
	var name ast.Attribute
	if p.curIs(token.IdentLower) || p.curIs(token.IdentUpper) {
		name.Name = p.ctx.Env.From(p.cur.Text)
		p.advance()
	} else {
		p.pushUnexpected("identifier")
	}
	if p.curIs(token.LParen) {
		p.advance()
		argStart := p.curSpan().Start
		depth := 1
		for !p.curIs(token.EOF) {
			if p.curIs(token.LParen) {
				depth++
			} else if p.curIs(token.RParen) {
				depth--
				if depth == 0 {
					break
				}
			}
			p.advance()
		}
		argEnd := p.curSpan().Start
		name.Arguments = source.Slice(p.ctx.Source, token.Span{Start: argStart, End: argEnd})
		p.expect(token.RParen)
	}
	p.expect(token.RBracket)
	name.Span = p.span(start)
	return name
}

// parseValueBinding parses `meta? (id arg* | pattern) (: Type)? = body`.
func (p *Parser) parseValueBinding() *ast.ValueBinding {
	start := p.markL()
	meta := p.parseMetadata()
	vb := &ast.ValueBinding{Meta: meta}

	if p.curIs(token.IdentLower) {
		nameStart := p.markL()
		id := p.ctx.Env.From(p.cur.Text)
		p.advance()
		vb.Name = &ast.SpannedIdent{ID: id, Span: p.span(nameStart)}
		for p.atArgStart() {
			vb.Args = append(vb.Args, p.parseBindingArg())
		}
	} else {
		vb.Pattern = p.parsePattern()
	}

	if p.curIs(token.Colon) {
		p.advance()
		vb.TypeAnnotation = p.parseType()
	}
	p.expect(token.Equals)
	vb.Body = p.parseExpr()
	vb.Span = p.span(start)
	return vb
}

func (p *Parser) atArgStart() bool {
	if p.curIs(token.Question) {
		return true
	}
	return p.atPatternArgStart()
}

// parseBindingArg parses one argument position of a function-style value
// binding: `?pattern` for an implicit argument, else a bare pattern.
func (p *Parser) parseBindingArg() ast.Arg {
	if p.curIs(token.Question) {
		p.advance()
		return ast.Arg{Pattern: p.parsePattern(), Kind: ast.Implicit}
	}
	return ast.Arg{Pattern: p.parsePattern(), Kind: ast.Explicit}
}

// parseTypeBinding parses `meta? Name param* = (Type | |Variant+)`.
func (p *Parser) parseTypeBinding() *ast.TypeBinding {
	start := p.markL()
	meta := p.parseMetadata()
	tb := &ast.TypeBinding{Meta: meta}

	nameStart := p.markL()
	if p.curIs(token.IdentUpper) || p.curIs(token.IdentLower) {
		id := p.ctx.Env.From(p.cur.Text)
		p.advance()
		tb.Name = ast.SpannedIdent{ID: id, Span: p.span(nameStart)}
	} else {
		p.pushUnexpected("identifier")
	}

	for p.curIs(token.IdentLower) {
		tb.Params = append(tb.Params, p.parseTypeParam())
	}

	if !p.expect(token.Equals) {
		tb.Span = p.span(start)
		return tb
	}

	if p.curIs(token.Pipe) {
		tb.Variant = p.parseVariantRow(tb.Name.ID, tb.Params)
	} else {
		tb.Alias = p.parseType()
	}
	tb.Span = p.span(start)
	return tb
}
