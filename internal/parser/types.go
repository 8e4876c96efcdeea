package parser

import (
	"github.com/mcgru/corelang/internal/ident"
	"github.com/mcgru/corelang/internal/token"
	"github.com/mcgru/corelang/internal/typesys"
)

// parseType is the top-level type rule: forall, then function types,
// then application, then atomics.
func (p *Parser) parseType() *typesys.Type {
	return p.parseForallType()
}

// parseForallType handles `forall v1 v2 ... . T`; its variables all
// receive hole kinds.
func (p *Parser) parseForallType() *typesys.Type {
	if !p.curIs(token.KwForall) {
		return p.parseFunctionType()
	}
	start := p.markL()
	p.advance()
	var vars []typesys.Param
	for p.curIs(token.IdentLower) {
		vars = append(vars, typesys.Param{ID: p.ctx.Env.From(p.cur.Text), Kind: typesys.HoleKind()})
		p.advance()
	}
	p.expect(token.Dot)
	body := p.parseType()
	// Forall's third field is reserved for a later phase; always nil here.
	return &typesys.Type{Tag: typesys.ForallT, ForallVars: vars, ForallBody: body, Span: p.span(start)}
}

// parseFunctionType accepts either an explicit argument type or a
// bracketed implicit argument type as left-hand side, then `->`, then a
// recursive right-hand side (right-associative).
func (p *Parser) parseFunctionType() *typesys.Type {
	start := p.markL()
	if p.curIs(token.LBracket) {
		p.advance()
		argT := p.parseType()
		p.expect(token.RBracket)
		p.expect(token.Arrow)
		rhs := p.parseFunctionType()
		return &typesys.Type{Tag: typesys.FunctionT, ArgKind: typesys.Implicit, Lhs: argT, Rhs: rhs, Span: p.span(start)}
	}
	lhs := p.parseAppliedType()
	if p.curIs(token.Arrow) {
		p.advance()
		rhs := p.parseFunctionType()
		return &typesys.Type{Tag: typesys.FunctionT, ArgKind: typesys.Explicit, Lhs: lhs, Rhs: rhs, Span: p.span(start)}
	}
	return lhs
}

// atTypeArgStart reports whether cur can begin an atomic type, used to
// decide whether an application continues.
func (p *Parser) atTypeArgStart() bool {
	switch p.cur.Type {
	case token.IdentLower, token.IdentUpper, token.LParen, token.LBrace:
		return true
	}
	return false
}

// parseAppliedType attaches a non-empty argument list of atomic types to
// an atomic head.
func (p *Parser) parseAppliedType() *typesys.Type {
	start := p.markL()
	head := p.parseAtomicType()
	if !p.atTypeArgStart() {
		return head
	}
	var args []*typesys.Type
	for p.atTypeArgStart() {
		args = append(args, p.parseAtomicType())
	}
	return &typesys.Type{Tag: typesys.AppT, Head: head, Args: args, Span: p.span(start)}
}

// parseAtomicType recognises the parenthesised function-arrow
// constructor `(->)`, a (possibly dotted-path) identifier, parenthesised
// tuples (1-arity unwraps), and record-type braces.
func (p *Parser) parseAtomicType() *typesys.Type {
	start := p.markL()
	switch {
	case p.curIs(token.LParen) && p.peekIs(token.Arrow):
		p.advance()
		p.advance()
		p.expect(token.RParen)
		return &typesys.Type{Tag: typesys.BuiltinT, Builtin: typesys.FunctionType, Span: p.span(start)}

	case p.curIs(token.LParen):
		p.advance()
		if p.curIs(token.RParen) {
			p.advance()
			return &typesys.Type{Tag: typesys.TupleT, Span: p.span(start)}
		}
		elems := []*typesys.Type{p.parseType()}
		for p.curIs(token.Comma) {
			p.advance()
			elems = append(elems, p.parseType())
		}
		p.expect(token.RParen)
		if len(elems) == 1 {
			return elems[0]
		}
		return &typesys.Type{Tag: typesys.TupleT, TupleElems: elems, Span: p.span(start)}

	case p.curIs(token.LBrace):
		p.advance()
		row := p.parseRecordTypeRow()
		return &typesys.Type{Tag: typesys.RecordT, Row: row, Span: p.span(start)}

	case p.curIs(token.IdentLower) || p.curIs(token.IdentUpper):
		firstUpper := p.curIs(token.IdentUpper)
		text := p.cur.Text
		p.advance()
		dotted := false
		for p.curIs(token.Dot) && (p.peekIs(token.IdentUpper) || p.peekIs(token.IdentLower)) {
			dotted = true
			p.advance()
			text += "." + p.cur.Text
			p.advance()
		}
		id := p.ctx.Env.From(text)
		// A dotted path is treated as a single Ident regardless of the
		// case of its segments.
		if dotted || firstUpper {
			return &typesys.Type{Tag: typesys.IdentT, Ident: id, Span: p.span(start)}
		}
		return &typesys.Type{Tag: typesys.GenericT, Generic: id, GenericKind: typesys.HoleKind(), Span: p.span(start)}

	default:
		p.pushUnexpected("type")
		p.advance()
		return typesys.NewHole(p.span(start))
	}
}

// parseTypeParam parses a bare lowercase identifier (with a hole kind)
// or `(id : Kind)`.
func (p *Parser) parseTypeParam() typesys.Param {
	if p.curIs(token.LParen) {
		p.advance()
		id := p.ctx.Env.From(p.cur.Text)
		p.expect(token.IdentLower, "identifier")
		p.expect(token.Colon)
		k := p.parseKind()
		p.expect(token.RParen)
		return typesys.Param{ID: id, Kind: k}
	}
	id := p.ctx.Env.From(p.cur.Text)
	p.advance()
	return typesys.Param{ID: id, Kind: typesys.HoleKind()}
}

// parseRecordTypeRow parses a record type's entries, partitioning them
// into associated-type and value-field rows.
func (p *Parser) parseRecordTypeRow() *typesys.Row {
	row := &typesys.Row{}
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		entryStart := p.markL()
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
		case p.curIs(token.Colon):
			p.advance()
			typ := p.parseType()
			span := p.span(entryStart)
			if isUpper {
				p.pushUser(span, "defining a kind for a type in this location is not supported yet")
				row.Types = append(row.Types, typesys.AssocType{Name: name, Value: typ, Span: span})
			} else {
				row.Fields = append(row.Fields, typesys.Field{Name: name, Value: typ, Span: span})
			}

		case p.curIs(token.Equals):
			p.advance()
			typ := p.parseType()
			row.Types = append(row.Types, typesys.AssocType{Name: name, Value: typ, Span: p.span(entryStart)})

		case p.curIs(token.IdentLower):
			var params []typesys.Param
			for p.curIs(token.IdentLower) {
				params = append(params, p.parseTypeParam())
			}
			var value *typesys.Type
			if p.expect(token.Equals) {
				value = p.parseType()
			} else {
				value = typesys.NewHole(p.curSpan())
			}
			row.Types = append(row.Types, typesys.AssocType{Name: name, Params: params, Value: value, Span: p.span(entryStart)})

		default:
			row.Types = append(row.Types, typesys.AssocType{Name: name, Value: typesys.NewHole(p.span(entryStart)), Span: p.span(entryStart)})
		}

		if p.curIs(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBrace)
	return row
}

// parseVariantRow parses `| Name AtomicType*` entries for a type binding
// of the shape `Name <params> = |Variant1 ... |Variantn ...`. Each
// constructor maps to the function type `args -> ApplyName`.
func (p *Parser) parseVariantRow(headName ident.Id, params []typesys.Param) *typesys.Row {
	row := &typesys.Row{}
	for p.curIs(token.Pipe) {
		entryStart := p.markL()
		p.advance()
		if !p.curIs(token.IdentUpper) {
			p.pushUnexpected("constructor")
			p.syncTo(token.Pipe, token.KwIn, token.KwAnd, token.BlockClose, token.BlockSeparator)
			continue
		}
		name := p.ctx.Env.From(p.cur.Text)
		p.advance()

		var argTypes []*typesys.Type
		for p.atTypeArgStart() {
			argTypes = append(argTypes, p.parseAtomicType())
		}

		head := &typesys.Type{Tag: typesys.IdentT, Ident: headName}
		var result *typesys.Type = head
		if len(params) > 0 {
			args := make([]*typesys.Type, len(params))
			for i, prm := range params {
				args[i] = &typesys.Type{Tag: typesys.GenericT, Generic: prm.ID, GenericKind: prm.Kind}
			}
			result = &typesys.Type{Tag: typesys.AppT, Head: head, Args: args}
		}

		ctorType := result
		for i := len(argTypes) - 1; i >= 0; i-- {
			ctorType = &typesys.Type{Tag: typesys.FunctionT, ArgKind: typesys.Explicit, Lhs: argTypes[i], Rhs: ctorType}
		}

		row.Fields = append(row.Fields, typesys.Field{Name: name, Value: ctorType, Span: p.span(entryStart)})
	}
	return row
}
