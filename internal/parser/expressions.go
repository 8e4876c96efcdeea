package parser

import (
	"github.com/mcgru/corelang/internal/ast"
	"github.com/mcgru/corelang/internal/ident"
	"github.com/mcgru/corelang/internal/token"
)

// parseExpr is the expression grammar's entry point: infix operators sit
// above application, which sits above the atomic forms and the control
// forms.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseInfixExpr()
}

// parseInfixExpr parses a single right-associative precedence level of
// operator application.
func (p *Parser) parseInfixExpr() ast.Expr {
	start := p.markL()
	lhs := p.parseAppExpr()
	if !p.curIs(token.Operator) {
		return lhs
	}
	opID := p.ctx.Env.From(p.cur.Text)
	opSpan := p.curSpan()
	p.advance()
	rhs := p.parseInfixExpr()
	return &ast.InfixExpr{
		Lhs:  lhs,
		Op:   ast.SpannedIdent{ID: opID, Span: opSpan},
		Rhs:  rhs,
		Span: p.span(start),
	}
}

// parseAppExpr parses a function application: an atomic/control-form head
// followed by zero or more implicit (`?expr`) arguments, all of which
// precede the explicit atomic arguments.
func (p *Parser) parseAppExpr() ast.Expr {
	start := p.markL()
	head := p.parseAtomicExpr()
	if !p.atExprArgStart() && !p.curIs(token.Question) {
		return head
	}
	var implicit, explicit []ast.Expr
	for p.curIs(token.Question) {
		p.advance()
		implicit = append(implicit, p.parseAtomicExpr())
	}
	for p.atExprArgStart() {
		explicit = append(explicit, p.parseAtomicExpr())
	}
	if len(implicit) == 0 && len(explicit) == 0 {
		return head
	}
	return &ast.AppExpr{Func: head, ImplicitArgs: implicit, Args: explicit, Span: p.span(start)}
}

func (p *Parser) atExprArgStart() bool {
	switch p.cur.Type {
	case token.IdentLower, token.IdentUpper, token.IntLit, token.ByteLit, token.FloatLit,
		token.StringLit, token.CharLit, token.LParen, token.LBrace, token.LBracket:
		return true
	}
	return false
}

// parseAtomicExpr parses one atomic expression followed by any number of
// `.field` projections, used for the head and each argument of an
// application, where application itself must not recurse.
func (p *Parser) parseAtomicExpr() ast.Expr {
	start := p.markL()
	e := p.parseAtomicOrControlExpr()
	for p.curIs(token.Dot) {
		p.advance()
		if !(p.curIs(token.IdentLower) || p.curIs(token.IdentUpper)) {
			p.pushUnexpected("identifier")
			break
		}
		field := p.ctx.Env.From(p.cur.Text)
		p.advance()
		e = &ast.ProjectionExpr{Expr: e, Field: field, Span: p.span(start)}
	}
	return e
}

// parseAtomicOrControlExpr dispatches to the atomic forms (identifier,
// literal, tuple/unit, array, record) and the control forms (if, match,
// let, type, do, lambda, block) that share atomic position.
func (p *Parser) parseAtomicOrControlExpr() ast.Expr {
	start := p.markL()
	switch {
	case p.curIs(token.IdentLower) || p.curIs(token.IdentUpper):
		id := p.ctx.Env.From(p.cur.Text)
		p.advance()
		return &ast.IdentExpr{ID: id, Span: p.span(start)}

	case isLiteralStart(p.cur.Type):
		lit, _ := p.parseLiteralValue()
		return &ast.LiteralExpr{Value: lit, Span: p.span(start)}

	case p.curIs(token.LParen):
		return p.parseParenExpr()

	case p.curIs(token.LBracket):
		return p.parseArrayExpr()

	case p.curIs(token.LBrace):
		return p.parseRecordExpr()

	case p.curIs(token.Backslash):
		return p.parseLambdaExpr()

	case p.curIs(token.KwIf):
		return p.parseIfExpr()

	case p.curIs(token.KwMatch):
		return p.parseMatchExpr()

	case p.curIs(token.KwLet):
		return p.parseLetExpr()

	case p.curIs(token.KwType):
		return p.parseTypeBindingsExpr()

	case p.curIs(token.KwDo):
		return p.parseDoExpr()

	case p.curIs(token.BlockOpen):
		return p.parseBlockExpr()

	default:
		p.pushUnexpected("expression")
		if !p.atExprSyncToken() {
			p.advance()
		}
		return &ast.ErrorExpr{Span: p.span(start)}
	}
}

// atExprSyncToken reports whether cur is a token some enclosing rule is
// about to check for itself (a binding's `in`, an if's `then`/`else`, a
// paren closer, a comma, or a layout boundary). Malformed-expression
// recovery must not consume one of these, or the enclosing rule's own
// recovery never sees it.
func (p *Parser) atExprSyncToken() bool {
	switch p.cur.Type {
	case token.KwIn, token.KwThen, token.KwElse, token.RParen,
		token.Comma, token.BlockClose, token.BlockSeparator, token.EOF:
		return true
	}
	return false
}

// parseParenExpr parses `()`, a single parenthesised expression (which
// unwraps), or a tuple.
func (p *Parser) parseParenExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume '('
	if p.curIs(token.RParen) {
		p.advance()
		return &ast.TupleExpr{Span: p.span(start)}
	}
	first := p.parseExpr()
	if p.curIs(token.Comma) {
		elems := []ast.Expr{first}
		for p.curIs(token.Comma) {
			p.advance()
			if p.curIs(token.RParen) {
				break
			}
			elems = append(elems, p.parseExpr())
		}
		p.expect(token.RParen)
		return &ast.TupleExpr{Elems: elems, Span: p.span(start)}
	}
	p.expect(token.RParen)
	return first
}

func (p *Parser) parseArrayExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume '['
	var elems []ast.Expr
	for !p.curIs(token.RBracket) && !p.curIs(token.EOF) {
		elems = append(elems, p.parseExpr())
		if p.curIs(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBracket)
	return &ast.ArrayExpr{Elems: elems, Span: p.span(start)}
}

// parseRecordExpr parses `{ Types, fields, ..base }`. A field missing `=`
// is shorthand, binding the field name as a variable reference.
func (p *Parser) parseRecordExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume '{'
	re := &ast.RecordExpr{}
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		if p.curIs(token.DotDot) {
			p.advance()
			re.Base = p.parseExpr()
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
			re.Types = append(re.Types, ast.RecordExprAssocType{Name: name, Span: p.span(fieldStart)})
		case p.curIs(token.Equals):
			p.advance()
			val := p.parseExpr()
			re.Fields = append(re.Fields, ast.RecordExprField{Name: name, Value: val, Span: p.span(fieldStart)})
		default:
			re.Fields = append(re.Fields, ast.RecordExprField{Name: name, Span: p.span(fieldStart)})
		}
		if p.curIs(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBrace)
	re.Span = p.span(start)
	return re
}

// parseLambdaExpr parses `\ arg+ -> body`. Lambda arguments are
// lowercase identifiers, each given a fresh hole type (ast.TypedIdent);
// implicit-argument syntax is rejected here.
func (p *Parser) parseLambdaExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume '\'
	var args []ast.TypedIdent
	for p.curIs(token.IdentLower) {
		argStart := p.markL()
		id := p.ctx.Env.From(p.cur.Text)
		p.advance()
		args = append(args, ast.NewTypedIdent(id, p.span(argStart)))
	}
	if len(args) == 0 {
		p.pushUnexpected("identifier")
	}
	p.expect(token.Arrow)
	body := p.parseExpr()
	return &ast.LambdaExpr{Args: args, Body: body, Span: p.span(start)}
}

func (p *Parser) parseIfExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume 'if'
	cond := p.parseExpr()
	p.expect(token.KwThen)
	then := p.parseExpr()
	p.expect(token.KwElse)
	els := p.parseExpr()
	return &ast.IfElseExpr{Cond: cond, Then: then, Else: els, Span: p.span(start)}
}

// parseMatchExpr parses `match scrutinee with block open (| pat -> block
// separator?)* block close`, recovering per-arm on malformed input so one
// bad arm does not abort the whole match. `|` delimits arms, so a
// following block separator is consumed when present but never required:
// the reference lexer only ever opens one block for the whole arm list,
// not one per line, so arms written on a single source line never see a
// separator between them.
func (p *Parser) parseMatchExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume 'match'
	scrutinee := p.parseExpr()
	p.expect(token.KwWith)
	p.expect(token.BlockOpen)

	var arms []ast.MatchArm
	for p.curIs(token.Pipe) {
		arms = append(arms, p.parseMatchArm())
		if p.curIs(token.BlockSeparator) {
			p.advance()
		}
	}
	if !p.curIs(token.BlockClose) {
		p.pushUnexpected("block close")
		p.syncTo(token.BlockClose)
	}
	p.expect(token.BlockClose)
	return &ast.MatchExpr{Scrutinee: scrutinee, Arms: arms, Span: p.span(start)}
}

// parseMatchArm implements three recovery shapes: a well-formed
// `| pat -> block`, a missing arrow (body recovers as
// ErrorExpr), and a malformed pattern (pattern recovers as ErrorPattern,
// parsing resumes at `->` if present).
func (p *Parser) parseMatchArm() ast.MatchArm {
	start := p.markL()
	p.advance() // consume '|'
	pat := p.parsePattern()
	if !p.curIs(token.Arrow) {
		p.pushUnexpected(token.Arrow.String())
		p.syncTo(token.Arrow, token.Pipe, token.BlockSeparator, token.BlockClose)
		if !p.curIs(token.Arrow) {
			return ast.MatchArm{Pattern: pat, Body: &ast.ErrorExpr{Span: p.span(start)}, Span: p.span(start)}
		}
	}
	p.advance() // consume '->'
	bodyStart := p.markL()
	expr := p.parseExpr()
	body := &ast.BlockExpr{Exprs: []ast.Expr{expr}, Span: p.span(bodyStart)}
	return ast.MatchArm{Pattern: pat, Body: body, Span: p.span(start)}
}

// parseLetExpr parses `let binding (and binding)* in body`.
func (p *Parser) parseLetExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume 'let'
	bindings := []*ast.ValueBinding{p.parseValueBinding()}
	for p.curIs(token.KwAnd) {
		p.advance()
		bindings = append(bindings, p.parseValueBinding())
	}
	p.skipExtraTokensBeforeIn()
	p.expect(token.KwIn)
	body := p.parseExpr()
	return &ast.LetBindingsExpr{Bindings: bindings, Body: body, Span: p.span(start)}
}

// parseTypeBindingsExpr parses `type binding (and binding)* in body`.
func (p *Parser) parseTypeBindingsExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume 'type'
	bindings := []*ast.TypeBinding{p.parseTypeBinding()}
	for p.curIs(token.KwAnd) {
		p.advance()
		bindings = append(bindings, p.parseTypeBinding())
	}
	p.skipExtraTokensBeforeIn()
	p.expect(token.KwIn)
	body := p.parseExpr()
	return &ast.TypeBindingsExpr{Bindings: bindings, Body: body, Span: p.span(start)}
}

// skipExtraTokensBeforeIn tolerates stray tokens between the last binding
// and `in`, recovering to the next `in`/block-close/EOF rather than
// failing the whole binding group.
func (p *Parser) skipExtraTokensBeforeIn() {
	if p.curIs(token.KwIn) || p.curIs(token.EOF) {
		return
	}
	p.pushUnexpected(token.KwIn.String())
	for !p.curIs(token.KwIn) && !p.curIs(token.EOF) && !p.curIs(token.BlockClose) {
		p.advance()
	}
}

// parseDoExpr parses `do id = bound in body`.
func (p *Parser) parseDoExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume 'do'
	var id ident.Id
	if p.curIs(token.IdentLower) {
		id = p.ctx.Env.From(p.cur.Text)
		p.advance()
	} else {
		p.pushUnexpected("identifier")
	}
	p.expect(token.Equals)
	bound := p.parseExpr()
	p.expect(token.KwIn)
	body := p.parseExpr()
	return &ast.DoExpr{ID: id, Bound: bound, Body: body, Span: p.span(start)}
}

// parseBlockExpr assembles `block open (expr block separator)* expr block
// close`.
func (p *Parser) parseBlockExpr() ast.Expr {
	start := p.markL()
	p.advance() // consume block open
	var exprs []ast.Expr
	for !p.curIs(token.BlockClose) && !p.curIs(token.EOF) {
		exprs = append(exprs, p.parseExpr())
		if p.curIs(token.BlockSeparator) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.BlockClose)
	return &ast.BlockExpr{Exprs: exprs, Span: p.span(start)}
}
