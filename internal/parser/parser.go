// Package parser implements a hand-written
// recursive-descent / operator-precedence recognizer over a
// token.Stream, producing a spanned AST and pushing diagnostics into a
// shared queue rather than aborting on error.
package parser

import (
	"github.com/mcgru/corelang/internal/diagnostics"
	"github.com/mcgru/corelang/internal/pipeline"
	"github.com/mcgru/corelang/internal/token"
)

// Parser holds the recognizer's state: a one-token lookahead cursor over
// the stream, plus the shared pipeline context it reads the identifier
// environment from and appends diagnostics to. The context's type cache
// is not read: hole and builtin type nodes are built directly through
// package typesys.
type Parser struct {
	stream token.Stream
	cur    token.Token
	peek   token.Token

	// lastRealEnd is the End of the most recently consumed non-layout
	// token; span-capturing rules use it as their "@R" marker so that
	// synthetic block tokens never widen a reported span — spans are
	// computed from the non-layout tokens actually consumed, rather than
	// via a post-processing shrink-hidden-spans pass over a parse tree.
	lastRealEnd token.BytePos
	started     bool

	ctx *pipeline.Context
}

// New builds a Parser over stream and primes its two-token lookahead. A
// leading shebang line token is left in place; TopExpr and ReplLine skip
// it.
func New(stream token.Stream, ctx *pipeline.Context) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	p.advance()
	p.advance()
	return p
}

// advance shifts peek into cur and reads a new peek from the stream,
// tracking lastRealEnd for span computation.
func (p *Parser) advance() {
	if p.started && !isLayout(p.cur.Type) {
		p.lastRealEnd = p.cur.Span.End
	}
	p.started = true
	p.cur = p.peek
	p.peek = p.stream.Next()
}

func isLayout(t token.Type) bool {
	switch t {
	case token.BlockOpen, token.BlockClose, token.BlockSeparator:
		return true
	}
	return false
}

// markL returns the "@L" start marker: the start of the current token.
func (p *Parser) markL() token.BytePos { return p.cur.Span.Start }

// span builds the span a rule starting at start should report, per
// spanned2(L, R, value).
func (p *Parser) span(start token.BytePos) token.Span {
	end := p.lastRealEnd
	if end < start {
		end = start
	}
	return token.Span{Start: start, End: end}
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expect consumes cur if it has type t, else pushes an UnexpectedToken
// diagnostic and leaves cur in place so the caller's synchronisation
// logic can decide how to recover.
func (p *Parser) expect(t token.Type, expected ...string) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	if len(expected) == 0 {
		expected = []string{t.String()}
	}
	p.pushUnexpected(expected...)
	return false
}

func (p *Parser) pushUnexpected(expected ...string) {
	p.ctx.Errors.Push(diagnostics.UnexpectedToken(p.curSpan(), p.cur.Type, expected...))
}

func (p *Parser) pushUser(span token.Span, message string) {
	p.ctx.Errors.Push(diagnostics.User(span, message))
}

func (p *Parser) curSpan() token.Span {
	if p.cur.Span.Start == 0 && p.cur.Span.End == 0 {
		return token.Span{Start: p.lastRealEnd, End: p.lastRealEnd}
	}
	return p.cur.Span
}

// syncTo advances past tokens, pushing nothing further, until it reaches
// one of the given synchronisation token types (or EOF), without
// consuming the sync token itself. This is the explicit
// synchronisation-set emulation a hand-rolled recursive descent parser
// needs in place of an LR-generator's automatic error productions. It
// always consumes at
// least one token, so recovery cannot loop forever.
func (p *Parser) syncTo(types ...token.Type) {
	p.advance()
	for {
		if p.curIs(token.EOF) {
			return
		}
		for _, t := range types {
			if p.curIs(t) {
				return
			}
		}
		p.advance()
	}
}

