// Package diagnostics is the parser's error taxonomy and sink: an
// externally-owned queue that the parser only ever appends to, never
// drains or owns.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/mcgru/corelang/internal/token"
)

// Code identifies a distinct diagnosable situation, mirroring the
// teacher's ErrP0xx-style error-code table.
type Code string

const (
	// CodeUnexpectedToken: the recognizer hit a token outside the
	// first-set at a decision point.
	CodeUnexpectedToken Code = "P001"
	// CodeUser: a free-form semantic-action diagnostic (kind misuse,
	// case misuse, kind-in-record).
	CodeUser Code = "P002"
)

// Diagnostic is the taxonomy: either an UnexpectedToken
// with a found/expected pair, or a User message.
type Diagnostic struct {
	Code     Code
	Span     token.Span
	Found    token.Type   // set when Code == CodeUnexpectedToken
	Expected []string     // set when Code == CodeUnexpectedToken; token names or descriptions
	Message  string       // set when Code == CodeUser
}

func (d *Diagnostic) Error() string {
	switch d.Code {
	case CodeUnexpectedToken:
		return fmt.Sprintf("unexpected token: found %s, expected one of %s",
			d.Found, strings.Join(d.Expected, ", "))
	default:
		return d.Message
	}
}

// UnexpectedToken builds a CodeUnexpectedToken diagnostic.
func UnexpectedToken(span token.Span, found token.Type, expected ...string) *Diagnostic {
	return &Diagnostic{Code: CodeUnexpectedToken, Span: span, Found: found, Expected: expected}
}

// User builds a free-form CodeUser diagnostic.
func User(span token.Span, message string) *Diagnostic {
	return &Diagnostic{Code: CodeUser, Span: span, Message: message}
}

// Sink is appended to by the parser and never cleared or read from
// during a parse. *Queue implements it.
type Sink interface {
	Push(d *Diagnostic)
}

// Queue is the default Sink: an ordered, externally-owned list of
// diagnostics. Order reflects discovery order, which is not necessarily
// source order since recovery pushes errors on reduce.
type Queue struct {
	items []*Diagnostic
}

func (q *Queue) Push(d *Diagnostic) { q.items = append(q.items, d) }

func (q *Queue) Items() []*Diagnostic { return q.items }

func (q *Queue) Len() int { return len(q.items) }

// Render formats a diagnostic against source text as a single
// "line:column: message" line, located at the diagnostic's span start.
// No caret line is produced.
func Render(src string, d *Diagnostic) string {
	line, col := lineCol(src, int(d.Span.Start))
	return fmt.Sprintf("%d:%d: %s", line, col, d.Error())
}

func lineCol(src string, offset int) (line, col int) {
	line, col = 1, 1
	if offset > len(src) {
		offset = len(src)
	}
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
