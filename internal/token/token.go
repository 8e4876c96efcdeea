// Package token defines the shape of the token stream consumed by the
// parser: positions, spans, token kinds, and the literal payloads that
// ride along with literal-bearing tokens.
package token

import "fmt"

// BytePos is a monotonically increasing byte offset into a source buffer.
type BytePos int

// Span is a half-open [Start, End) byte range.
type Span struct {
	Start BytePos
	End   BytePos
}

// Join returns the smallest span covering both a and b.
func Join(a, b Span) Span {
	s := Span{Start: a.Start, End: a.End}
	if b.Start < s.Start {
		s.Start = b.Start
	}
	if b.End > s.End {
		s.End = b.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Type identifies the lexical category of a Token.
type Type int

const (
	EOF Type = iota
	ILLEGAL

	// Virtual layout tokens, synthesized by the lexer to encode
	// whitespace-sensitive structure. 
	BlockOpen
	BlockClose
	BlockSeparator

	ShebangLine

	// Identifiers, split by leading case: lowercase starts a variable,
	// uppercase starts a constructor or type name.
	IdentLower
	IdentUpper

	// Literals.
	IntLit
	ByteLit
	FloatLit
	StringLit
	CharLit
	DocComment

	// Keywords.
	KwAnd
	KwElse
	KwForall
	KwIf
	KwIn
	KwLet
	KwDo
	KwMatch
	KwThen
	KwType
	KwWith

	// Punctuation.
	At
	Colon
	Comma
	Dot
	DotDot
	Equals
	Backslash
	Pipe
	Arrow
	Question

	// Brackets.
	LBrace
	LBracket
	LParen
	RBrace
	RBracket
	RParen

	// '#[' opens an attribute.
	AttrOpen

	// Any operator token that is not one of the punctuation symbols
	// above: parsed right-associative with a single precedence level
	// with no precedence table. The lexeme carries the operator text.
	Operator
)

var names = map[Type]string{
	EOF:            "end of file",
	ILLEGAL:        "illegal token",
	BlockOpen:      "block open",
	BlockClose:     "block close",
	BlockSeparator: "block separator",
	ShebangLine:    "shebang line",
	IdentLower:     "identifier",
	IdentUpper:     "constructor",
	IntLit:         "int literal",
	ByteLit:        "byte literal",
	FloatLit:       "float literal",
	StringLit:      "string literal",
	CharLit:        "char literal",
	DocComment:     "documentation comment",
	KwAnd:          `"and"`,
	KwElse:         `"else"`,
	KwForall:       `"forall"`,
	KwIf:           `"if"`,
	KwIn:           `"in"`,
	KwLet:          `"let"`,
	KwDo:           `"do"`,
	KwMatch:        `"match"`,
	KwThen:         `"then"`,
	KwType:         `"type"`,
	KwWith:         `"with"`,
	At:             `"@"`,
	Colon:          `":"`,
	Comma:          `","`,
	Dot:            `"."`,
	DotDot:         `".."`,
	Equals:         `"="`,
	Backslash:      `"\"`,
	Pipe:           `"|"`,
	Arrow:          `"->"`,
	Question:       `"?"`,
	LBrace:         `"{"`,
	LBracket:       `"["`,
	LParen:         `"("`,
	RBrace:         `"}"`,
	RBracket:       `"]"`,
	RParen:         `")"`,
	AttrOpen:       `"#["`,
	Operator:       "operator",
}

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "unknown token"
}

// Keywords maps a keyword spelling to its Type. Identifiers not present
// here lex as IdentLower/IdentUpper by leading-case.
var Keywords = map[string]Type{
	"and":    KwAnd,
	"else":   KwElse,
	"forall": KwForall,
	"if":     KwIf,
	"in":     KwIn,
	"let":    KwLet,
	"do":     KwDo,
	"match":  KwMatch,
	"then":   KwThen,
	"type":   KwType,
	"with":   KwWith,
}

// DocKind distinguishes a line doc comment (`-- | ...`) from a block doc
// comment (`/** ... */`).
type DocKind int

const (
	DocLine DocKind = iota
	DocBlock
)

// Doc is the decoded payload of a DocComment token.
type Doc struct {
	Typ     DocKind
	Content string
}

// Token is one element of the stream the parser consumes. Literal-bearing
// tokens carry their decoded payload in Literal; its dynamic type depends
// on Type (int64 for IntLit, uint8 for ByteLit, float64 for FloatLit,
// string for StringLit/IdentLower/IdentUpper/Operator/ShebangLine, rune
// for CharLit, Doc for DocComment).
type Token struct {
	Type    Type
	Text    string
	Literal interface{}
	Span    Span
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s(%q)@%s", t.Type, t.Text, t.Span)
	}
	return fmt.Sprintf("%s@%s", t.Type, t.Span)
}

// Stream is the contract the parser needs from a lexer: a one-token
// lookahead cursor over Tokens in source order. A reference
// implementation lives in internal/lexer, but the parser only ever
// depends on this interface.
type Stream interface {
	// Next consumes and returns the next token.
	Next() Token
	// Peek returns the token n positions ahead (0 is the same as the
	// token Next would return) without consuming anything.
	Peek(n int) Token
}
