package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcgru/corelang/internal/token"
)

func collectTypes(l *Lexer, n int) []token.Type {
	out := make([]token.Type, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, l.Next().Type)
	}
	return out
}

func TestLexerIdentifiersKeywordsAndPunctuation(t *testing.T) {
	l := New("let x = 1 in x")
	got := collectTypes(l, 7)
	want := []token.Type{
		token.KwLet, token.IdentLower, token.Equals, token.IntLit,
		token.KwIn, token.IdentLower, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestLexerUppercaseIdentIsIdentUpper(t *testing.T) {
	l := New("Some")
	tok := l.Next()
	require.Equal(t, token.IdentUpper, tok.Type)
	assert.Equal(t, "Some", tok.Text)
}

func TestLexerOperatorRun(t *testing.T) {
	l := New("a <*> b")
	l.Next() // a
	op := l.Next()
	require.Equal(t, token.Operator, op.Type)
	assert.Equal(t, "<*>", op.Text)
}

func TestLexerIntByteAndFloatLiterals(t *testing.T) {
	l := New("42 7b 3.14")
	intTok := l.Next()
	require.Equal(t, token.IntLit, intTok.Type)
	assert.Equal(t, int64(42), intTok.Literal)

	byteTok := l.Next()
	require.Equal(t, token.ByteLit, byteTok.Type)
	assert.Equal(t, uint8(7), byteTok.Literal)

	floatTok := l.Next()
	require.Equal(t, token.FloatLit, floatTok.Type)
	assert.Equal(t, 3.14, floatTok.Literal)
}

func TestLexerStringAndCharEscapes(t *testing.T) {
	l := New(`"a\nb" '\t'`)
	s := l.Next()
	require.Equal(t, token.StringLit, s.Type)
	assert.Equal(t, "a\nb", s.Literal)

	c := l.Next()
	require.Equal(t, token.CharLit, c.Type)
	assert.Equal(t, '\t', c.Literal)
}

func TestLexerShebangLineIsEmittedFirst(t *testing.T) {
	l := New("#!/usr/bin/env corelang\nx")
	first := l.Next()
	require.Equal(t, token.ShebangLine, first.Type)
	assert.Equal(t, "#!/usr/bin/env corelang", first.Text)
	second := l.Next()
	assert.Equal(t, token.IdentLower, second.Type)
}

func TestLexerNoShebangWhenAbsent(t *testing.T) {
	l := New("x")
	first := l.Next()
	assert.Equal(t, token.IdentLower, first.Type)
}

func TestLexerDocLineVsPlainComment(t *testing.T) {
	l := New("-- | a doc line\nx")
	doc := l.Next()
	require.Equal(t, token.DocComment, doc.Type)
	d, ok := doc.Literal.(token.Doc)
	require.True(t, ok)
	assert.Equal(t, token.DocLine, d.Typ)
	assert.Equal(t, "a doc line", d.Content)

	l2 := New("-- not a doc\nx")
	tok := l2.Next()
	assert.Equal(t, token.IdentLower, tok.Type)
}

func TestLexerDocBlockVsPlainBlockComment(t *testing.T) {
	l := New("/** a doc block */x")
	doc := l.Next()
	require.Equal(t, token.DocComment, doc.Type)
	d, ok := doc.Literal.(token.Doc)
	require.True(t, ok)
	assert.Equal(t, token.DocBlock, d.Typ)
	assert.Equal(t, " a doc block ", d.Content)

	l2 := New("/* a plain block */x")
	tok := l2.Next()
	assert.Equal(t, token.IdentLower, tok.Type)
}

func TestLexerWithOpensBlockAtFirstArmColumn(t *testing.T) {
	l := New("match x with\n  | None -> 0\n  | Some y -> y")
	var types []token.Type
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	require.Contains(t, types, token.BlockOpen)
	require.Contains(t, types, token.BlockSeparator)
	require.Contains(t, types, token.BlockClose)

	openIdx := indexOf(types, token.BlockOpen)
	sepIdx := indexOf(types, token.BlockSeparator)
	closeIdx := indexOf(types, token.BlockClose)
	assert.True(t, openIdx < sepIdx)
	assert.True(t, sepIdx < closeIdx)
}

func TestLexerDedentClosesBlock(t *testing.T) {
	l := New("match x with\n  | None -> 0\ny")
	var types []token.Type
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	closeIdx := indexOf(types, token.BlockClose)
	require.GreaterOrEqual(t, closeIdx, 0)
	// the dedented "y" identifier should follow the close, not be absorbed
	// into the match-arms block.
	foundIdentAfterClose := false
	for _, ty := range types[closeIdx+1:] {
		if ty == token.IdentLower {
			foundIdentAfterClose = true
		}
	}
	assert.True(t, foundIdentAfterClose)
}

func indexOf(types []token.Type, target token.Type) int {
	for i, ty := range types {
		if ty == target {
			return i
		}
	}
	return -1
}
