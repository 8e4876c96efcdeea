package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcgru/corelang/internal/typesys"
)

func TestParseAtomicKindNames(t *testing.T) {
	cases := map[string]*typesys.Kind{
		"_":   typesys.HoleKind(),
		"Type": typesys.TypeKind,
		"Row":  typesys.RowKind,
	}
	for src, want := range cases {
		p, _ := newTestParser(src)
		got := p.parseAtomicKind()
		assert.Equal(t, want.Tag, got.Tag, "kind for %q", src)
	}
}

func TestParseKindRightAssociative(t *testing.T) {
	p, _ := newTestParser("Type -> Row -> _")
	k := p.parseKind()
	assert.Equal(t, typesys.KindArrow, k.Tag)
	assert.Equal(t, typesys.KindType, k.Left.Tag)
	assert.Equal(t, typesys.KindArrow, k.Right.Tag)
	assert.Equal(t, typesys.KindRow, k.Right.Left.Tag)
	assert.Equal(t, typesys.KindHole, k.Right.Right.Tag)
}

func TestParseAtomicKindParenthesised(t *testing.T) {
	p, _ := newTestParser("(Type -> Row)")
	k := p.parseAtomicKind()
	assert.Equal(t, typesys.KindArrow, k.Tag)
}

func TestParseAtomicKindUnexpectedPushesDiagnostic(t *testing.T) {
	p, ctx := newTestParser("123")
	k := p.parseAtomicKind()
	assert.Equal(t, typesys.KindHole, k.Tag)
	assert.Equal(t, 1, ctx.Errors.Len())
}
