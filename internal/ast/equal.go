package ast

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mcgru/corelang/internal/token"
)

// spanIgnorer zeroes out every token.Span field before comparison, so two
// ASTs that differ only in source positions compare equal.
var spanIgnorer = cmp.Options{
	cmp.Transformer("zeroSpan", func(s token.Span) token.Span {
		return token.Span{}
	}),
	cmpopts.EquateEmpty(),
}

// EqualModuloSpans reports whether a and b are structurally equal once
// every Span field is ignored.
func EqualModuloSpans(a, b interface{}) bool {
	return cmp.Equal(a, b, spanIgnorer)
}

// DiffModuloSpans renders a human-readable diff of a and b with every
// Span field ignored, for use in test failure messages.
func DiffModuloSpans(a, b interface{}) string {
	return cmp.Diff(a, b, spanIgnorer)
}
