// Package source describes the buffer a parse runs over. It exists so
// attribute arguments can be sliced back out of the original text; spans
// elsewhere are interpreted against whatever Source produced the tokens.
package source

import "github.com/mcgru/corelang/internal/token"

// Source exposes the text a token stream was derived from, and the byte
// offset of that text within a possibly larger virtual file (e.g. an
// embedded script inside a host document).
type Source interface {
	Src() string
	StartIndex() token.BytePos
}

// StringSource is a Source backed directly by a string, starting at
// offset zero.
type StringSource struct {
	Text string
}

func (s StringSource) Src() string              { return s.Text }
func (s StringSource) StartIndex() token.BytePos { return 0 }

// Slice returns src.Src()[span.Start-src.StartIndex() : span.End-src.StartIndex()].
// It is used to capture AttributeArguments textually between the '(' and
// ')' bounds of an attribute.
func Slice(src Source, span token.Span) string {
	base := src.StartIndex()
	text := src.Src()
	start := int(span.Start - base)
	end := int(span.End - base)
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		return ""
	}
	return text[start:end]
}
