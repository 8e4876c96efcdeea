package parser

import (
	"github.com/mcgru/corelang/internal/lexer"
	"github.com/mcgru/corelang/internal/pipeline"
	"github.com/mcgru/corelang/internal/source"
)

// newTestParser builds a Parser over src with a fresh pipeline context,
// for white-box tests exercising individual grammar rules directly.
func newTestParser(src string) (*Parser, *pipeline.Context) {
	s := source.StringSource{Text: src}
	ctx := pipeline.NewContext("<test>", s)
	return New(lexer.New(s.Src()), ctx), ctx
}
