// Package pipeline carries the state threaded between a token stream and
// the parser: the source text, the file path (for diagnostics), and the
// diagnostic queue. Trait/operator/module-loader fields are deliberately
// absent — those belong to type-class elaboration and module resolution,
// neither of which this grammar performs.
package pipeline

import (
	"github.com/mcgru/corelang/internal/diagnostics"
	"github.com/mcgru/corelang/internal/ident"
	"github.com/mcgru/corelang/internal/source"
	"github.com/mcgru/corelang/internal/token"
	"github.com/mcgru/corelang/internal/typesys"
)

// Context bundles everything the parser needs beyond the token stream
// itself: the identifier environment it interns into, the diagnostic
// queue it appends to, and the source map used to slice attribute
// arguments. It also carries a type cache; the parser does not read it
// and builds hole/builtin nodes directly through package typesys.
type Context struct {
	FilePath string
	Source   source.Source
	Env      *ident.Env
	Types    typesys.Cache
	Errors   *diagnostics.Queue
}

// NewContext builds a ready-to-use Context over src, allocating a fresh
// identifier environment, the default type cache, and an empty
// diagnostic queue.
func NewContext(filePath string, src source.Source) *Context {
	return &Context{
		FilePath: filePath,
		Source:   src,
		Env:      ident.NewEnv(),
		Types:    typesys.SimpleCache{},
		Errors:   &diagnostics.Queue{},
	}
}

// Stream re-exports token.Stream so callers can depend on pipeline alone.
type Stream = token.Stream
