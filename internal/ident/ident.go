// Package ident adapts the parser to an external identifier environment:
// strings go in, opaque Ids come out, and equal strings always produce
// equal Ids. The parser never inspects Id's representation directly.
package ident

import "sync"

// Id is an opaque handle produced by interning a source string.
type Id struct {
	n int
}

// Equal reports whether a and b were interned from the same string. Its
// presence lets go-cmp compare Id by value instead of panicking over its
// unexported field (used by ast.EqualModuloSpans).
func (a Id) Equal(b Id) bool { return a.n == b.n }

// Env interns strings into Ids. The zero value is ready to use.
type Env struct {
	mu      sync.Mutex
	byName  map[string]Id
	byId    []string
}

// NewEnv returns a ready-to-use, empty environment.
func NewEnv() *Env {
	return &Env{byName: make(map[string]Id)}
}

// From interns s, returning the same Id for every equal s (referential
// transparency).
func (e *Env) From(s string) Id {
	e.mu.Lock()
	defer e.mu.Unlock()
	if id, ok := e.byName[s]; ok {
		return id
	}
	if e.byName == nil {
		e.byName = make(map[string]Id)
	}
	id := Id{n: len(e.byId)}
	e.byId = append(e.byId, s)
	e.byName[s] = id
	return id
}

// String returns the source string an Id was interned from.
func (e *Env) String(id Id) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if id.n < 0 || id.n >= len(e.byId) {
		return ""
	}
	return e.byId[id.n]
}
