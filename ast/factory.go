package ast

import "github.com/xjslang/xjsfront/token"

// Factory finalizes nodes as the parser produces them: it stamps the Span
// (and, when requested, the Loc) of a node once its end position is known.
// Funneling every node through one of its methods guarantees every node in
// a finished tree carries a location, which AttachComments and error
// reporting both depend on.
type Factory struct {
	filename     string
	withLocation bool
}

// NewFactory builds a Factory. withLocation controls whether Finish also
// populates the derived line/column Loc (only needed when the caller asked
// for it via Options.Ranges); Span is always populated, since the parser
// itself depends on it for comment attachment and error reporting.
func NewFactory(filename string, withLocation bool) *Factory {
	return &Factory{filename: filename, withLocation: withLocation}
}

// Finish stamps n's Span and, if enabled, Loc, and returns n so call sites
// can finish and return in one expression:
//
//	return ast.Finish(p.Factory(), &ast.Identifier{Name: name}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
func Finish[T Node](f *Factory, n T, startOffset, endOffset int, startPos, endPos token.Position) T {
	loc := n.location()
	loc.Span = token.Span{Start: startOffset, End: endOffset}
	if f.withLocation {
		loc.Loc = &token.Loc{Start: startPos, End: endPos, Filename: f.filename}
	}
	return n
}

// Reparent shifts the Span of every node in the tree rooted at root by
// delta; Loc is left as it is. Nothing in this module calls it.
func Reparent(root Node, delta int) {
	for _, n := range nodeWalk(root) {
		loc := n.location()
		loc.Span.Start += delta
		loc.Span.End += delta
	}
}
