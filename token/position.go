package token

import "fmt"

// Position is a 1-based line / 1-based column location inside a source file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Loc pairs the start and end Position of a span. It is only populated on
// Token/Node values when the caller asked for it; offsets (Start/End below)
// are always populated and are cheaper to carry around.
type Loc struct {
	Start Position
	End   Position
	// Filename is attached to every node's loc when Options.SourceFilename
	// is set; empty otherwise.
	Filename string
}

// Span is the pair of absolute, 0-based offsets every token and node carries.
type Span struct {
	Start int
	End   int
}
