// Package ast defines the node catalog produced by package parser: the base
// grammar (expressions, statements, patterns, classes, modules) plus the
// node families contributed by the structural-types, nominal-types, markup,
// and estree-shape dialect plugins.
package ast

import "github.com/xjslang/xjsfront/token"

// Node is implemented by every AST node. Type returns a stable string tag
// (e.g. "Identifier", "BinaryExpression") used by debug.Dump and by callers
// doing their own tree walks; it does not change shape under the
// estree-shape plugin, only field names/nesting do.
type Node interface {
	Type() string
	location() *Location
}

// Location carries a node's byte-offset span and, when requested via
// parser.Options, the derived line/column start and end and comment
// attachments. Every concrete node embeds one.
type Location struct {
	token.Span
	Loc *token.Loc // nil unless Options.Ranges was requested

	LeadingComments  []token.Comment
	TrailingComments []token.Comment
	InnerComments    []token.Comment

	// Extra holds dialect- or plugin-specific side data that doesn't merit a
	// dedicated struct field on every node (e.g. parenthesization hints,
	// raw literal text). Nil unless something was stashed here.
	Extra map[string]any
}

func (l *Location) location() *Location { return l }

// Start returns the node's absolute start offset.
func Start(n Node) int { return n.location().Span.Start }

// End returns the node's absolute end offset.
func End(n Node) int { return n.location().Span.End }

// SetExtra stashes a side value on a node, allocating the map on first use.
func SetExtra(n Node, key string, value any) {
	loc := n.location()
	if loc.Extra == nil {
		loc.Extra = map[string]any{}
	}
	loc.Extra[key] = value
}

// GetExtra retrieves a side value previously stored with SetExtra.
func GetExtra(n Node, key string) (any, bool) {
	loc := n.location()
	if loc.Extra == nil {
		return nil, false
	}
	v, ok := loc.Extra[key]
	return v, ok
}

// Expression is implemented by every node valid in expression position.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by every node valid in statement position.
type Statement interface {
	Node
	statementNode()
}

// Pattern is implemented by every node valid as a binding target: plain
// identifiers as well as array/object destructuring patterns, defaults, and
// rest elements.
type Pattern interface {
	Node
	patternNode()
}

// Declaration is a Statement that also introduces one or more bindings
// (variable, function, class, import/export declarations).
type Declaration interface {
	Statement
	declarationNode()
}

// base is embedded by every concrete node to get Location plumbing. The
// anonymous Location gives every node its location()/Start/End behavior
// for free.
type base struct {
	Location
}
