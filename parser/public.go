package parser

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/token"
)

// This file is the surface a dialect package (outside package parser) is
// allowed to touch: the same primitives baseParseStatement/baseParseExpression
// use internally, renamed to exported names. A dialect interceptor receives
// a *Parser and can only drive it through these methods plus Checkpoint/
// Snapshot/Restore/Try, already exported in state.go.

// Cur returns the current (not yet consumed) token.
func (p *Parser) Cur() token.Token { return p.curTok }

// Peek returns the token after Cur, without consuming either.
func (p *Parser) Peek() token.Token { return p.peekTok }

// Advance consumes Cur and shifts Peek into its place.
func (p *Parser) Advance() { p.next() }

// At reports whether Cur has type tt.
func (p *Parser) At(tt token.Type) bool { return p.at(tt) }

// PeekAt reports whether Peek has type tt.
func (p *Parser) PeekAt(tt token.Type) bool { return p.peekAt(tt) }

// ConsumeIf consumes Cur and returns true if it has type tt, else leaves the
// parser untouched and returns false.
func (p *Parser) ConsumeIf(tt token.Type) bool { return p.consumeIf(tt) }

// Expect consumes Cur if it has type tt, else raises a Syntactic error.
func (p *Parser) Expect(tt token.Type) token.Token { return p.expect(tt) }

// ParseExpr parses one expression no looser than precedence, the same entry
// point baseParseExpression itself recurses through. A dialect that wants to
// parse `{expr}` (markup's expression-container children, a computed member)
// calls this rather than re-implementing precedence climbing.
func (p *Parser) ParseExpr(precedence int) ast.Expression { return p.parseExpression(precedence) }

// ParseStatement parses one statement through the full interceptor chain,
// for a dialect production that embeds a nested statement (markup has none,
// but a future block-structured dialect might).
func (p *Parser) ParseStatement() ast.Statement { return p.statementParseFn(p) }

// WithInAllowed runs fn with the for-statement noIn restriction cleared, the
// same helper parseArguments/parseArrayExpr use internally; a dialect
// production bracketed by its own delimiters (markup's `{...}` expression
// container) needs the same reset.
func (p *Parser) WithInAllowed(fn func()) { p.withInAllowed(fn) }

// Factory returns the node factory used to stamp Span/Loc, for a dialect
// that builds nodes with ast.Finish directly instead of through a
// parser-internal helper.
func (p *Parser) Factory() *ast.Factory { return p.factory }

// PrevEnd returns the byte offset just past the token that was current
// before the most recent Advance, the same value ast.Finish calls use as a
// node's end offset.
func (p *Parser) PrevEnd() int { return p.prevEnd() }

// CurStartPos returns Cur's start line/column.
func (p *Parser) CurStartPos() token.Position { return p.curStartPos() }

// RaiseSyntax aborts the current parse (recovered by parseStatementTopLevel/
// ParseExpression, or collected and synchronized past in TolerantMode) with
// a Syntactic error positioned at Cur.
func (p *Parser) RaiseSyntax(format string, args ...any) { p.raiseSyntax(format, args...) }

// RaiseEarly records an EarlyError-severity note without aborting the parse,
// for a violation that TolerantMode (and, often, even strict mode) can keep
// going past.
func (p *Parser) RaiseEarly(tok token.Token, format string, args ...any) {
	p.raiseEarly(tok, format, args...)
}

// Options returns the Options this Parser was built with, e.g. for a dialect
// that changes behavior under TolerantMode.
func (p *Parser) Options() Options { return p.opts }

// RegisterPrefix installs fn as the prefix parser for tt, for a dialect that
// gives an existing token a new leading-position meaning (markup's `<` as a
// JSX element open, shadowing the base comparison-operator reading at prefix
// position where one never legally applies anyway).
func (p *Parser) RegisterPrefix(tt token.Type, fn func(p *Parser) ast.Expression) {
	p.prefixParseFns[tt] = fn
}

// RegisterInfix installs fn as the infix parser for tt at the given binding
// power (compared the same way BINARY+Descriptor.Precedence is for the base
// operators), for a dialect that adds a genuine new binary-position operator
// (nominaltypes' `as`) the static token.Descriptor table has no
// entry for.
func (p *Parser) RegisterInfix(tt token.Type, precedence int, fn func(p *Parser, left ast.Expression) ast.Expression) {
	if p.infixPrecedenceOverride == nil {
		p.infixPrecedenceOverride = map[token.Type]int{}
	}
	p.infixPrecedenceOverride[tt] = precedence
	p.infixParseFns[tt] = fn
}

// RegisterPostfix installs fn as the postfix parser for tt (nominaltypes'
// non-null `!`), tried ahead of infix operators at every Pratt-loop
// iteration the same way `++`/`--` are.
func (p *Parser) RegisterPostfix(tt token.Type, fn func(p *Parser, operand ast.Expression) ast.Expression) {
	p.postfixParseFns[tt] = fn
}
