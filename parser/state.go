package parser

import (
	"github.com/xjslang/xjsfront/lexer"
	"github.com/xjslang/xjsfront/token"
)

// scopeKind tags one entry of the parser's scope stack, used to validate
// context-sensitive productions: a bare `return` outside any function, a
// `break`/`continue` outside any loop or switch. Where `super` appears is not
// checked.
type scopeKind int

const (
	scopeProgram scopeKind = iota
	scopeFunction
	scopeLoop
	scopeSwitch
	scopeClassMethod
)

type scope struct {
	kind   scopeKind
	labels []string
}

// Checkpoint is an opaque snapshot of everything the parser needs to
// restore to retry an ambiguous production from scratch: arrow-function
// parameter lists that turn out to be a parenthesized expression, `<`
// that turns out to be a comparison rather than a generic instantiation or
// (with markup installed) a tag open. Speculative parsing is
// clone-attempt-rollback rather than unbounded lookahead, which is what
// keeps the grammar a single recursive-descent pass instead of a general
// backtracking parser.
type Checkpoint struct {
	lexState    lexer.State
	curTok      token.Token
	peekTok     token.Token
	scopes      []scope
	errorsLen   int
	inStrict    bool
}

// Snapshot captures the parser's current position.
func (p *Parser) Snapshot() Checkpoint {
	scopesCopy := make([]scope, len(p.scopes))
	copy(scopesCopy, p.scopes)
	return Checkpoint{
		lexState:  p.lex.Snapshot(),
		curTok:    p.curTok,
		peekTok:   p.peekTok,
		scopes:    scopesCopy,
		errorsLen: len(p.errors),
		inStrict:  p.inStrict,
	}
}

// Restore rewinds the parser to a previously captured Checkpoint, discarding
// any errors accumulated since (a failed speculative attempt's errors must
// never leak into the real parse that follows it).
func (p *Parser) Restore(c Checkpoint) {
	p.lex.Restore(c.lexState)
	p.curTok = c.curTok
	p.peekTok = c.peekTok
	p.scopes = make([]scope, len(c.scopes))
	copy(p.scopes, c.scopes)
	p.errors = p.errors[:c.errorsLen]
	p.inStrict = c.inStrict
}

// Try attempts fn speculatively: if fn returns a non-nil error, the parser
// is rolled back to its pre-attempt state and the error is returned (never
// added to p.errors); if fn succeeds, its result stands.
func Try[T any](p *Parser, fn func() (T, error)) (T, error) {
	cp := p.Snapshot()
	v, err := fn()
	if err != nil {
		p.Restore(cp)
	}
	return v, err
}

// withInAllowed runs fn with noIn cleared, restoring the previous value
// afterward; used at the boundary of any bracketed sub-expression (parens,
// brackets, braces, call arguments), since a closing delimiter always ends
// the ambiguity a for-statement's noIn flag exists to suppress.
func (p *Parser) withInAllowed(fn func()) {
	prev := p.noIn
	p.noIn = false
	fn()
	p.noIn = prev
}

func (p *Parser) pushScope(kind scopeKind) {
	p.scopes = append(p.scopes, scope{kind: kind})
}

func (p *Parser) popScope() {
	if len(p.scopes) > 0 {
		p.scopes = p.scopes[:len(p.scopes)-1]
	}
}

func (p *Parser) inFunction() bool {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		switch p.scopes[i].kind {
		case scopeFunction, scopeClassMethod:
			return true
		}
	}
	return false
}

func (p *Parser) inLoopOrSwitch() bool {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		switch p.scopes[i].kind {
		case scopeLoop, scopeSwitch:
			return true
		case scopeFunction, scopeClassMethod:
			return false
		}
	}
	return false
}

func (p *Parser) inLoop() bool {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		switch p.scopes[i].kind {
		case scopeLoop:
			return true
		case scopeFunction, scopeClassMethod:
			return false
		}
	}
	return false
}
