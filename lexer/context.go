package lexer

import "github.com/xjslang/xjsfront/token"

// ContextKind names an entry on the lexical context stack. The stack is what
// lets the tokenizer tell a `/` that divides from a `/` that opens a regex
// literal, and a `{` that opens a block from one that opens an object
// literal, without backtracking. A `<` is always emitted as LT; whether it
// opens a markup tag is decided by the parser.
type ContextKind int

const (
	CtxBraceStatement ContextKind = iota
	CtxBraceExpression
	CtxTemplateQuasi
	CtxParens
	CtxFunctionExpr
	CtxBracket
	CtxFunctionStatement
	// CtxMarkupTag names the region between an element's opening `>` and its
	// matching closing tag's `<`. Nothing pushes a frame of this kind: the
	// markup dialect reads element children from ordinary tokens.
	CtxMarkupTag
)

// context is a single frame on the lexer's context stack.
type context struct {
	kind ContextKind
	// exprAllowed is recorded on every frame but not consulted: regexAllowed
	// decides from the preceding token (see exprAllowedFor).
	exprAllowed bool
	// quasiPending is only meaningful on a CtxTemplateQuasi frame: true
	// means the next token must be scanned as template text, false means
	// the lexer is sitting exactly on the closing backtick or opening
	// "${" and should tokenize that boundary as a punctuator instead.
	quasiPending bool
}

// ContextStack tracks the lexer's nested brace/paren/template/tag state. It
// is cloned wholesale as part of a lexer State snapshot, which is what makes
// speculative (try-then-rollback) parsing safe: restoring a snapshot restores
// the context stack exactly as it stood at the checkpoint.
type ContextStack struct {
	frames []context
}

func newContextStack() *ContextStack {
	return &ContextStack{frames: []context{{kind: CtxBraceStatement, exprAllowed: true}}}
}

func (c *ContextStack) clone() *ContextStack {
	frames := make([]context, len(c.frames))
	copy(frames, c.frames)
	return &ContextStack{frames: frames}
}

func (c *ContextStack) push(kind ContextKind, exprAllowed bool) {
	c.frames = append(c.frames, context{kind: kind, exprAllowed: exprAllowed})
}

func (c *ContextStack) pop() ContextKind {
	n := len(c.frames)
	kind := c.frames[n-1].kind
	if n > 1 {
		c.frames = c.frames[:n-1]
	}
	return kind
}

func (c *ContextStack) current() context {
	return c.frames[len(c.frames)-1]
}

func (c *ContextStack) setQuasiPending(v bool) {
	c.frames[len(c.frames)-1].quasiPending = v
}

func (c *ContextStack) inMarkupTag() bool {
	k := c.current().kind
	return k == CtxMarkupTag
}

// updateContext advances the context stack after a token of type tt has been
// produced, given the token that preceded it. This is pure static dispatch —
// a switch over token.Type — rather than the pattern of mutating shared
// TokenType descriptors at load time: every dialect's tokens are known
// statically once the builder has registered them, so a switch keyed on type
// is both simpler and immune to registration-order bugs.
func (l *Lexer) updateContext(prevType token.Type, tt token.Type) {
	switch tt {
	case token.LBRACE:
		kind := CtxBraceStatement
		if l.exprAllowedFor(prevType) {
			kind = CtxBraceExpression
		}
		l.context.push(kind, true)

	case token.RBRACE:
		l.context.pop()
		if l.context.current().kind == CtxTemplateQuasi {
			l.context.setQuasiPending(true)
		}

	case token.DOLLAR_BRACE:
		l.context.push(CtxBraceExpression, true)

	case token.LPAREN:
		kind := CtxParens
		l.context.push(kind, true)

	case token.RPAREN:
		l.context.pop()

	case token.LBRACKET:
		l.context.push(CtxBracket, true)

	case token.RBRACKET:
		l.context.pop()

	case token.BACKTICK:
		if l.context.current().kind == CtxTemplateQuasi {
			l.context.pop()
		} else {
			l.context.push(CtxTemplateQuasi, false)
			l.context.setQuasiPending(true)
		}

	case token.FUNCTION:
		if prevType != token.DOT {
			l.context.push(CtxFunctionExpr, true)
		}
	}
}

// exprAllowedFor reports whether, given that prevType was the last
// significant token produced, an expression may start next. This mirrors
// each token's BeforeExpr descriptor flag but is resolved by direct lookup
// rather than by consulting caller-mutable global state, so plugins that
// register new operators only need to set BeforeExpr correctly at
// registration time.
func (l *Lexer) exprAllowedFor(prevType token.Type) bool {
	if prevType == token.EOF {
		return true
	}
	d := token.Lookup(prevType)
	if d == nil {
		return true
	}
	return d.BeforeExpr
}

// regexAllowed reports whether a `/` seen right now should be scanned as the
// start of a regex literal (true) or as the divide/divide-assign operator
// (false). A `/` written directly after `<` (a markup closing tag `</`) and
// a `/>` right after `}` (a self-closing tag after a `{...}` attribute) are
// never a regex. Otherwise a `/` right after a `}` starts a regex when the
// enclosing context is a statement brace, and in every other position the
// preceding token's BeforeExpr flag decides.
func (l *Lexer) regexAllowed() bool {
	if l.prevTokenType == token.LT && l.prevEnd == l.pos {
		return false
	}
	if l.prevTokenType == token.RBRACE && l.peekAt(1) == '>' {
		return false
	}
	cur := l.context.current()
	if cur.kind == CtxBraceStatement && l.prevTokenType == token.RBRACE {
		return true
	}
	return l.exprAllowedFor(l.prevTokenType)
}
