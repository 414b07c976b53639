// Package lexer tokenizes xjsfront's source language: a context-sensitive
// scanner that disambiguates regex-vs-divide and template-vs-expression by
// consulting a lexical context stack rather than backtracking. A `<` is
// always LT; only the `/` of a markup closing or self-closing tag is kept
// from starting a regex (see regexAllowed).
package lexer

import (
	"fmt"

	"github.com/xjslang/xjsfront/token"
)

// Options configures a Lexer. It is a plain struct passed at construction,
// matching how the teacher's lexer takes its input — no env vars, no config
// file.
type Options struct {
	// Filename is attached to emitted errors and, if asked for, node Locs.
	Filename string
	// StartLine lets embedders (e.g. a markdown code-fence extractor) offset
	// line numbers to match the surrounding document.
	StartLine int
}

// Interceptor wraps the lexer's raw token production, the same onion-layer
// composition the parser uses for statement/expression interceptors. A
// dialect plugin can install one to recognize tokens the base scanner
// doesn't know about; none of the dialects in this module installs one.
type Interceptor func(l *Lexer, next func() token.Token) token.Token

// Lexer scans one source string into a stream of token.Token values.
type Lexer struct {
	opts Options
	src  []rune
	pos  int

	line, column int

	context *ContextStack

	prevTokenType token.Type
	prevEnd       int

	comments []token.Comment

	// dynamicTypes/nextDynamicType back Lexer.RegisterTokenType:
	// dialects get fresh token.Type values counting up from
	// token.DYNAMIC_TOKENS_START.
	dynamicTypes    map[string]token.Type
	nextDynamicType token.Type

	nextTokenFn func(l *Lexer) token.Token
}

// State is an opaque, cloneable snapshot of lexer position used by the
// parser's speculative (checkpoint/restore) parsing: clone before attempting
// an ambiguous production, restore if it fails.
type State struct {
	pos           int
	line, column  int
	context       *ContextStack
	prevTokenType token.Type
	prevEnd       int
	commentsLen   int
}

func newLexer(input string, opts Options) *Lexer {
	startLine := opts.StartLine
	if startLine == 0 {
		startLine = 1
	}
	return &Lexer{
		opts:            opts,
		src:             []rune(input),
		pos:             0,
		line:            startLine,
		column:          1,
		context:         newContextStack(),
		prevTokenType:   token.EOF,
		dynamicTypes:    map[string]token.Type{},
		nextDynamicType: token.DYNAMIC_TOKENS_START,
		nextTokenFn:     baseNextToken,
	}
}

// New builds a Lexer over input with opts and no dialect interceptors
// installed.
func New(input string, opts Options) *Lexer {
	return newLexer(input, opts)
}

// Snapshot captures the lexer's current position for later Restore.
func (l *Lexer) Snapshot() State {
	return State{
		pos:           l.pos,
		line:          l.line,
		column:        l.column,
		context:       l.context.clone(),
		prevTokenType: l.prevTokenType,
		prevEnd:       l.prevEnd,
		commentsLen:   len(l.comments),
	}
}

// Restore rewinds the lexer to a previously captured State, discarding any
// comments collected after the snapshot was taken.
func (l *Lexer) Restore(s State) {
	l.pos = s.pos
	l.line = s.line
	l.column = s.column
	l.context = s.context.clone()
	l.prevTokenType = s.prevTokenType
	l.prevEnd = s.prevEnd
	l.comments = l.comments[:s.commentsLen]
}

// Comments returns every comment collected so far, in source order.
func (l *Lexer) Comments() []token.Comment {
	return l.comments
}

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) peekAt(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *Lexer) current() rune { return l.peekAt(0) }

func (l *Lexer) advance() rune {
	r := l.current()
	l.pos++
	if isLineTerminator(r) {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) here() token.Position { return token.Position{Line: l.line, Column: l.column} }

// skipSpaceAndComments advances past whitespace and comments, recording
// comments into l.comments and noting whether a line terminator was crossed
// (the caller uses this for Token.AfterNewline / ASI). If an unterminated
// block comment is hit, it stops there and returns the lexical-error token
// to raise for it instead of continuing to scan.
func (l *Lexer) skipSpaceAndComments() (crossedNewline bool, illegal *token.Token) {
	for !l.eof() {
		r := l.current()
		switch {
		case isLineTerminator(r):
			crossedNewline = true
			l.advance()
		case isWhitespace(r):
			l.advance()
		case r == '/' && l.peekAt(1) == '/':
			l.scanLineComment()
		case r == '/' && l.peekAt(1) == '*':
			nl, tok := l.scanBlockComment()
			if nl {
				crossedNewline = true
			}
			if tok != nil {
				return crossedNewline, tok
			}
		default:
			return crossedNewline, nil
		}
	}
	return crossedNewline, nil
}

// RegisterTokenType hands out a fresh dynamic token.Type for a
// dialect-introduced punctuator/keyword, counting up from
// token.DYNAMIC_TOKENS_START, and records a Descriptor for it so
// exprAllowedFor/precedence lookups work the same way they do for base
// tokens.
func (l *Lexer) RegisterTokenType(name string, d token.Descriptor) token.Type {
	if t, ok := l.dynamicTypes[name]; ok {
		return t
	}
	t := l.nextDynamicType
	l.nextDynamicType++
	l.dynamicTypes[name] = t
	token.RegisterDynamic(t, d)
	return t
}

// NextToken produces the next token, running it through any installed
// interceptors before returning it.
func (l *Lexer) NextToken() token.Token {
	prevType := l.prevTokenType
	tok := l.nextTokenFn(l)
	l.prevTokenType = tok.Type
	l.prevEnd = tok.End
	l.updateContext(prevType, tok.Type)
	return tok
}

func (l *Lexer) errorf(pos token.Position, format string, args ...any) token.Token {
	msg := fmt.Sprintf(format, args...)
	return token.Token{
		Type:     token.ILLEGAL,
		Literal:  msg,
		Span:     token.Span{Start: l.pos, End: l.pos},
		StartPos: pos,
		EndPos:   pos,
	}
}
