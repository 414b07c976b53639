package lexer

import (
	"github.com/xjslang/xjsfront/token"
)

// scanRegex lexes a /pattern/flags literal. The caller must only invoke this
// when regexAllowed() has already confirmed a '/' here starts a regex rather
// than a divide operator.
func (l *Lexer) scanRegex() token.Token {
	start := l.pos
	startPos := l.here()
	l.advance() // opening /

	patternStart := l.pos
	inClass := false
	unterminated := false
	for {
		if l.eof() || isLineTerminator(l.current()) {
			unterminated = true
			break
		}
		r := l.current()
		if r == '\\' {
			l.advance()
			if !l.eof() {
				l.advance()
			}
			continue
		}
		if r == '[' {
			inClass = true
			l.advance()
			continue
		}
		if r == ']' {
			inClass = false
			l.advance()
			continue
		}
		if r == '/' && !inClass {
			break
		}
		l.advance()
	}
	pattern := string(l.src[patternStart:l.pos])
	if !l.eof() && l.current() == '/' {
		l.advance()
	}

	flagsStart := l.pos
	for isIdentifierContinue(l.current()) {
		l.advance()
	}
	flags := string(l.src[flagsStart:l.pos])

	return token.Token{
		Type:         token.REGEXP,
		Value:        token.RegexValue{Pattern: pattern, Flags: flags},
		Literal:      string(l.src[start:l.pos]),
		Span:         token.Span{Start: start, End: l.pos},
		StartPos:     startPos,
		EndPos:       l.here(),
		Unterminated: unterminated,
	}
}
