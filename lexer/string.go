package lexer

import (
	"strings"

	"github.com/xjslang/xjsfront/token"
)

// scanString lexes a single- or double-quoted STRING token. Literal keeps
// the raw source text (quotes included) for error messages and source-text
// round-tripping; Value carries the cooked string with escapes resolved.
func (l *Lexer) scanString() token.Token {
	start := l.pos
	startPos := l.here()
	quote := l.advance()

	var cooked strings.Builder
	unterminated := false
	for {
		if l.eof() {
			unterminated = true
			break
		}
		r := l.current()
		if r == quote {
			l.advance()
			break
		}
		if isLineTerminator(r) {
			unterminated = true
			break
		}
		if r == '\\' {
			l.advance()
			cooked.WriteString(l.readEscapeSequence())
			continue
		}
		cooked.WriteRune(r)
		l.advance()
	}

	return token.Token{
		Type:         token.STRING,
		Value:        cooked.String(),
		Literal:      string(l.src[start:l.pos]),
		Span:         token.Span{Start: start, End: l.pos},
		StartPos:     startPos,
		EndPos:       l.here(),
		Unterminated: unterminated,
	}
}

// readEscapeSequence consumes the character(s) after a '\' already advanced
// past, returning the cooked text it represents. Unrecognized escapes cook
// to the escaped character itself, matching the base grammar's rule that
// `\q` is just `q`.
func (l *Lexer) readEscapeSequence() string {
	if l.eof() {
		return ""
	}
	r := l.advance()
	switch r {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '0':
		if !isDigit(l.current()) {
			return "\x00"
		}
		return "0"
	case 'x':
		return l.readHexEscape(2)
	case 'u':
		return l.readUnicodeEscape()
	case '\r':
		if l.current() == '\n' {
			l.advance()
		}
		return ""
	case '\n', lineSeparator, paragraphSeparator:
		return ""
	default:
		return string(r)
	}
}

func (l *Lexer) readHexEscape(n int) string {
	val := 0
	for i := 0; i < n; i++ {
		if !isHexDigit(l.current()) {
			break
		}
		val = val*16 + hexDigitValue(l.advance())
	}
	return string(rune(val))
}

func (l *Lexer) readUnicodeEscape() string {
	if l.current() == '{' {
		l.advance()
		val := 0
		for isHexDigit(l.current()) {
			val = val*16 + hexDigitValue(l.advance())
		}
		if l.current() == '}' {
			l.advance()
		}
		return string(rune(val))
	}
	return l.readHexEscape(4)
}

func hexDigitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10
	default:
		return 0
	}
}
