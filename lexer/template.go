package lexer

import (
	"strings"

	"github.com/xjslang/xjsfront/token"
)

// scanTemplateChunk lexes one quasi (the literal text run between ` and
// ${, or between } and `, or the whole thing for an untagged template with
// no substitutions) while the context stack top is CtxTemplateQuasi. It
// stops without consuming the terminating backtick or "${" — those are
// tokenized as their own BACKTICK/DOLLAR_BRACE punctuator on the next call,
// which is what lets updateContext pop/push the quasi context correctly.
func (l *Lexer) scanTemplateChunk() token.Token {
	start := l.pos
	startPos := l.here()
	var cooked strings.Builder
	var raw strings.Builder
	unterminated := false

	for {
		if l.eof() {
			unterminated = true
			break
		}
		r := l.current()
		if r == '`' {
			break
		}
		if r == '$' && l.peekAt(1) == '{' {
			break
		}
		if r == '\\' {
			raw.WriteRune(r)
			l.advance()
			if !l.eof() {
				escStart := l.pos
				cooked.WriteString(l.readEscapeSequence())
				raw.WriteString(string(l.src[escStart:l.pos]))
			}
			continue
		}
		if r == '\r' {
			// template literals normalize CRLF/CR to LF in both cooked and raw text
			cooked.WriteRune('\n')
			raw.WriteRune('\n')
			l.advance()
			if l.current() == '\n' {
				l.advance()
			}
			continue
		}
		cooked.WriteRune(r)
		raw.WriteRune(r)
		l.advance()
	}

	return token.Token{
		Type:         token.TEMPLATE,
		Value:        cooked.String(),
		Literal:      raw.String(),
		Span:         token.Span{Start: start, End: l.pos},
		StartPos:     startPos,
		EndPos:       l.here(),
		Unterminated: unterminated,
	}
}
