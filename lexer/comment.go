package lexer

import "github.com/xjslang/xjsfront/token"

// scanLineComment consumes a `//` comment through end of line (exclusive)
// and appends it to l.comments.
func (l *Lexer) scanLineComment() {
	start := l.pos
	startPos := l.here()
	l.advance() // first /
	l.advance() // second /
	for !l.eof() && !isLineTerminator(l.current()) {
		l.advance()
	}
	l.comments = append(l.comments, token.Comment{
		Kind:     token.CommentLine,
		Value:    string(l.src[start+2 : l.pos]),
		Span:     token.Span{Start: start, End: l.pos},
		StartPos: startPos,
		EndPos:   l.here(),
	})
}

// scanBlockComment consumes a `/* ... */` comment and appends it to
// l.comments. It reports whether the comment spanned a line terminator,
// since a multi-line block comment suppresses automatic semicolon insertion
// the same way a bare newline does. If the comment runs to EOF without a
// closing `*/`, it is still recorded (with Unterminated set) and the lexer
// error token to raise for it is returned as illegal.
func (l *Lexer) scanBlockComment() (crossedNewline bool, illegal *token.Token) {
	start := l.pos
	startPos := l.here()
	l.advance() // /
	l.advance() // *
	for !l.eof() {
		if l.current() == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			l.comments = append(l.comments, token.Comment{
				Kind:     token.CommentBlock,
				Value:    string(l.src[start+2 : l.pos-2]),
				Span:     token.Span{Start: start, End: l.pos},
				StartPos: startPos,
				EndPos:   l.here(),
			})
			return crossedNewline, nil
		}
		if isLineTerminator(l.current()) {
			crossedNewline = true
		}
		l.advance()
	}
	l.comments = append(l.comments, token.Comment{
		Kind:         token.CommentBlock,
		Value:        string(l.src[start+2:]),
		Span:         token.Span{Start: start, End: l.pos},
		StartPos:     startPos,
		EndPos:       l.here(),
		Unterminated: true,
	})
	tok := l.errorf(startPos, "unterminated comment")
	return crossedNewline, &tok
}
