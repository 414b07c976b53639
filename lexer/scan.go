package lexer

import "github.com/xjslang/xjsfront/token"

// baseNextToken is the lexer's raw token producer, before any dialect
// interceptors run. It is assigned to Lexer.nextTokenFn by New/Builder.Build
// and is the innermost layer of the interceptor chain.
func baseNextToken(l *Lexer) token.Token {
	afterNewline, illegal := l.skipSpaceAndComments()
	if illegal != nil {
		tok := *illegal
		tok.AfterNewline = afterNewline
		return tok
	}

	if l.eof() {
		tok := token.Token{
			Type:     token.EOF,
			Span:     token.Span{Start: l.pos, End: l.pos},
			StartPos: l.here(),
			EndPos:   l.here(),
		}
		tok.AfterNewline = afterNewline
		return tok
	}

	if l.context.current().kind == CtxTemplateQuasi && l.context.current().quasiPending {
		tok := l.scanTemplateChunk()
		l.context.setQuasiPending(false)
		tok.AfterNewline = afterNewline
		return tok
	}

	r := l.current()

	if r == '$' && l.peekAt(1) == '{' {
		tok := l.scanPunctuator()
		tok.AfterNewline = afterNewline
		return tok
	}
	if isIdentifierStart(r) {
		tok := l.scanIdentifierOrKeyword()
		tok.AfterNewline = afterNewline
		return tok
	}
	if isDigit(r) || (r == '.' && isDigit(l.peekAt(1))) {
		tok := l.scanNumber()
		tok.AfterNewline = afterNewline
		return tok
	}
	if r == '"' || r == '\'' {
		tok := l.scanString()
		tok.AfterNewline = afterNewline
		return tok
	}
	if r == '#' {
		tok := l.scanPrivateNameOrHash()
		tok.AfterNewline = afterNewline
		return tok
	}
	if r == '/' && l.regexAllowed() {
		tok := l.scanRegex()
		tok.AfterNewline = afterNewline
		return tok
	}

	tok := l.scanPunctuator()
	tok.AfterNewline = afterNewline
	return tok
}

func (l *Lexer) scanIdentifierOrKeyword() token.Token {
	start := l.pos
	startPos := l.here()
	l.advance()
	for isIdentifierContinue(l.current()) {
		l.advance()
	}
	lit := string(l.src[start:l.pos])
	tt := token.LookupIdent(lit)
	return token.Token{
		Type:     tt,
		Value:    lit,
		Literal:  lit,
		Span:     token.Span{Start: start, End: l.pos},
		StartPos: startPos,
		EndPos:   l.here(),
	}
}

func (l *Lexer) scanPrivateNameOrHash() token.Token {
	start := l.pos
	startPos := l.here()
	l.advance() // #
	if !isIdentifierStart(l.current()) {
		return l.finishToken(token.HASH, nil, start, startPos)
	}
	for isIdentifierContinue(l.current()) {
		l.advance()
	}
	lit := string(l.src[start:l.pos])
	return token.Token{
		Type:     token.PRIVATE_NAME,
		Value:    lit,
		Literal:  lit,
		Span:     token.Span{Start: start, End: l.pos},
		StartPos: startPos,
		EndPos:   l.here(),
	}
}

// scanPunctuator dispatches on the current rune to produce a punctuator or
// operator token, maximally-munching multi-character operators.
func (l *Lexer) scanPunctuator() token.Token {
	start := l.pos
	startPos := l.here()
	r := l.advance()

	two := func(t token.Type) token.Token { l.advance(); return l.finishToken(t, nil, start, startPos) }
	three := func(t token.Type) token.Token {
		l.advance()
		l.advance()
		return l.finishToken(t, nil, start, startPos)
	}
	one := func(t token.Type) token.Token { return l.finishToken(t, nil, start, startPos) }

	switch r {
	case '(':
		return one(token.LPAREN)
	case ')':
		return one(token.RPAREN)
	case '{':
		return one(token.LBRACE)
	case '}':
		return one(token.RBRACE)
	case '[':
		return one(token.LBRACKET)
	case ']':
		return one(token.RBRACKET)
	case ',':
		return one(token.COMMA)
	case ';':
		return one(token.SEMICOLON)
	case '@':
		return one(token.AT)
	case '`':
		return one(token.BACKTICK)
	case ':':
		return one(token.COLON)
	case '~':
		return one(token.BITNOT)

	case '.':
		if l.current() == '.' && l.peekAt(1) == '.' {
			return three(token.ELLIPSIS)
		}
		return one(token.DOT)

	case '?':
		if l.current() == '.' && !isDigit(l.peekAt(1)) {
			return two(token.QUESTION_DOT)
		}
		if l.current() == '?' {
			if l.peekAt(1) == '=' {
				return three(token.NULLISH_ASSIGN)
			}
			return two(token.QUESTION_QUESTION)
		}
		return one(token.QUESTION)

	case '=':
		if l.current() == '=' {
			if l.peekAt(1) == '=' {
				return three(token.EQ_STRICT)
			}
			return two(token.EQ)
		}
		if l.current() == '>' {
			return two(token.ARROW)
		}
		return one(token.ASSIGN)

	case '!':
		if l.current() == '=' {
			if l.peekAt(1) == '=' {
				return three(token.NOT_EQ_STRICT)
			}
			return two(token.NOT_EQ)
		}
		return one(token.NOT)

	case '<':
		if l.current() == '<' {
			if l.peekAt(1) == '=' {
				return three(token.SHL_ASSIGN)
			}
			return two(token.SHL)
		}
		if l.current() == '=' {
			return two(token.LTE)
		}
		return one(token.LT)

	case '>':
		if l.current() == '>' && l.peekAt(1) == '>' {
			if l.peekAt(2) == '=' {
				l.advance()
				l.advance()
				l.advance()
				return l.finishToken(token.SAR_ASSIGN, nil, start, startPos)
			}
			return three(token.SAR)
		}
		if l.current() == '>' {
			if l.peekAt(1) == '=' {
				return three(token.SHR_ASSIGN)
			}
			return two(token.SHR)
		}
		if l.current() == '=' {
			return two(token.GTE)
		}
		return one(token.GT)

	case '&':
		if l.current() == '&' {
			if l.peekAt(1) == '=' {
				return three(token.AND_ASSIGN)
			}
			return two(token.AND)
		}
		if l.current() == '=' {
			return two(token.BITAND_ASSIGN)
		}
		return one(token.BITAND)

	case '|':
		if l.current() == '|' {
			if l.peekAt(1) == '=' {
				return three(token.OR_ASSIGN)
			}
			return two(token.OR)
		}
		if l.current() == '=' {
			return two(token.BITOR_ASSIGN)
		}
		return one(token.BITOR)

	case '^':
		if l.current() == '=' {
			return two(token.BITXOR_ASSIGN)
		}
		return one(token.BITXOR)

	case '+':
		if l.current() == '+' {
			return two(token.INCREMENT)
		}
		if l.current() == '=' {
			return two(token.PLUS_ASSIGN)
		}
		return one(token.PLUS)

	case '-':
		if l.current() == '-' {
			return two(token.DECREMENT)
		}
		if l.current() == '=' {
			return two(token.MINUS_ASSIGN)
		}
		return one(token.MINUS)

	case '*':
		if l.current() == '*' {
			if l.peekAt(1) == '=' {
				return three(token.EXP_ASSIGN)
			}
			return two(token.EXP)
		}
		if l.current() == '=' {
			return two(token.MULTIPLY_ASSIGN)
		}
		return one(token.MULTIPLY)

	case '/':
		if l.current() == '=' {
			return two(token.DIVIDE_ASSIGN)
		}
		return one(token.DIVIDE)

	case '%':
		if l.current() == '=' {
			return two(token.MODULO_ASSIGN)
		}
		return one(token.MODULO)

	case '$':
		if l.current() == '{' {
			return two(token.DOLLAR_BRACE)
		}
		return one(token.ILLEGAL)
	}

	return l.errorf(startPos, "unexpected character %q", r)
}
