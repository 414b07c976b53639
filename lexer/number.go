package lexer

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/xjslang/xjsfront/token"
)

// scanNumber lexes a NUMBER or BIGINT token starting at the current '0'-'9'
// or '.' character: decimal (with optional fraction/exponent and numeric
// separators), hex/octal/binary radix literals, legacy (non-prefixed) octal,
// and a trailing `n` BigInt suffix.
func (l *Lexer) scanNumber() token.Token {
	start := l.pos
	startPos := l.here()

	if l.current() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		return l.scanRadixNumber(start, startPos, 16, isHexDigit)
	}
	if l.current() == '0' && (l.peekAt(1) == 'o' || l.peekAt(1) == 'O') {
		return l.scanRadixNumber(start, startPos, 8, isOctalDigit)
	}
	if l.current() == '0' && (l.peekAt(1) == 'b' || l.peekAt(1) == 'B') {
		return l.scanRadixNumber(start, startPos, 2, isBinaryDigit)
	}
	// legacy octal: a leading 0 followed directly by octal digits, no prefix.
	if l.current() == '0' && isOctalDigit(l.peekAt(1)) {
		l.advance()
		for isOctalDigit(l.current()) || l.current() == '_' {
			l.advance()
		}
		raw := string(l.src[start:l.pos])
		n := new(big.Int)
		n.SetString(strings.ReplaceAll(raw[1:], "_", ""), 8)
		f, _ := new(big.Float).SetInt(n).Float64()
		return l.finishNumber(start, startPos, token.NUMBER, f)
	}

	l.consumeDigits()
	isFloat := false
	if l.current() == '.' {
		isFloat = true
		l.advance()
		l.consumeDigits()
	}
	if l.current() == 'e' || l.current() == 'E' {
		isFloat = true
		l.advance()
		if l.current() == '+' || l.current() == '-' {
			l.advance()
		}
		l.consumeDigits()
	}

	if !isFloat && l.current() == 'n' {
		raw := strings.ReplaceAll(string(l.src[start:l.pos]), "_", "")
		l.advance() // n
		n := new(big.Int)
		n.SetString(raw, 10)
		return l.finishToken(token.BIGINT, n, start, startPos)
	}

	raw := strings.ReplaceAll(string(l.src[start:l.pos]), "_", "")
	f, _ := strconv.ParseFloat(raw, 64)
	return l.finishNumber(start, startPos, token.NUMBER, f)
}

func (l *Lexer) consumeDigits() {
	for isDigit(l.current()) || l.current() == '_' {
		l.advance()
	}
}

func (l *Lexer) scanRadixNumber(start int, startPos token.Position, radix int, digitOK func(rune) bool) token.Token {
	l.advance() // 0
	l.advance() // x/o/b
	digitsStart := l.pos
	for digitOK(l.current()) || l.current() == '_' {
		l.advance()
	}
	digits := strings.ReplaceAll(string(l.src[digitsStart:l.pos]), "_", "")
	if l.current() == 'n' {
		l.advance()
		n := new(big.Int)
		n.SetString(digits, radix)
		return l.finishToken(token.BIGINT, n, start, startPos)
	}
	n := new(big.Int)
	n.SetString(digits, radix)
	f, _ := new(big.Float).SetInt(n).Float64()
	return l.finishNumber(start, startPos, token.NUMBER, f)
}

func (l *Lexer) finishNumber(start int, startPos token.Position, tt token.Type, value float64) token.Token {
	return l.finishToken(tt, value, start, startPos)
}

func (l *Lexer) finishToken(tt token.Type, value any, start int, startPos token.Position) token.Token {
	return token.Token{
		Type:     tt,
		Value:    value,
		Literal:  string(l.src[start:l.pos]),
		Span:     token.Span{Start: start, End: l.pos},
		StartPos: startPos,
		EndPos:   l.here(),
	}
}
