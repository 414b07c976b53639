package lexer

import "unicode"

// isIdentifierStart reports whether r may begin an identifier: ASCII
// letters, '_', '$', or any Unicode letter (which, since r is a rune, already
// covers the astral planes — no separate surrogate-pair handling is needed
// the way a UTF-16-based implementation would require).
func isIdentifierStart(r rune) bool {
	if r == '_' || r == '$' {
		return true
	}
	if r < utf8RuneSelf {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

// isIdentifierContinue reports whether r may continue an identifier begun
// with isIdentifierStart.
func isIdentifierContinue(r rune) bool {
	if r == '_' || r == '$' || r == zeroWidthJoiner || r == zeroWidthNonJoiner {
		return true
	}
	if r < utf8RuneSelf {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r) || unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_ID_Continue, r)
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func isOctalDigit(r rune) bool { return '0' <= r && r <= '7' }

func isBinaryDigit(r rune) bool { return r == '0' || r == '1' }

// isLineTerminator reports whether r ends a line for ASI and line-counting
// purposes: LF, CR, U+2028 LINE SEPARATOR, U+2029 PARAGRAPH SEPARATOR.
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == lineSeparator || r == paragraphSeparator
}

// isWhitespace reports whether r is insignificant whitespace outside of
// strings/templates, including the astral-plane ranges the base grammar
// recognizes (NBSP, Mongolian vowel separator's relatives, BOM, and the
// various Unicode space separators).
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', nbsp, byteOrderMark:
		return true
	}
	if r < utf8RuneSelf {
		return false
	}
	return unicode.Is(unicode.Zs, r)
}

const (
	utf8RuneSelf        = 0x80
	nbsp                = 0x00A0
	byteOrderMark       = 0xFEFF
	lineSeparator       = 0x2028
	paragraphSeparator  = 0x2029
	zeroWidthNonJoiner  = 0x200C
	zeroWidthJoiner     = 0x200D
)
